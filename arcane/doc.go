// Package arcane provides a client for the Arcane container-management API.
//
// # Client
//
// The Client is the single HTTP primitive every resource operation funnels
// through. It is configured once and never mutated:
//
//	client := arcane.New("https://arcane.example.com", os.Getenv("ARCANE_API_KEY"))
//
//	// Or with custom transport settings
//	client := arcane.New(host, key,
//	    arcane.WithTimeout(10*time.Second),
//	    arcane.WithRateLimit(5, 10),
//	)
//
// # Resource Groups
//
// Resource operations are grouped per family. A group is built from anything
// that satisfies Invoker, usually a *Client:
//
//	envs, err := arcane.Environments(client).List(ctx, arcane.ListOptions{Search: "prod"})
//	for _, env := range envs.Data.All() {
//	    fmt.Println(env.ID, env.Name)
//	}
//
//	_, err = arcane.Stacks(client).Start(ctx, envID, stackID)
//
// # Documents
//
// Response types decode only the fields this package needs, such as IDs and
// names. The backend object itself is kept: Raw on a Single or on Page.Data
// returns the data exactly as received, and families that are never
// inspected here (images, volumes, networks, templates) decode to Document.
//
//	vol, err := arcane.Volumes(client).Inspect(ctx, envID, "data")
//	fmt.Println(string(vol.Raw()))
//
// # Errors
//
// Every non-2xx response becomes an *APIError carrying the HTTP status and the
// backend's detail message (or the server's reason phrase when there is none):
//
//	var apiErr *arcane.APIError
//	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
//	    // ...
//	}
package arcane
