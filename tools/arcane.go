package tools

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/everydev1618/arcane-mcp/arcane"
	"github.com/everydev1618/arcane-mcp/resolve"
)

// DefaultListLimit is the page size used when a list tool gets no limit.
const DefaultListLimit = 50

// RegisterArcane registers every Arcane tool on t, backed by inv.
func RegisterArcane(t *Tools, inv arcane.Invoker) error {
	groups := []func(*Tools, arcane.Invoker) error{
		registerEnvironmentTools,
		registerStackTools,
		registerContainerTools,
		registerImageTools,
		registerVolumeTools,
		registerNetworkTools,
		registerTemplateTools,
		registerSystemTools,
	}
	for _, register := range groups {
		if err := register(t, inv); err != nil {
			return err
		}
	}
	return nil
}

type namedTool struct {
	name string
	def  ToolDef
}

func registerAll(t *Tools, list []namedTool) error {
	for _, nt := range list {
		if err := t.Register(nt.name, nt.def); err != nil {
			return err
		}
	}
	return nil
}

// Parameter sets shared across tools.
var (
	envParams = map[string]ParamDef{
		"environmentId":   {Type: "string", Description: "Environment ID (use if known)"},
		"environmentName": {Type: "string", Description: "Environment name (alternative to ID)"},
	}
	stackParams = map[string]ParamDef{
		"stackId":   {Type: "string", Description: "Stack ID (use if known)"},
		"stackName": {Type: "string", Description: "Stack name (alternative to ID)"},
	}
	containerParams = map[string]ParamDef{
		"containerId":   {Type: "string", Description: "Container ID (use if known)"},
		"containerName": {Type: "string", Description: "Container name (alternative to ID)"},
	}
)

func listParams(searchDesc string) map[string]ParamDef {
	minLimit, maxLimit := 1.0, 100.0
	return map[string]ParamDef{
		"search": {Type: "string", Description: searchDesc},
		"limit": {
			Type:        "integer",
			Description: "Maximum number of results",
			Default:     DefaultListLimit,
			Minimum:     &minLimit,
			Maximum:     &maxLimit,
		},
	}
}

// withParams merges parameter sets. Later sets win on name clashes.
func withParams(sets ...map[string]ParamDef) map[string]ParamDef {
	out := make(map[string]ParamDef)
	for _, set := range sets {
		for name, p := range set {
			out[name] = p
		}
	}
	return out
}

// envRef names an environment by ID or name.
type envRef struct {
	EnvironmentID   string `json:"environmentId"`
	EnvironmentName string `json:"environmentName"`
}

func (r envRef) resolve(ctx context.Context, inv arcane.Invoker) (string, error) {
	return resolve.EnvironmentID(ctx, arcane.Environments(inv), r.EnvironmentID, r.EnvironmentName)
}

// stackRef names a stack within an environment.
type stackRef struct {
	envRef
	StackID   string `json:"stackId"`
	StackName string `json:"stackName"`
}

// resolve returns the environment and stack IDs, environment first.
func (r stackRef) resolve(ctx context.Context, inv arcane.Invoker) (envID, stackID string, err error) {
	if envID, err = r.envRef.resolve(ctx, inv); err != nil {
		return "", "", err
	}
	stackID, err = resolve.StackID(ctx, arcane.Stacks(inv), envID, r.StackID, r.StackName)
	return envID, stackID, err
}

// containerRef names a container within an environment.
type containerRef struct {
	envRef
	ContainerID   string `json:"containerId"`
	ContainerName string `json:"containerName"`
}

func (r containerRef) resolve(ctx context.Context, inv arcane.Invoker) (envID, containerID string, err error) {
	if envID, err = r.envRef.resolve(ctx, inv); err != nil {
		return "", "", err
	}
	containerID, err = resolve.ContainerID(ctx, arcane.Containers(inv), envID, r.ContainerID, r.ContainerName)
	return envID, containerID, err
}

// listArgs are the filter arguments of list tools.
type listArgs struct {
	Search string `json:"search"`
	Limit  *int   `json:"limit" validate:"omitempty,min=1,max=100"`
}

func (a listArgs) options() arcane.ListOptions {
	limit := DefaultListLimit
	if a.Limit != nil {
		limit = *a.Limit
	}
	return arcane.ListOptions{Search: a.Search, Limit: limit}
}

// pretty re-indents a backend document by two spaces. Fields and values are
// left as the backend sent them.
func pretty(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("format response: %w", err)
	}
	return buf.String(), nil
}

// messageOr returns the backend's message, or fallback when it is empty.
func messageOr(resp *arcane.ActionResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
