package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// EnvironmentsAPI groups environment operations.
type EnvironmentsAPI struct {
	inv Invoker
}

// Environments returns the environment operations backed by inv.
func Environments(inv Invoker) EnvironmentsAPI {
	return EnvironmentsAPI{inv: inv}
}

// List returns environments, filtered server-side by opts.
func (a EnvironmentsAPI) List(ctx context.Context, opts ListOptions) (*Page[Environment], error) {
	return invoke[Page[Environment]](ctx, a.inv, http.MethodGet, "/environments"+opts.Query(), nil)
}

// Get returns a single environment.
func (a EnvironmentsAPI) Get(ctx context.Context, id string) (*Single[Environment], error) {
	return invoke[Single[Environment]](ctx, a.inv, http.MethodGet, environmentPath(id), nil)
}

// Create registers a new environment.
func (a EnvironmentsAPI) Create(ctx context.Context, dto EnvironmentCreate) (*Single[Environment], error) {
	return invoke[Single[Environment]](ctx, a.inv, http.MethodPost, "/environments", dto)
}

// Update changes an existing environment.
func (a EnvironmentsAPI) Update(ctx context.Context, id string, dto EnvironmentUpdate) (*Single[Environment], error) {
	return invoke[Single[Environment]](ctx, a.inv, http.MethodPut, environmentPath(id), dto)
}

// Delete removes an environment.
func (a EnvironmentsAPI) Delete(ctx context.Context, id string) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodDelete, environmentPath(id), nil)
}

// environmentPath is the canonical path of an environment. Every
// environment-scoped resource lives below it.
func environmentPath(envID string) string {
	return "/environments/" + url.PathEscape(envID)
}
