package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// StacksAPI groups Docker Compose stack (project) operations.
type StacksAPI struct {
	inv Invoker
}

// Stacks returns the stack operations backed by inv.
func Stacks(inv Invoker) StacksAPI {
	return StacksAPI{inv: inv}
}

// List returns the stacks of an environment. Only opts.Search is sent.
func (a StacksAPI) List(ctx context.Context, envID string, opts ListOptions) (*Page[Project], error) {
	return invoke[Page[Project]](ctx, a.inv, http.MethodGet, environmentPath(envID)+"/projects"+opts.searchQuery(), nil)
}

// Get returns a single stack.
func (a StacksAPI) Get(ctx context.Context, envID, stackID string) (*Single[Project], error) {
	return invoke[Single[Project]](ctx, a.inv, http.MethodGet, stackPath(envID, stackID), nil)
}

// Deploy creates and deploys a new stack.
func (a StacksAPI) Deploy(ctx context.Context, envID string, dto ProjectCreate) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodPost, environmentPath(envID)+"/projects", dto)
}

// Update changes an existing stack.
func (a StacksAPI) Update(ctx context.Context, envID, stackID string, dto ProjectUpdate) (*Single[Project], error) {
	return invoke[Single[Project]](ctx, a.inv, http.MethodPut, stackPath(envID, stackID), dto)
}

// Delete destroys a stack. The backend exposes this as DELETE .../destroy
// rather than on the stack's canonical path.
func (a StacksAPI) Delete(ctx context.Context, envID, stackID string) (*ActionResponse, error) {
	return a.action(ctx, http.MethodDelete, envID, stackID, "destroy")
}

// Start brings a stack up.
func (a StacksAPI) Start(ctx context.Context, envID, stackID string) (*ActionResponse, error) {
	return a.action(ctx, http.MethodPost, envID, stackID, "up")
}

// Stop brings a stack down.
func (a StacksAPI) Stop(ctx context.Context, envID, stackID string) (*ActionResponse, error) {
	return a.action(ctx, http.MethodPost, envID, stackID, "down")
}

// Restart restarts a stack.
func (a StacksAPI) Restart(ctx context.Context, envID, stackID string) (*ActionResponse, error) {
	return a.action(ctx, http.MethodPost, envID, stackID, "restart")
}

// Pull pulls the images of a stack.
func (a StacksAPI) Pull(ctx context.Context, envID, stackID string) (*ActionResponse, error) {
	return a.action(ctx, http.MethodPost, envID, stackID, "pull-project-images")
}

func (a StacksAPI) action(ctx context.Context, method, envID, stackID, verb string) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, method, stackPath(envID, stackID)+"/"+verb, nil)
}

func stackPath(envID, stackID string) string {
	return environmentPath(envID) + "/projects/" + url.PathEscape(stackID)
}
