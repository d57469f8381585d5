package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// ContainersAPI groups container operations.
type ContainersAPI struct {
	inv Invoker
}

// Containers returns the container operations backed by inv.
func Containers(inv Invoker) ContainersAPI {
	return ContainersAPI{inv: inv}
}

// List returns the containers of an environment. The endpoint has no
// server-side name filter.
func (a ContainersAPI) List(ctx context.Context, envID string) (*Page[ContainerSummary], error) {
	return invoke[Page[ContainerSummary]](ctx, a.inv, http.MethodGet, environmentPath(envID)+"/containers", nil)
}

// Get inspects a single container.
func (a ContainersAPI) Get(ctx context.Context, envID, containerID string) (*Single[ContainerDetails], error) {
	return invoke[Single[ContainerDetails]](ctx, a.inv, http.MethodGet, containerPath(envID, containerID), nil)
}

// Start starts a container.
func (a ContainersAPI) Start(ctx context.Context, envID, containerID string) (*ActionResponse, error) {
	return a.action(ctx, envID, containerID, "start", nil)
}

// Stop stops a container.
func (a ContainersAPI) Stop(ctx context.Context, envID, containerID string) (*ActionResponse, error) {
	return a.action(ctx, envID, containerID, "stop", nil)
}

// Restart restarts a container.
func (a ContainersAPI) Restart(ctx context.Context, envID, containerID string) (*ActionResponse, error) {
	return a.action(ctx, envID, containerID, "restart", nil)
}

// Kill force-kills a container. There is no dedicated kill endpoint; the
// generic update endpoint takes {"action":"kill"}.
func (a ContainersAPI) Kill(ctx context.Context, envID, containerID string) (*ActionResponse, error) {
	return a.action(ctx, envID, containerID, "update", containerAction{Action: "kill"})
}

func (a ContainersAPI) action(ctx context.Context, envID, containerID, verb string, body any) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodPost, containerPath(envID, containerID)+"/"+verb, body)
}

func containerPath(envID, containerID string) string {
	return environmentPath(envID) + "/containers/" + url.PathEscape(containerID)
}
