package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// NetworksAPI groups network operations.
type NetworksAPI struct {
	inv Invoker
}

// Networks returns the network operations backed by inv.
func Networks(inv Invoker) NetworksAPI {
	return NetworksAPI{inv: inv}
}

// List returns the networks of an environment.
func (a NetworksAPI) List(ctx context.Context, envID string) (*Page[Document], error) {
	return invoke[Page[Document]](ctx, a.inv, http.MethodGet, networksPath(envID), nil)
}

// Inspect returns a single network.
func (a NetworksAPI) Inspect(ctx context.Context, envID, networkID string) (*Single[Document], error) {
	return invoke[Single[Document]](ctx, a.inv, http.MethodGet, networksPath(envID)+"/"+url.PathEscape(networkID), nil)
}

// Remove deletes a network.
func (a NetworksAPI) Remove(ctx context.Context, envID, networkID string) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodDelete, networksPath(envID)+"/"+url.PathEscape(networkID), nil)
}

// Prune removes unused networks.
func (a NetworksAPI) Prune(ctx context.Context, envID string) (*Single[NetworkPruneReport], error) {
	return invoke[Single[NetworkPruneReport]](ctx, a.inv, http.MethodPost, networksPath(envID)+"/prune", nil)
}

func networksPath(envID string) string {
	return environmentPath(envID) + "/networks"
}
