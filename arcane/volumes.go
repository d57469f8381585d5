package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// VolumesAPI groups volume operations. Volumes are addressed by name.
type VolumesAPI struct {
	inv Invoker
}

// Volumes returns the volume operations backed by inv.
func Volumes(inv Invoker) VolumesAPI {
	return VolumesAPI{inv: inv}
}

// List returns the volumes of an environment.
func (a VolumesAPI) List(ctx context.Context, envID string) (*Page[Document], error) {
	return invoke[Page[Document]](ctx, a.inv, http.MethodGet, volumesPath(envID), nil)
}

// Inspect returns a single volume.
func (a VolumesAPI) Inspect(ctx context.Context, envID, name string) (*Single[Document], error) {
	return invoke[Single[Document]](ctx, a.inv, http.MethodGet, volumesPath(envID)+"/"+url.PathEscape(name), nil)
}

// Remove deletes a volume.
func (a VolumesAPI) Remove(ctx context.Context, envID, name string) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodDelete, volumesPath(envID)+"/"+url.PathEscape(name), nil)
}

// Prune removes unused volumes.
func (a VolumesAPI) Prune(ctx context.Context, envID string) (*Single[VolumePruneReport], error) {
	return invoke[Single[VolumePruneReport]](ctx, a.inv, http.MethodPost, volumesPath(envID)+"/prune", nil)
}

func volumesPath(envID string) string {
	return environmentPath(envID) + "/volumes"
}
