package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// ImagesAPI groups image operations.
type ImagesAPI struct {
	inv Invoker
}

// Images returns the image operations backed by inv.
func Images(inv Invoker) ImagesAPI {
	return ImagesAPI{inv: inv}
}

// List returns the images of an environment.
func (a ImagesAPI) List(ctx context.Context, envID string) (*Page[Document], error) {
	return invoke[Page[Document]](ctx, a.inv, http.MethodGet, imagesPath(envID), nil)
}

// Pull pulls an image. The body is {"imageName": ...}.
func (a ImagesAPI) Pull(ctx context.Context, envID string, opts ImagePullOptions) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodPost, imagesPath(envID)+"/pull", opts)
}

// Remove deletes an image.
func (a ImagesAPI) Remove(ctx context.Context, envID, imageID string) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodDelete, imagesPath(envID)+"/"+url.PathEscape(imageID), nil)
}

// Prune removes unused images.
func (a ImagesAPI) Prune(ctx context.Context, envID string) (*Single[ImagePruneReport], error) {
	return invoke[Single[ImagePruneReport]](ctx, a.inv, http.MethodPost, imagesPath(envID)+"/prune", nil)
}

func imagesPath(envID string) string {
	return environmentPath(envID) + "/images"
}
