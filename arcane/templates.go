package arcane

import (
	"context"
	"net/http"
	"net/url"
)

// TemplatesAPI groups compose template operations. Templates are global,
// not scoped to an environment.
type TemplatesAPI struct {
	inv Invoker
}

// Templates returns the template operations backed by inv.
func Templates(inv Invoker) TemplatesAPI {
	return TemplatesAPI{inv: inv}
}

// List returns templates. Only opts.Search is sent.
func (a TemplatesAPI) List(ctx context.Context, opts ListOptions) (*Page[Document], error) {
	return invoke[Page[Document]](ctx, a.inv, http.MethodGet, "/templates"+opts.searchQuery(), nil)
}

// Get returns a single template.
func (a TemplatesAPI) Get(ctx context.Context, id string) (*Single[Document], error) {
	return invoke[Single[Document]](ctx, a.inv, http.MethodGet, templatePath(id), nil)
}

// Create adds a template.
func (a TemplatesAPI) Create(ctx context.Context, dto TemplateCreate) (*Single[Document], error) {
	return invoke[Single[Document]](ctx, a.inv, http.MethodPost, "/templates", dto)
}

// Update changes a template.
func (a TemplatesAPI) Update(ctx context.Context, id string, dto TemplateUpdate) (*Single[Document], error) {
	return invoke[Single[Document]](ctx, a.inv, http.MethodPut, templatePath(id), dto)
}

// Delete removes a template.
func (a TemplatesAPI) Delete(ctx context.Context, id string) (*ActionResponse, error) {
	return invoke[ActionResponse](ctx, a.inv, http.MethodDelete, templatePath(id), nil)
}

func templatePath(id string) string {
	return "/templates/" + url.PathEscape(id)
}
