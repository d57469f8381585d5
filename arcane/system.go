package arcane

import (
	"context"
	"net/http"
)

// SystemAPI groups instance-level operations.
type SystemAPI struct {
	inv Invoker
}

// System returns the system operations backed by inv.
func System(inv Invoker) SystemAPI {
	return SystemAPI{inv: inv}
}

// Version returns the backend version.
func (a SystemAPI) Version(ctx context.Context) (*Single[VersionInfo], error) {
	return invoke[Single[VersionInfo]](ctx, a.inv, http.MethodGet, "/version", nil)
}
