package tools

import (
	"context"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type noArgs struct{}

func registerSystemTools(t *Tools, inv arcane.Invoker) error {
	system := arcane.System(inv)

	return t.Register("arcane_version", ToolDef{
		Description: "Get the Arcane server version information.",
		Fn: Typed(func(ctx context.Context, _ noArgs) (string, error) {
			v, err := system.Version(ctx)
			if err != nil {
				return "", err
			}
			return "Arcane version: " + v.Data.Version, nil
		}),
		Params: map[string]ParamDef{},
	})
}
