package tools

import (
	"context"
	"fmt"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type networkArgs struct {
	envRef
	NetworkID string `json:"networkId" validate:"required"`
}

func registerNetworkTools(t *Tools, inv arcane.Invoker) error {
	networks := arcane.Networks(inv)

	return registerAll(t, []namedTool{
		{"arcane_network_list", ToolDef{
			Description: "List all Docker networks in an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				page, err := networks.List(ctx, envID)
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: envParams,
		}},

		{"arcane_network_inspect", ToolDef{
			Description: "Get details of a specific Docker network.",
			Fn: Typed(func(ctx context.Context, a networkArgs) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				nw, err := networks.Inspect(ctx, envID, a.NetworkID)
				if err != nil {
					return "", err
				}
				return pretty(nw.Raw())
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"networkId": {Type: "string", Description: "Network ID to inspect", Required: true},
			}),
		}},

		{"arcane_network_remove", ToolDef{
			Description: "Remove a Docker network from an environment.",
			Fn: Typed(func(ctx context.Context, a networkArgs) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				resp, err := networks.Remove(ctx, envID, a.NetworkID)
				if err != nil {
					return "", err
				}
				return messageOr(resp, fmt.Sprintf("Network '%s' removed successfully", a.NetworkID)), nil
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"networkId": {Type: "string", Description: "Network ID to remove", Required: true},
			}),
		}},

		{"arcane_network_prune", ToolDef{
			Description: "Remove unused Docker networks from an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				report, err := networks.Prune(ctx, envID)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Pruned %d networks", report.Data.NetworksDeleted), nil
			}),
			Params: envParams,
		}},
	})
}
