package tools

import (
	"context"
	"fmt"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type volumeArgs struct {
	envRef
	VolumeName string `json:"volumeName" validate:"required"`
}

func registerVolumeTools(t *Tools, inv arcane.Invoker) error {
	volumes := arcane.Volumes(inv)

	return registerAll(t, []namedTool{
		{"arcane_volume_list", ToolDef{
			Description: "List all Docker volumes in an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				page, err := volumes.List(ctx, envID)
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: envParams,
		}},

		{"arcane_volume_inspect", ToolDef{
			Description: "Get details of a specific Docker volume.",
			Fn: Typed(func(ctx context.Context, a volumeArgs) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				vol, err := volumes.Inspect(ctx, envID, a.VolumeName)
				if err != nil {
					return "", err
				}
				return pretty(vol.Raw())
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"volumeName": {Type: "string", Description: "Volume name to inspect", Required: true},
			}),
		}},

		{"arcane_volume_remove", ToolDef{
			Description: "Remove a Docker volume from an environment.",
			Fn: Typed(func(ctx context.Context, a volumeArgs) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				resp, err := volumes.Remove(ctx, envID, a.VolumeName)
				if err != nil {
					return "", err
				}
				return messageOr(resp, fmt.Sprintf("Volume '%s' removed successfully", a.VolumeName)), nil
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"volumeName": {Type: "string", Description: "Volume name to remove", Required: true},
			}),
		}},

		{"arcane_volume_prune", ToolDef{
			Description: "Remove unused Docker volumes from an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				report, err := volumes.Prune(ctx, envID)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Pruned %d volumes, reclaimed %d bytes%s",
					report.Data.VolumesDeleted, report.Data.SpaceReclaimed, humanSize(report.Data.SpaceReclaimed)), nil
			}),
			Params: envParams,
		}},
	})
}
