package tools

import (
	"context"
	"fmt"

	"github.com/distribution/reference"
	"github.com/docker/go-units"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type imagePullArgs struct {
	envRef
	arcane.ImagePullOptions
}

type imageRemoveArgs struct {
	envRef
	ImageID string `json:"imageId" validate:"required"`
}

func registerImageTools(t *Tools, inv arcane.Invoker) error {
	images := arcane.Images(inv)

	return registerAll(t, []namedTool{
		{"arcane_image_list", ToolDef{
			Description: "List all Docker images in an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				page, err := images.List(ctx, envID)
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: envParams,
		}},

		{"arcane_image_pull", ToolDef{
			Description: "Pull a Docker image in an environment.",
			Fn: Typed(func(ctx context.Context, a imagePullArgs) (string, error) {
				if err := checkImageReference(a.ImageName); err != nil {
					return "", &ArgsError{Err: err}
				}
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				resp, err := images.Pull(ctx, envID, a.ImagePullOptions)
				if err != nil {
					return "", err
				}
				return messageOr(resp, fmt.Sprintf("Image '%s' pulled successfully", a.ImageName)), nil
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"imageName": {Type: "string", Description: "Image name to pull (e.g., nginx:latest)", Required: true},
			}),
		}},

		{"arcane_image_remove", ToolDef{
			Description: "Remove a Docker image from an environment.",
			Fn: Typed(func(ctx context.Context, a imageRemoveArgs) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				resp, err := images.Remove(ctx, envID, a.ImageID)
				if err != nil {
					return "", err
				}
				return messageOr(resp, fmt.Sprintf("Image '%s' removed successfully", a.ImageID)), nil
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"imageId": {Type: "string", Description: "Image ID to remove", Required: true},
			}),
		}},

		{"arcane_image_prune", ToolDef{
			Description: "Remove unused Docker images from an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				report, err := images.Prune(ctx, envID)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Pruned %d images, reclaimed %d bytes%s",
					report.Data.ImagesDeleted, report.Data.SpaceReclaimed, humanSize(report.Data.SpaceReclaimed)), nil
			}),
			Params: envParams,
		}},
	})
}

// checkImageReference rejects names Docker could never pull. The name is
// sent to the backend as given, not in its normalized form.
func checkImageReference(name string) error {
	if _, err := reference.ParseNormalizedNamed(name); err != nil {
		return fmt.Errorf("imageName %q: %w", name, err)
	}
	return nil
}

// humanSize renders a byte count as " (1.5MB)", or nothing for zero.
func humanSize(n int64) string {
	if n <= 0 {
		return ""
	}
	return " (" + units.HumanSize(float64(n)) + ")"
}
