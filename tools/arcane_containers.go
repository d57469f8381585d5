package tools

import (
	"context"
	"fmt"

	"github.com/everydev1618/arcane-mcp/arcane"
)

// containerActions are the lifecycle tools, in registration order.
var containerActions = []struct {
	name        string
	description string
	past        string
	call        func(arcane.ContainersAPI, context.Context, string, string) (*arcane.ActionResponse, error)
}{
	{"arcane_container_start", "Start a Docker container.", "started", arcane.ContainersAPI.Start},
	{"arcane_container_stop", "Stop a Docker container.", "stopped", arcane.ContainersAPI.Stop},
	{"arcane_container_restart", "Restart a Docker container.", "restarted", arcane.ContainersAPI.Restart},
	{"arcane_container_kill", "Force kill a Docker container.", "killed", arcane.ContainersAPI.Kill},
}

func registerContainerTools(t *Tools, inv arcane.Invoker) error {
	containers := arcane.Containers(inv)
	refParams := withParams(envParams, containerParams)

	list := []namedTool{
		{"arcane_container_list", ToolDef{
			Description: "List all Docker containers in an environment.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				envID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				page, err := containers.List(ctx, envID)
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: envParams,
		}},

		{"arcane_container_get", ToolDef{
			Description: "Get details of a specific Docker container by ID or name.",
			Fn: Typed(func(ctx context.Context, a containerRef) (string, error) {
				envID, containerID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				c, err := containers.Get(ctx, envID, containerID)
				if err != nil {
					return "", err
				}
				return pretty(c.Raw())
			}),
			Params: refParams,
		}},
	}

	for _, action := range containerActions {
		action := action
		list = append(list, namedTool{action.name, ToolDef{
			Description: action.description,
			Fn: Typed(func(ctx context.Context, a containerRef) (string, error) {
				envID, containerID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				name := a.ContainerName
				if name == "" {
					c, err := containers.Get(ctx, envID, containerID)
					if err != nil {
						return "", err
					}
					name = c.Data.Name
				}
				if _, err := action.call(containers, ctx, envID, containerID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Container '%s' %s successfully in environment '%s'", name, action.past, envID), nil
			}),
			Params: refParams,
		}})
	}

	return registerAll(t, list)
}
