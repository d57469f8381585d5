package tools

import (
	"context"
	"fmt"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type stackListArgs struct {
	envRef
	listArgs
}

type stackDeployArgs struct {
	envRef
	arcane.ProjectCreate
}

type stackUpdateArgs struct {
	stackRef
	arcane.ProjectUpdate
}

// stackLifecycle describes one start/stop/restart/pull style tool.
type stackLifecycle struct {
	name        string
	description string
	call        func(arcane.StacksAPI, context.Context, string, string) (*arcane.ActionResponse, error)
	text        func(stack, envID string) string
}

var stackLifecycles = []stackLifecycle{
	{
		name:        "arcane_stack_start",
		description: "Start a Docker Compose stack.",
		call:        arcane.StacksAPI.Start,
		text: func(stack, envID string) string {
			return fmt.Sprintf("Stack '%s' started successfully in environment '%s'", stack, envID)
		},
	},
	{
		name:        "arcane_stack_stop",
		description: "Stop a Docker Compose stack.",
		call:        arcane.StacksAPI.Stop,
		text: func(stack, envID string) string {
			return fmt.Sprintf("Stack '%s' stopped successfully in environment '%s'", stack, envID)
		},
	},
	{
		name:        "arcane_stack_restart",
		description: "Restart a Docker Compose stack.",
		call:        arcane.StacksAPI.Restart,
		text: func(stack, envID string) string {
			return fmt.Sprintf("Stack '%s' restarted successfully in environment '%s'", stack, envID)
		},
	},
	{
		name:        "arcane_stack_pull",
		description: "Pull images for a Docker Compose stack.",
		call:        arcane.StacksAPI.Pull,
		text: func(stack, envID string) string {
			return fmt.Sprintf("Images pulled successfully for stack '%s' in environment '%s'", stack, envID)
		},
	},
}

func registerStackTools(t *Tools, inv arcane.Invoker) error {
	stacks := arcane.Stacks(inv)
	refParams := withParams(envParams, stackParams)

	list := []namedTool{
		{"arcane_stack_list", ToolDef{
			Description: "List all Docker Compose stacks (projects) in an environment.",
			Fn: Typed(func(ctx context.Context, a stackListArgs) (string, error) {
				envID, err := a.envRef.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				page, err := stacks.List(ctx, envID, a.options())
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: withParams(envParams, listParams("Filter stacks by name")),
		}},

		{"arcane_stack_get", ToolDef{
			Description: "Get details of a specific Docker Compose stack by ID or name.",
			Fn: Typed(func(ctx context.Context, a stackRef) (string, error) {
				envID, stackID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				stack, err := stacks.Get(ctx, envID, stackID)
				if err != nil {
					return "", err
				}
				return pretty(stack.Raw())
			}),
			Params: refParams,
		}},

		{"arcane_stack_deploy", ToolDef{
			Description: "Deploy a new Docker Compose stack to an environment.",
			Fn: Typed(func(ctx context.Context, a stackDeployArgs) (string, error) {
				envID, err := a.envRef.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				if _, err := stacks.Deploy(ctx, envID, a.ProjectCreate); err != nil {
					return "", err
				}
				return fmt.Sprintf("Stack '%s' deployed successfully in environment '%s'", a.Name, envID), nil
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"name":           {Type: "string", Description: "Stack name", Required: true},
				"composeContent": {Type: "string", Description: "Docker Compose YAML content", Required: true},
				"envContent":     {Type: "string", Description: "Environment variables file content"},
			}),
		}},

		{"arcane_stack_update", ToolDef{
			Description: "Update an existing Docker Compose stack.",
			Fn: Typed(func(ctx context.Context, a stackUpdateArgs) (string, error) {
				envID, stackID, err := a.stackRef.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				stack, err := stacks.Update(ctx, envID, stackID, a.ProjectUpdate)
				if err != nil {
					return "", err
				}
				body, err := pretty(stack.Raw())
				if err != nil {
					return "", err
				}
				return "Stack updated successfully:\n" + body, nil
			}),
			Params: withParams(refParams, map[string]ParamDef{
				"name":           {Type: "string", Description: "New stack name"},
				"composeContent": {Type: "string", Description: "New Docker Compose YAML content"},
				"envContent":     {Type: "string", Description: "New environment variables file content"},
			}),
		}},

		{"arcane_stack_delete", ToolDef{
			Description: "Delete a Docker Compose stack from an environment.",
			Fn: Typed(func(ctx context.Context, a stackRef) (string, error) {
				envID, stackID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				resp, err := stacks.Delete(ctx, envID, stackID)
				if err != nil {
					return "", err
				}
				return messageOr(resp, "Stack deleted successfully"), nil
			}),
			Params: refParams,
		}},
	}

	for _, lc := range stackLifecycles {
		lc := lc
		list = append(list, namedTool{lc.name, ToolDef{
			Description: lc.description,
			Fn: Typed(func(ctx context.Context, a stackRef) (string, error) {
				envID, stackID, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				name, err := stackDisplayName(ctx, stacks, envID, stackID, a.StackName)
				if err != nil {
					return "", err
				}
				if _, err := lc.call(stacks, ctx, envID, stackID); err != nil {
					return "", err
				}
				return lc.text(name, envID), nil
			}),
			Params: refParams,
		}})
	}

	return registerAll(t, list)
}

// stackDisplayName returns the supplied name, or fetches it when the stack
// was addressed by ID. The lookup happens before the action runs.
func stackDisplayName(ctx context.Context, stacks arcane.StacksAPI, envID, stackID, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	stack, err := stacks.Get(ctx, envID, stackID)
	if err != nil {
		return "", err
	}
	return stack.Data.Name, nil
}
