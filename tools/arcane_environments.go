package tools

import (
	"context"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type environmentCreateArgs struct {
	arcane.EnvironmentCreate
}

type environmentUpdateArgs struct {
	envRef
	arcane.EnvironmentUpdate
}

func registerEnvironmentTools(t *Tools, inv arcane.Invoker) error {
	envs := arcane.Environments(inv)

	return registerAll(t, []namedTool{
		{"arcane_environment_list", ToolDef{
			Description: "List all Docker environments managed by Arcane. Returns environment IDs, names, and connection status.",
			Fn: Typed(func(ctx context.Context, a listArgs) (string, error) {
				page, err := envs.List(ctx, a.options())
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: listParams("Filter environments by name"),
		}},

		{"arcane_environment_get", ToolDef{
			Description: "Get details of a specific Docker environment by ID or name.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				id, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				env, err := envs.Get(ctx, id)
				if err != nil {
					return "", err
				}
				return pretty(env.Raw())
			}),
			Params: envParams,
		}},

		{"arcane_environment_create", ToolDef{
			Description: "Create a new Docker environment in Arcane.",
			Fn: Typed(func(ctx context.Context, a environmentCreateArgs) (string, error) {
				env, err := envs.Create(ctx, a.EnvironmentCreate)
				if err != nil {
					return "", err
				}
				body, err := pretty(env.Raw())
				if err != nil {
					return "", err
				}
				return "Environment created successfully:\n" + body, nil
			}),
			Params: map[string]ParamDef{
				"name":           {Type: "string", Description: "Environment name", Required: true},
				"apiUrl":         {Type: "string", Description: "Docker API URL", Required: true},
				"accessToken":    {Type: "string", Description: "Docker access token"},
				"bootstrapToken": {Type: "string", Description: "Bootstrap token for agent pairing"},
				"enabled":        {Type: "boolean", Description: "Whether the environment is enabled"},
				"isEdge":         {Type: "boolean", Description: "Whether this is an edge environment"},
				"useApiKey":      {Type: "boolean", Description: "Use API key authentication"},
			},
		}},

		{"arcane_environment_update", ToolDef{
			Description: "Update an existing Docker environment.",
			Fn: Typed(func(ctx context.Context, a environmentUpdateArgs) (string, error) {
				id, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				env, err := envs.Update(ctx, id, a.EnvironmentUpdate)
				if err != nil {
					return "", err
				}
				body, err := pretty(env.Raw())
				if err != nil {
					return "", err
				}
				return "Environment updated successfully:\n" + body, nil
			}),
			Params: withParams(envParams, map[string]ParamDef{
				"name":             {Type: "string", Description: "New environment name"},
				"apiUrl":           {Type: "string", Description: "New Docker API URL"},
				"accessToken":      {Type: "string", Description: "New Docker access token"},
				"bootstrapToken":   {Type: "string", Description: "New bootstrap token"},
				"enabled":          {Type: "boolean", Description: "Enable or disable the environment"},
				"regenerateApiKey": {Type: "boolean", Description: "Regenerate the API key"},
			}),
		}},

		{"arcane_environment_delete", ToolDef{
			Description: "Delete a Docker environment from Arcane.",
			Fn: Typed(func(ctx context.Context, a envRef) (string, error) {
				id, err := a.resolve(ctx, inv)
				if err != nil {
					return "", err
				}
				resp, err := envs.Delete(ctx, id)
				if err != nil {
					return "", err
				}
				return messageOr(resp, "Environment deleted successfully"), nil
			}),
			Params: envParams,
		}},
	})
}
