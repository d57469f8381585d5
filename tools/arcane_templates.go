package tools

import (
	"context"

	"github.com/everydev1618/arcane-mcp/arcane"
)

type templateRef struct {
	TemplateID string `json:"templateId" validate:"required"`
}

type templateCreateArgs struct {
	arcane.TemplateCreate
}

type templateUpdateArgs struct {
	templateRef
	arcane.TemplateUpdate
}

var stringList = &ParamDef{Type: "string"}

func registerTemplateTools(t *Tools, inv arcane.Invoker) error {
	templates := arcane.Templates(inv)
	idParam := map[string]ParamDef{
		"templateId": {Type: "string", Description: "Template ID", Required: true},
	}

	return registerAll(t, []namedTool{
		{"arcane_template_list", ToolDef{
			Description: "List all Docker Compose templates.",
			Fn: Typed(func(ctx context.Context, a listArgs) (string, error) {
				page, err := templates.List(ctx, a.options())
				if err != nil {
					return "", err
				}
				return pretty(page.Data.Raw())
			}),
			Params: listParams("Filter templates by name"),
		}},

		{"arcane_template_get", ToolDef{
			Description: "Get details of a specific template.",
			Fn: Typed(func(ctx context.Context, a templateRef) (string, error) {
				tmpl, err := templates.Get(ctx, a.TemplateID)
				if err != nil {
					return "", err
				}
				return pretty(tmpl.Raw())
			}),
			Params: idParam,
		}},

		{"arcane_template_create", ToolDef{
			Description: "Create a new Docker Compose template.",
			Fn: Typed(func(ctx context.Context, a templateCreateArgs) (string, error) {
				tmpl, err := templates.Create(ctx, a.TemplateCreate)
				if err != nil {
					return "", err
				}
				body, err := pretty(tmpl.Raw())
				if err != nil {
					return "", err
				}
				return "Template created successfully:\n" + body, nil
			}),
			Params: map[string]ParamDef{
				"name":           {Type: "string", Description: "Template name", Required: true},
				"composeContent": {Type: "string", Description: "Docker Compose YAML content", Required: true},
				"envContent":     {Type: "string", Description: "Environment variables file content"},
				"description":    {Type: "string", Description: "Template description"},
				"category":       {Type: "string", Description: "Template category"},
				"tags":           {Type: "array", Description: "Template tags", Items: stringList},
			},
		}},

		{"arcane_template_update", ToolDef{
			Description: "Update an existing template.",
			Fn: Typed(func(ctx context.Context, a templateUpdateArgs) (string, error) {
				tmpl, err := templates.Update(ctx, a.TemplateID, a.TemplateUpdate)
				if err != nil {
					return "", err
				}
				body, err := pretty(tmpl.Raw())
				if err != nil {
					return "", err
				}
				return "Template updated successfully:\n" + body, nil
			}),
			Params: withParams(idParam, map[string]ParamDef{
				"name":           {Type: "string", Description: "New template name"},
				"composeContent": {Type: "string", Description: "New Docker Compose YAML content"},
				"envContent":     {Type: "string", Description: "New environment variables file content"},
				"description":    {Type: "string", Description: "New template description"},
				"category":       {Type: "string", Description: "New template category"},
				"tags":           {Type: "array", Description: "New template tags", Items: stringList},
			}),
		}},

		{"arcane_template_delete", ToolDef{
			Description: "Delete a template.",
			Fn: Typed(func(ctx context.Context, a templateRef) (string, error) {
				resp, err := templates.Delete(ctx, a.TemplateID)
				if err != nil {
					return "", err
				}
				return messageOr(resp, "Template deleted successfully"), nil
			}),
			Params: idParam,
		}},
	})
}
