package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/everydev1618/arcane-mcp/tools"
)

// errToolFailed signals an error result after its text was printed.
var errToolFailed = errors.New("tool returned an error result")

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke one tool and print its result",
		Example: `  arcane-mcp call arcane_environment_list
  arcane-mcp call arcane_stack_start '{"environmentName":"production","stackName":"web"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &params); err != nil {
					return fmt.Errorf("arguments must be a JSON object: %w", err)
				}
			}

			cfg, err := a.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			reg, err := buildTools(newClient(cfg), cfg.Tools)
			if err != nil {
				return err
			}
			if !reg.Has(args[0]) {
				return fmt.Errorf("unknown tool %q", args[0])
			}

			res := tools.Outcome(reg.Execute(cmd.Context(), args[0], params))
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			if res.IsError {
				return errToolFailed
			}
			return nil
		},
	}
}
