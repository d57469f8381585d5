package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/everydev1618/arcane-mcp/config"
)

func newToolsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		Long:  "Print every exposed tool with its description and argument schema. No backend is contacted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			// The catalog needs no backend, so a nil invoker is enough.
			reg, err := buildTools(nil, cfg.Tools)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(reg.Schema()); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				data, err := json.MarshalIndent(reg.Schema(), "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			case "names":
				for _, name := range reg.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q: use yaml, json or names", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "yaml", "output format: yaml, json or names")
	return cmd
}
