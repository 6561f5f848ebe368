package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func rulesCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the active expansion catalog and intent rules",
		Long: "Print the rule tables the pipeline applies: the built-in defaults " +
			"with any rules file layered on top. TOML output is a valid rules file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := opts.tables()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch format {
			case "toml":
				enc := toml.NewEncoder(out)
				enc.SetIndentTables(true)
				return enc.Encode(tables)
			case FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tables)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml, json")
	return cmd
}
