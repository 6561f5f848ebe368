package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/internal/queries"
	"github.com/JaimeStill/qit/internal/suggest"
	"github.com/JaimeStill/qit/pkg/pagination"
)

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

type generateOptions struct {
	language  string
	region    string
	format    string
	noSuggest bool
	intent    string
	source    string
}

func generateCmd(opts *options) *cobra.Command {
	g := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <seed...>",
		Short: "Expand a seed phrase into classified search queries",
		Long: "Expand a seed phrase with the rule engine and live autocomplete " +
			"suggestions, remove duplicates, and tag each query with a search intent. " +
			"Multiple arguments are joined into one seed.",
		Example: "  qit generate كورس برمجة --lang ar --region eg\n" +
			"  qit generate coffee --lang en --region us --format csv --intent question",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&g.language, "lang", "l", "", "language code (default pipeline.default_language)")
	cmd.Flags().StringVarP(&g.region, "region", "r", "", "region code (default pipeline.default_region)")
	cmd.Flags().StringVarP(&g.format, "format", "f", FormatTable, "output format: table, csv, json")
	cmd.Flags().BoolVar(&g.noSuggest, "no-suggest", false, "skip the live suggestion lookup")
	cmd.Flags().StringVar(&g.intent, "intent", "", "only print queries with this intent")
	cmd.Flags().StringVar(&g.source, "source", "", "only print queries from this source: rule-engine, external-suggestion")

	return cmd
}

func (g *generateOptions) run(ctx context.Context, opts *options, out, errOut io.Writer, seed string) error {
	switch g.format {
	case FormatTable, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", g.format)
	}

	filters, err := queries.NewFilters(g.intent, g.source)
	if err != nil {
		return err
	}

	tables, err := opts.tables()
	if err != nil {
		return err
	}

	var provider suggest.Provider = suggest.Disabled{}
	if !g.noSuggest {
		provider = suggest.New(&opts.cfg.Suggest, nil, opts.logger)
	}

	sys := queries.New(tables, provider, opts.cfg.Pipeline.Locale(), opts.logger, pagination.Config{})

	result, err := sys.Run(ctx, queries.Request{
		Seed:     seed,
		Language: g.language,
		Region:   g.region,
	})
	if err != nil {
		return err
	}

	if result.SuggestionsFailed {
		color.New(color.FgYellow).Fprintln(errOut, "warning: live suggestions unavailable, showing rule-engine queries only")
	}

	rows := filters.Apply(result.Queries)

	switch g.format {
	case FormatCSV:
		return queries.WriteCSV(out, rows)
	case FormatJSON:
		result.Queries = rows
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return writeTable(out, errOut, result, rows)
	}
}

func writeTable(out, errOut io.Writer, result *queries.Result, rows []keyword.Classified) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "QUERY\tINTENT\tSOURCE")
	for _, q := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", q.Query, q.Intent, q.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := make([]string, 0, len(keyword.Intents))
	for _, intent := range keyword.Intents {
		if n := result.Counts[intent]; n > 0 {
			summary = append(summary, fmt.Sprintf("%s=%d", intent, n))
		}
	}

	color.New(color.Bold).Fprintf(errOut, "%d queries for %q (%s): %s\n",
		len(result.Queries), result.Seed, result.Locale, strings.Join(summary, " "))
	return nil
}
