// Package commands implements the qit command line.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/qit/internal/catalog"
	"github.com/JaimeStill/qit/internal/config"
)

type options struct {
	configPath string
	rulesPath  string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree writing results to out and
// diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "qit",
		Short:        "Generate and classify search queries from a seed phrase",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(errOut)
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.BaseConfigFile, "config file (TOML)")
	root.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", "rules file layered over the built-in tables (overrides pipeline.rules_file)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")

	root.AddCommand(generateCmd(opts), rulesCmd(opts))
	return root
}

func (o *options) load(errOut io.Writer) error {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return err
	}

	if o.rulesPath != "" {
		cfg.Pipeline.RulesFile = o.rulesPath
	}
	if o.logLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.Log.Level = o.logLevel
	}

	o.cfg = cfg
	o.logger = cfg.Log.NewLogger(errOut).With("cmd", "qit")
	return nil
}

func (o *options) tables() (*catalog.Tables, error) {
	return catalog.Load(o.cfg.Pipeline.RulesFile)
}
