package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/shouldlint/config"
	"github.com/viant/shouldlint/lint"
	"github.com/viant/shouldlint/linter"
	"github.com/viant/shouldlint/report"
	"github.com/viant/shouldlint/rules"
	"github.com/viant/shouldlint/rules/propertyassertion"
)

// errProblemsFound signals error severity findings; the message was already printed
var errProblemsFound = errors.New("problems found")

type flags struct {
	configFile string
	format     string
	names      []string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &flags{}
	cmd := &cobra.Command{
		Use:   "shouldlint [paths...]",
		Short: "Report should.js assertions that are never called",
		Long: `shouldlint checks JavaScript and TypeScript test files for should.js assertion
chains that end in a property instead of a method call, e.g.

  user.should.be.ok;   // reported
  user.should.equal(1) // fine

Directories are walked recursively. Configuration is read from .shouldlint.yaml,
searched from the first path upwards to the project root, unless --config is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "configuration file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, yaml or json")
	cmd.Flags().StringSliceVar(&opts.names, "name", nil, "call names starting an assertion (default should)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *flags, targets []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return reportError(stderr, err)
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level, Prefix: "shouldlint"})

	formatter, err := report.New(opts.format)
	if err != nil {
		return reportError(stderr, err)
	}

	fs := afs.New()
	registry := rules.Default()
	cfg, err := loadConfig(ctx, fs, registry, opts.configFile, targets[0])
	if err != nil {
		return reportError(stderr, err)
	}
	if len(opts.names) > 0 {
		applyNames(cfg, opts.names)
	}

	l, err := linter.New(linter.WithFS(fs), linter.WithRegistry(registry), linter.WithConfig(cfg), linter.WithLogger(logger))
	if err != nil {
		return reportError(stderr, err)
	}
	findings, err := l.Lint(ctx, targets...)
	if err != nil {
		return reportError(stderr, err)
	}
	lint.SortFindings(findings)
	if err = formatter.Format(stdout, findings); err != nil {
		return reportError(stderr, err)
	}
	if report.Summarize(findings).Errors > 0 {
		return errProblemsFound
	}
	return nil
}

func loadConfig(ctx context.Context, fs afs.Service, registry *lint.Registry, location, target string) (*config.Config, error) {
	base := config.Default(registry)
	if location == "" {
		discovered, err := config.Discover(target)
		if err != nil {
			return nil, err
		}
		if discovered == "" {
			return base, nil
		}
		location = discovered
	}
	return config.Load(ctx, fs, location, base)
}

// applyNames overrides the trigger names of the property assertion rule
func applyNames(cfg *config.Config, names []string) {
	ruleConfig, ok := cfg.Rules[propertyassertion.ID]
	if !ok {
		ruleConfig = &config.RuleConfig{Severity: lint.Error}
		cfg.Rules[propertyassertion.ID] = ruleConfig
	}
	ruleConfig.Options = lint.Merge(ruleConfig.Options, lint.Options{"name": names})
}

func reportError(w io.Writer, err error) error {
	fmt.Fprintf(w, "shouldlint: %v\n", err)
	return err
}
