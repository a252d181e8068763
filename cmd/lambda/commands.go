package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ib-77/lambda/internal/pipeline"
)

var errInteractiveInput = errors.New("refusing to read a document from a terminal; pipe one in or use --file")

type rootOptions struct {
	configPath string
	logLevel   string

	registry *pipeline.Registry
	runner   *pipeline.Runner
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "lambda",
		Short:         "Run declarative pipelines over JSON and YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "lambda.yaml", "pipeline config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides the config file")

	cmd.AddCommand(newRunCmd(opts), newListCmd(opts))
	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := pipeline.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	o.registry = pipeline.NewRegistry()
	o.runner, err = pipeline.NewRunner(o.registry, cfg)
	return err
}

func newLogger(lc pipeline.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var file, output string

	cmd := &cobra.Command{
		Use:   "run <pipeline>",
		Short: "Run a pipeline on a document read from --file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			defer closeIn()

			doc, err := pipeline.DecodeDocument(in)
			if err != nil {
				return err
			}

			out, err := opts.runner.Run(cmd.Context(), args[0], doc)
			if err != nil {
				return err
			}
			return pipeline.EncodeDocument(cmd.OutOrStdout(), out, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "document to read instead of stdin")
	cmd.Flags().StringVarP(&output, "output", "o", pipeline.FormatJSON, "output format: json or yaml")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured pipelines and available steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "pipelines:")
			for _, name := range opts.runner.Names() {
				p, err := opts.runner.Pipeline(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  %s: %v\n", name, p.Steps())
			}

			fmt.Fprintln(w, "steps:")
			for _, name := range opts.registry.Names() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			return nil
		},
	}
}

// openInput picks the document source. Reading from an interactive terminal
// would hang waiting for input, so it is refused.
func openInput(stdin io.Reader, file string) (io.Reader, func(), error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil, errInteractiveInput
	}
	return stdin, func() {}, nil
}
