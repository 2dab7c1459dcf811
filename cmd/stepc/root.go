package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/stepc"
	"github.com/aretw0/stepc/internal/adapters/file"
	"github.com/aretw0/stepc/internal/config"
	"github.com/aretw0/stepc/internal/logging"
	"github.com/aretw0/stepc/internal/metrics"
	"github.com/aretw0/stepc/pkg/domain"
	"github.com/spf13/cobra"
)

// errReported marks failures whose details were already printed by the command.
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   "stepc <input> <output>",
	Short: "stepc translates step programs into controller C code",
	Long: `stepc reads a step program (a single s-expression describing a robot's
finite-state behavior) and writes the equivalent C statements to the output file.
The output file is replaced atomically and never left half-written.`,
	Args:          exactArgs(2, "<input> <output>"),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], args[1])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(rootCmd, err, os.Stderr))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default warn)")
	rootCmd.PersistentFlags().String("indent", "", "Indentation added per nesting level (default two spaces)")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write conversion metrics to this file in Prometheus text format")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &domain.UsageError{Msg: err.Error()}
	})
}

// report prints err and returns the process exit status.
func report(cmd *cobra.Command, err error, w io.Writer) int {
	if errors.Is(err, errReported) {
		return 1
	}
	var usageErr *domain.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(w, "Error: %v\n\n%s", err, cmd.UsageString())
		return 2
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}

func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &domain.UsageError{Msg: fmt.Sprintf("%s expects %s, got %d argument(s)", cmd.Name(), names, len(args))}
		}
		return nil
	}
}

// loadConfig reads the --config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("indent"); v != "" {
		cfg.Indent = v
	}
	if v, _ := cmd.Flags().GetString("metrics-file"); v != "" {
		cfg.MetricsFile = v
	}
	return cfg, cfg.Validate()
}

// newConverter builds a Converter from the effective configuration.
// The returned recorder is nil when metrics are disabled.
func newConverter(cmd *cobra.Command) (*stepc.Converter, *metrics.Recorder, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, cfg, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, cfg, err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	opts := []stepc.Option{
		stepc.WithLogger(logger),
		stepc.WithIndentUnit(cfg.Indent),
	}

	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, stepc.WithObserver(rec))
	}
	return stepc.New(opts...), rec, cfg, nil
}

func runConvert(cmd *cobra.Command, input, output string) error {
	conv, rec, cfg, err := newConverter(cmd)
	if err != nil {
		return err
	}

	convErr := conv.Convert(input, output)

	if rec != nil {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to write metrics: %v\n", err)
		}
	}
	return convErr
}

// readProgram parses the program at path with the converter's parser.
func readProgram(conv *stepc.Converter, path string) (domain.Node, error) {
	src, err := file.Read(path)
	if err != nil {
		return nil, err
	}
	return conv.Parse(src)
}
