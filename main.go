// Command planar evaluates 2D geometry scripts and prints the resulting
// scene, query findings and sampled coverage as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/planar/pkg/config"
	"github.com/chazu/planar/pkg/engine"
	"github.com/chazu/planar/pkg/geom"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planar:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		cells      int
		logLevel   string
		cfg        *config.Config
	)

	root := &cobra.Command{
		Use:           "planar",
		Short:         "Evaluate 2D geometry scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configPath != "" {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = config.LoadOptional(".")
			}
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cells") {
				cfg.SampleCells = cells
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return setupLogging(cmd.ErrOrStderr(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ./"+config.FileName+" if present)")
	root.PersistentFlags().IntVar(&cells, "cells", 0, "coverage grid resolution along the longer side")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	evalCmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a script and print the result as JSON (FILE may be - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			result := NewApp(cfg).Evaluate(source)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			if n := len(result.Errors); n > 0 {
				return fmt.Errorf("%s: evaluation produced %d error(s)", args[0], n)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the planar version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "planar %s\n", version)
			return err
		},
	}

	root.AddCommand(evalCmd, versionCmd)
	return root
}

func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// setupLogging installs a text handler on w at the configured level for
// the CLI and every library package.
func setupLogging(w io.Writer, cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	geom.SetLogger(l)
	engine.SetLogger(l)
	return nil
}
