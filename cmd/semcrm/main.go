// Package main provides the semcrm binary entry point.
// semcrm builds CIDOC-CRM, LRMoo and CRMcls graphs from build documents and
// serializes or publishes them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semcrm"
)

// globalOptions holds the persistent flags shared by all commands.
type globalOptions struct {
	configPath string
	logLevel   string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "CIDOC-CRM triple generator",
		Long: `semcrm generates RDF statements for CIDOC-CRM family ontologies.

Build documents (YAML or JSON) declare entities by catalog class, their
labels, literal properties and named relations. semcrm resolves every
relation to its predicate pair, emits both directions, and writes the
resulting graph as Turtle, N-Triples, JSON-LD or DOT.

Supported ontologies:
- CIDOC-CRM
- LRMoo
- CRMdig
- PEM
- CRMcls`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		buildCmd(opts),
		fetchCmd(opts),
		classesCmd(),
		prefixesCmd(),
		formatsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// newLogger builds a text logger at the named level and installs it as the default.
func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
