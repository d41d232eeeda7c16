package main

import (
	"context"
	"fmt"

	"github.com/c360studio/semcrm/config"
	"github.com/c360studio/semcrm/graph"
	"github.com/spf13/cobra"
)

func fetchCmd(global *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch [uri]",
		Short: "Print a stored entity graph, or list stored entities",
		Long: `Fetch reads entity graphs saved by 'semcrm build --store' from the
configured NATS KV bucket. Without an argument it lists the stored URIs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), global.logLevel)

			cfg, err := config.NewLoader(logger).Load(global.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if format != "" {
				cfg.Output.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := connectToNATS(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			store, err := openStore(ctx, client, cfg.Store.Bucket)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				uris, err := store.List(ctx)
				if err != nil {
					return err
				}
				for _, uri := range uris {
					fmt.Fprintln(out, string(uri))
				}
				return nil
			}

			uri, err := graph.ParseURI(args[0])
			if err != nil {
				return err
			}
			g, err := store.Fetch(ctx, uri)
			if err != nil {
				return err
			}
			return g.Write(out, cfg.OutputFormat())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, ntriples, jsonld, dot)")
	return cmd
}
