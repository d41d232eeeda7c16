package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/c360studio/semcrm/config"
	"github.com/c360studio/semcrm/document"
	"github.com/c360studio/semcrm/export"
	"github.com/c360studio/semcrm/graph"
	"github.com/c360studio/semcrm/storage"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/spf13/cobra"
)

// publishSource tags published triples with their origin.
const publishSource = "semcrm.build"

type buildOptions struct {
	format  string
	output  string
	base    string
	mint    bool
	strict  bool
	watch   bool
	publish bool
	store   bool
}

func buildCmd(global *globalOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <path|dir|pattern>...",
		Short: "Build a graph from documents",
		Long: `Build loads every matching build document, creates its entities,
applies literals and relations, and writes the union graph.

Paths may be files, directories (searched recursively) or doublestar
patterns such as 'corpus/**/*.yaml'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), global.logLevel)

			cfg, err := config.NewLoader(logger).Load(global.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := opts.apply(cfg); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runBuild(ctx, cfg, args, opts.watch, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (turtle, ntriples, jsonld, dot)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&opts.base, "base", "", "Base URI for entities without an explicit URI")
	cmd.Flags().BoolVar(&opts.mint, "mint", false, "Mint base+uuid URIs instead of base+id")
	cmd.Flags().BoolVar(&opts.strict, "strict-labels", false, "Fail when any label is invalid")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Rebuild when documents change")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "Publish entities to the graph ingest stream")
	cmd.Flags().BoolVar(&opts.store, "store", false, "Save entity graphs to the NATS KV bucket")

	return cmd
}

// apply layers command-line flags over the loaded configuration.
func (o *buildOptions) apply(cfg *config.Config) error {
	if o.output != "" {
		cfg.Output.Path = o.output
		if o.format == "" {
			if f, err := export.FormatForPath(o.output); err == nil {
				cfg.Output.Format = string(f)
			}
		}
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.base != "" {
		cfg.Entity.BaseURI = o.base
	}
	if o.mint {
		cfg.Entity.MintURIs = true
	}
	if o.strict {
		cfg.Entity.StrictLabels = true
	}
	if o.publish {
		cfg.NATS.Enabled = true
	}
	if o.store {
		cfg.Store.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// sinks receive every built graph besides the serialized output.
type sinks struct {
	pub   graph.Publisher
	store *storage.Store
}

func runBuild(ctx context.Context, cfg *config.Config, paths []string, watch bool, stdout io.Writer, logger *slog.Logger) error {
	var out sinks
	if cfg.NATS.Enabled || cfg.Store.Enabled {
		client, err := connectToNATS(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer client.Close(ctx)

		if cfg.NATS.Enabled {
			out.pub = client
		}
		if cfg.Store.Enabled {
			if out.store, err = openStore(ctx, client, cfg.Store.Bucket); err != nil {
				return err
			}
		}
	}

	opts := []document.BuilderOption{
		document.WithBase(cfg.Entity.BaseURI),
		document.WithMintURIs(cfg.Entity.MintURIs),
		document.WithStrictLabels(cfg.Entity.StrictLabels),
		document.WithLogger(logger),
	}
	if out.store != nil {
		opts = append(opts, document.WithStore(out.store))
	}
	builder := document.NewBuilder(nil, opts...)

	once := func() error {
		return buildOnce(ctx, builder, cfg, paths, out, stdout, logger)
	}

	if !watch {
		return once()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := once(); err != nil {
		logger.Error("Build failed", "error", err)
	}

	watcher, err := document.NewWatcher(watchRoots(paths), cfg.Watch.Debounce, logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if files, err := document.Expand(paths...); err == nil {
		for _, f := range files {
			watcher.Prime(f)
		}
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return nil
		case ev, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			logger.Info("Document changed, rebuilding", "path", ev.Path, "op", ev.Operation)
			drain(watcher.Events())
			if err := once(); err != nil {
				logger.Error("Build failed", "error", err)
			}
		}
	}
}

func buildOnce(ctx context.Context, b *document.Builder, cfg *config.Config, paths []string, out sinks, stdout io.Writer, logger *slog.Logger) error {
	start := time.Now()

	docs, err := document.LoadAll(paths...)
	if err != nil {
		return err
	}

	g, report, err := b.Build(docs...)
	if err != nil {
		return err
	}

	if err := writeGraph(g, cfg, stdout); err != nil {
		return err
	}

	if out.pub != nil {
		n, err := graph.PublishTo(ctx, out.pub, cfg.NATS.Subject, g, publishSource)
		if err != nil {
			return fmt.Errorf("publish: %w", err)
		}
		logger.Info("Published entities", "count", n, "subject", cfg.NATS.Subject)
	}

	if out.store != nil {
		n, err := out.store.Save(ctx, g)
		if err != nil {
			return fmt.Errorf("store: %w", err)
		}
		logger.Info("Stored entities", "count", n, "bucket", cfg.Store.Bucket)
	}

	logger.Info("Build complete",
		"documents", report.Documents,
		"entities", report.Entities,
		"statements", report.Statements,
		"minted", report.Minted,
		"failed_relations", report.FailedRelations,
		"failed_literals", report.FailedLiterals,
		"dropped_labels", report.DroppedLabels,
		"duration", time.Since(start))
	return nil
}

// writeGraph serializes g to the configured output path, or stdout.
func writeGraph(g *graph.Graph, cfg *config.Config, stdout io.Writer) error {
	format := cfg.OutputFormat()

	if cfg.Output.Path == "" {
		return g.Write(stdout, format)
	}

	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := g.Write(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// watchRoots reduces path arguments to the directories that contain them.
func watchRoots(paths []string) []string {
	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.ContainsAny(p, "*?[{") {
			base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
			p = filepath.FromSlash(base)
		}
		roots = append(roots, p)
	}
	return roots
}

func drain(events <-chan document.WatchEvent) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func openStore(ctx context.Context, client *natsclient.Client, bucket string) (*storage.Store, error) {
	js, err := client.JetStream()
	if err != nil {
		return nil, fmt.Errorf("get jetstream: %w", err)
	}
	store, err := storage.NewStore(ctx, js, bucket)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

func connectToNATS(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*natsclient.Client, error) {
	url := cfg.NATS.URL
	logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	logger.Info("Connected to NATS", "url", url)
	return client, nil
}

// wrapNATSError provides guidance when the NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

Start a server, or set NATS_URL to point to one, or run without --publish or --store.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
