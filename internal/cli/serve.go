package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutc/internal/server"
	"github.com/matzehuels/layoutc/pkg/cache"
	"github.com/matzehuels/layoutc/pkg/observability"
	"github.com/matzehuels/layoutc/pkg/pipeline"
)

// serveFlags holds the flags of the serve command.
type serveFlags struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	noCache       bool
	noMetrics     bool
	maxBody       int64
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

POST a tree document to /v1/layout to receive its JSON layout document.
Query parameters width, height, strict, format and nocache mirror the flags
of the compute command. Prometheus metrics are served at /metrics.

Layouts are cached in Redis when --redis is given, otherwise in the local
cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&flags.redisAddr, "redis", "", "Redis address for the layout cache (host:port)")
	cmd.Flags().StringVar(&flags.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&flags.redisDB, "redis-db", 0, "Redis database")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.noMetrics, "no-metrics", false, "disable the /metrics endpoint")
	cmd.Flags().Int64Var(&flags.maxBody, "max-body", server.DefaultMaxBodySize, "maximum request body size in bytes")

	return cmd
}

// runServe wires cache, hooks and server, and blocks until ctx is done.
func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	logger := loggerFromContext(ctx)

	store, backend, err := c.serveCache(ctx, flags)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, logger)
	defer runner.Close()

	opts := []server.Option{server.WithMaxBodySize(flags.maxBody)}
	if !flags.noMetrics {
		hooks := observability.NewPrometheusHooks(prometheus.NewRegistry())
		observability.SetLayoutHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
		defer observability.Reset()
		opts = append(opts, server.WithMetrics(hooks.Handler()))
	}

	printSuccess("Serving layout API")
	printKeyValue("Address", flags.addr)
	printKeyValue("Cache", backend)
	printKeyValue("Metrics", fmt.Sprintf("%t", !flags.noMetrics))
	printNewline()

	err = server.New(runner, logger, opts...).ListenAndServe(ctx, flags.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// serveCache picks the layout cache and describes it for display.
func (c *CLI) serveCache(ctx context.Context, flags serveFlags) (cache.Cache, string, error) {
	switch {
	case flags.noCache:
		return cache.NewNullCache(), "disabled", nil
	case flags.redisAddr != "":
		rc := cache.NewRedisCache(flags.redisAddr, flags.redisPassword, flags.redisDB)
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, "", fmt.Errorf("connect redis %s: %w", flags.redisAddr, err)
		}
		return rc, "redis " + flags.redisAddr, nil
	default:
		store, err := newCache(false)
		if err != nil {
			return nil, "", fmt.Errorf("open cache: %w", err)
		}
		if fc, ok := store.(*cache.FileCache); ok {
			return store, "file " + fc.Dir(), nil
		}
		return store, "disabled", nil
	}
}
