package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlayout/internal/server"
	"github.com/matzehuels/gridlayout/pkg/cache"
	"github.com/matzehuels/gridlayout/pkg/observability"
	"github.com/matzehuels/gridlayout/pkg/pipeline"
)

// serverKeyPrefix separates server entries from CLI entries in a shared cache.
const serverKeyPrefix = "server:"

type serveOpts struct {
	addr     string
	redisURL string
	noCache  bool
	maxBody  int64
	timeout  time.Duration
}

// serveCommand creates the serve command that exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		redisURL: os.Getenv("GRIDLAYOUT_REDIS_URL"),
		maxBody:  server.DefaultMaxBodyBytes,
		timeout:  server.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Routes:
  GET  /healthz
  POST /v1/layout            diagram JSON in, positioned graph out
  POST /v1/render/{format}   diagram JSON in, json|dot|svg out

Layouts and artifacts are cached in Redis when --redis (or
GRIDLAYOUT_REDIS_URL) is set, otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", opts.redisURL, "redis URL for the shared cache (redis://host:6379/0)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")

	return cmd
}

func runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := newServerCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, serverKeyPrefix), logger)
	defer runner.Close()

	observability.NewLogHooks(logger).Register()

	srv := server.New(runner, logger,
		server.WithMaxBodyBytes(opts.maxBody),
		server.WithTimeout(opts.timeout))
	return srv.ListenAndServe(ctx, opts.addr)
}

func newServerCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)
	if opts.noCache || opts.redisURL == "" {
		c, err := newCache(opts.noCache)
		if err == nil {
			logger.Info("using local cache", "disabled", opts.noCache)
		}
		return c, err
	}

	rc, err := cache.NewRedisCacheFromURL(opts.redisURL)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("using redis cache")
	return rc, nil
}
