package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutc/pkg/cache"
	"github.com/matzehuels/layoutc/pkg/core/tree"
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/export"
	"github.com/matzehuels/layoutc/pkg/manifest"
	"github.com/matzehuels/layoutc/pkg/observability"
	"github.com/matzehuels/layoutc/pkg/solver"
	"github.com/matzehuels/layoutc/pkg/solver/flex"
)

// keyTypeLayout labels layout entries in cache hooks.
const keyTypeLayout = "layout"

// Runner executes runs with caching. It holds no per-run state, so one
// Runner may serve concurrent runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Run decodes data and lays it out, consulting the cache first.
func (r *Runner) Run(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	doc, err := manifest.Decode(data, opts.Format)
	if err != nil {
		return nil, err
	}
	viewport := opts.viewport(doc.Viewport)
	if err := errors.ValidateViewport(viewport.Width, viewport.Height); err != nil {
		return nil, err
	}

	id := cache.Hash(data)
	key := r.Keyer.LayoutKey(id, cache.LayoutKeyOpts{
		Width:  viewport.Width,
		Height: viewport.Height,
		Strict: opts.Strict,
	})

	if !opts.NoCache {
		if l, ok := r.lookup(ctx, key, logger); ok {
			return &Result{
				ID:     id,
				Layout: l,
				Cached: true,
				Stats:  Stats{Placements: len(l.Rects), Omitted: len(l.Omitted)},
			}, nil
		}
	}

	res, err := r.compute(ctx, doc.Root, viewport, opts.Strict, logger)
	if err != nil {
		return nil, err
	}
	res.ID = id

	if !opts.NoCache {
		r.store(ctx, key, res.Layout, logger)
	}
	return res, nil
}

// Compute lays out an already decoded document without touching the cache.
func (r *Runner) Compute(ctx context.Context, doc *manifest.Document, opts Options) (*Result, error) {
	viewport := opts.viewport(doc.Viewport)
	if err := errors.ValidateViewport(viewport.Width, viewport.Height); err != nil {
		return nil, err
	}
	return r.compute(ctx, doc.Root, viewport, opts.Strict, r.logger(opts))
}

func (r *Runner) compute(ctx context.Context, root manifest.Node, viewport export.Viewport, strict bool, logger *log.Logger) (*Result, error) {
	content, err := manifest.Build(root)
	if err != nil {
		return nil, err
	}

	treeOpts := []tree.Option{tree.WithLogger(logger)}
	if strict {
		treeOpts = append(treeOpts, tree.WithStrictChildren())
	}
	rv := tree.NewRoot(content, treeOpts...)

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, rv.Len())
	start := time.Now()

	res, err := rv.Compute(flex.New(), solver.Viewport(viewport.Width, viewport.Height))
	duration := time.Since(start)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, duration, err)
		return nil, errors.Wrap(errors.ErrCodeSolver, err, "layout")
	}
	hooks.OnLayoutComplete(ctx, len(res.Placements), len(res.Omitted), duration, nil)

	for _, o := range res.Omitted {
		hooks.OnChildOmitted(ctx, tree.Describe(o.Parent), tree.Describe(o.Child))
		logger.Warn("omitted child",
			"parent", tree.Describe(o.Parent),
			"child", tree.Describe(o.Child),
			"err", errors.UserMessage(o.Err))
	}

	logger.Debug("computed layout",
		"elements", rv.Len(),
		"rects", len(res.Placements),
		"duration", duration)

	return &Result{
		Layout: export.FromResult(res, viewport),
		Stats: Stats{
			Elements:   rv.Len(),
			Placements: len(res.Placements),
			Omitted:    len(res.Omitted),
			Duration:   duration,
		},
	}, nil
}

func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (export.Layout, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
		return export.Layout{}, false
	}

	l, err := export.UnmarshalLayout(data)
	if err != nil {
		logger.Debug("discarding cached layout", "err", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
		return export.Layout{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeLayout)
	return l, true
}

func (r *Runner) store(ctx context.Context, key string, l export.Layout, logger *log.Logger) {
	data, err := export.MarshalLayout(l)
	if err != nil {
		logger.Warn("encode layout for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeLayout, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
