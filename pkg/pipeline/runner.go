package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lbreuer/folium/pkg/cache"
	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
	"github.com/lbreuer/folium/pkg/style"
)

// Runner encapsulates pipeline execution with artifact caching. Both the
// CLI and the HTTP service use it, so neither duplicates caching logic.
//
// The Runner is stateless except for the cache and logger; it stores no
// pipeline results. Multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// uses the default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete validate → resolve → layout → render pipeline
// with caching. Validation failures return the full violation list; one
// request's failure never affects concurrent runs.
func (r *Runner) Execute(ctx context.Context, doc document.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	if opts.Theme != "" {
		doc.Styles.Theme = opts.Theme
	}

	v, err := document.Validate(doc)
	if err != nil {
		return nil, err
	}

	result := &Result{RequestID: uuid.NewString()}

	docBytes, err := json.Marshal(v.Document())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hashing document")
	}
	result.DocumentHash = cache.Hash(docBytes)

	cacheKey := cache.Key("artifact", result.DocumentHash, opts.Theme,
		string(opts.DesignStyle), string(opts.ColorScheme), opts.Layout, opts.Render)

	if !opts.Refresh {
		if data, ok, err := r.Cache.Get(ctx, cacheKey); err != nil {
			logger.Warn("cache read failed", "err", err)
		} else if ok {
			logger.Info("artifact cache hit", "hash", result.DocumentHash[:12])
			result.Artifact = data
			result.Stats.ArtifactSize = len(data)
			result.Stats.BlockCount = len(v.Blocks())
			result.CacheInfo.ArtifactHit = true
			return result, nil
		}
	}

	// Style resolution and decoration generation both depend only on the
	// validated document; run them concurrently and join before layout.
	prepareStart := time.Now()
	designStyle := opts.DesignStyle

	var (
		sheet    *style.Sheet
		elements enhance.Elements
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sheet = style.ResolveSheet(v)
		return nil
	})
	g.Go(func() error {
		if designStyle == "" {
			// Mirror the effective theme. Recomputed here rather than read
			// from sheet so the two goroutines stay independent.
			designStyle = enhance.DesignStyle(style.ThemeByName(v.Styles().Theme).Name)
		}
		var err error
		elements, err = enhance.Generate(gctx, v, designStyle, opts.ColorScheme)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.Stats.PrepareTime = time.Since(prepareStart)

	logger.Info("prepared document",
		"blocks", len(v.Blocks()),
		"theme", sheet.Theme.Name,
		"duration", result.Stats.PrepareTime)

	layoutStart := time.Now()
	plan, err := layout.Layout(v, sheet, opts.Layout, sheet.PageSize)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BlockCount = len(v.Blocks())
	result.Stats.PageCount = plan.PageCount

	logger.Info("computed layout",
		"pages", plan.PageCount,
		"boxes", len(plan.Boxes),
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifact, err := rendererFor(opts.Render.Format).Render(v, sheet, plan, elements, opts.Render)
	if err != nil {
		return nil, err
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.ArtifactSize = len(artifact)

	logger.Info("rendered artifact",
		"format", opts.Render.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, cacheKey, artifact, opts.CacheTTL); err != nil {
		// Caching is best effort; the artifact is already in hand.
		logger.Warn("cache write failed", "err", err)
	}
	return result, nil
}

// RenderDocument is the function-level entry point: validate, lay out, and
// render one document without a cache.
func RenderDocument(ctx context.Context, doc document.Document, cfg layout.Config, ropts render.Options) ([]byte, error) {
	runner := NewRunner(nil, log.NewWithOptions(io.Discard, log.Options{}))
	result, err := runner.Execute(ctx, doc, Options{Layout: cfg, Render: ropts})
	if err != nil {
		return nil, err
	}
	return result.Artifact, nil
}
