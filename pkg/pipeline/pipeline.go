// Package pipeline provides the core composition pipeline for Folium.
//
// This package implements the complete validate → resolve → layout → render
// pipeline used by the CLI and the HTTP service. Centralizing it keeps both
// entry points behaving identically and gives them one caching layer.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: check the document against its schema, collecting every
//     violation
//  2. Resolve: merge theme, document, and per-block style hints
//  3. Layout: paginate blocks onto fixed-size pages
//  4. Render: emit bytes in the requested format
//
// Style resolution and decoration generation both depend only on the
// validated document, so the runner executes them concurrently and joins
// before layout.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    DesignStyle: "modern",
//	    ColorScheme: "green",
//	    Render:      render.Options{Format: render.FormatPrint},
//	}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifact
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
)

// DefaultCacheTTL bounds how long rendered artifacts stay cached.
const DefaultCacheTTL = 24 * time.Hour

// DefaultColorScheme is used when no scheme is requested.
const DefaultColorScheme = enhance.SchemeBlue

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run. The struct
// serializes to JSON for API requests.
type Options struct {
	// Theme overrides the document's own theme selection when non-empty.
	Theme string `json:"theme,omitempty"`

	// DesignStyle drives decoration generation. Empty means "follow the
	// effective theme name".
	DesignStyle enhance.DesignStyle `json:"designStyle,omitempty"`

	// ColorScheme selects the gradient ramp.
	ColorScheme enhance.ColorScheme `json:"colorScheme,omitempty"`

	// Layout holds the numeric layout parameters. A zero-value config takes
	// the full defaults; a non-zero one is used as given, so an explicit
	// zero (CardThreshold 0 makes every block a card, MarginTop 0 is a
	// flush top) stays expressible. Decode boundaries that accept partial
	// configs start from layout.DefaultConfig before decoding.
	Layout layout.Config `json:"layout"`

	// Render selects the backend and content toggles.
	Render render.Options `json:"render"`

	// Refresh skips the cache read (the result is still written back).
	Refresh bool `json:"refresh,omitempty"`

	// CacheTTL bounds the artifact's cache lifetime; zero means
	// DefaultCacheTTL.
	CacheTTL time.Duration `json:"-"`

	// Logger is the run's logger; nil discards.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has run.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Layout == (layout.Config{}) {
		o.Layout = layout.DefaultConfig()
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}

	if o.Render.Format == "" {
		o.Render.Format = render.FormatPrint
	}
	if err := o.Render.Validate(); err != nil {
		return err
	}

	if o.ColorScheme == "" {
		o.ColorScheme = DefaultColorScheme
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// =============================================================================
// Result - Pipeline Output
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RequestID uniquely identifies this run in logs and API responses.
	RequestID string

	// Artifact is the rendered output in the requested format.
	Artifact []byte

	// DocumentHash is the content hash of the input document.
	DocumentHash string

	// Plan is the computed layout; nil when the artifact came from cache.
	Plan *layout.Plan

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount   int
	PageCount    int
	ArtifactSize int
	PrepareTime  time.Duration // style resolution and decoration, joined
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache participation for the run.
type CacheInfo struct {
	ArtifactHit bool
}
