package pipeline

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lbreuer/folium/pkg/cache"
	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
)

func testDoc() document.Document {
	return document.Document{
		Meta: document.Meta{Title: "Pipeline Test"},
		Blocks: []document.Block{
			{ID: "h", Content: document.Heading{Text: "Overview", Level: 1}},
			{ID: "p", Content: document.Paragraph{Text: "body text for the pipeline"}},
		},
		Styles: document.Styles{Theme: document.ThemeModern},
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestExecuteMarkup(t *testing.T) {
	runner := NewRunner(nil, quietLogger())
	opts := Options{
		ColorScheme: "green",
		Render:      render.Options{Format: render.FormatMarkup, IncludeTOC: true},
	}

	result, err := runner.Execute(context.Background(), testDoc(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.RequestID == "" {
		t.Error("missing request id")
	}
	if result.DocumentHash == "" {
		t.Error("missing document hash")
	}
	if result.Stats.BlockCount != 2 {
		t.Errorf("BlockCount = %d, want 2", result.Stats.BlockCount)
	}
	if result.Stats.PageCount < 1 {
		t.Errorf("PageCount = %d, want >= 1", result.Stats.PageCount)
	}
	if !strings.Contains(string(result.Artifact), "body text for the pipeline") {
		t.Error("artifact does not contain document text")
	}
	if result.CacheInfo.ArtifactHit {
		t.Error("first run should not be a cache hit")
	}
}

func TestExecuteCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, quietLogger())
	opts := Options{Render: render.Options{Format: render.FormatMarkup}}

	first, err := runner.Execute(context.Background(), testDoc(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second, err := runner.Execute(context.Background(), testDoc(), Options{Render: render.Options{Format: render.FormatMarkup}})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.ArtifactHit {
		t.Error("second run should hit the cache")
	}
	if string(second.Artifact) != string(first.Artifact) {
		t.Error("cached artifact differs from original")
	}

	// Refresh bypasses the read but still succeeds.
	third, err := runner.Execute(context.Background(), testDoc(), Options{Refresh: true, Render: render.Options{Format: render.FormatMarkup}})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.ArtifactHit {
		t.Error("refresh run must not read the cache")
	}
}

func TestExecuteValidationFailure(t *testing.T) {
	runner := NewRunner(nil, quietLogger())
	doc := document.Document{
		// Missing title, duplicate block ids: both must be reported.
		Blocks: []document.Block{
			{ID: "dup", Content: document.Paragraph{Text: "one"}},
			{ID: "dup", Content: document.Paragraph{Text: "two"}},
		},
	}

	_, err := runner.Execute(context.Background(), doc, Options{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !errors.Is(err, errors.ErrCodeSchemaViolation) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeSchemaViolation)
	}
	var violations errors.ValidationErrors
	if !stderrors.As(err, &violations) {
		t.Fatalf("error is not a violation list: %T", err)
	}
	if len(violations) < 2 {
		t.Errorf("got %d violations, want all of them: %v", len(violations), violations)
	}
}

func TestExecuteRejectsBadOptions(t *testing.T) {
	runner := NewRunner(nil, quietLogger())

	_, err := runner.Execute(context.Background(), testDoc(), Options{
		Render: render.Options{Format: "dvi"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}

	badLayout := layout.DefaultConfig()
	badLayout.CardThreshold = 2
	_, err = runner.Execute(context.Background(), testDoc(), Options{Layout: badLayout})
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeConfiguration)
	}
}

func TestOptionsLayoutDefaults(t *testing.T) {
	opts := Options{Render: render.Options{Format: render.FormatMarkup}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Layout != layout.DefaultConfig() {
		t.Errorf("zero layout config should take the full defaults, got %+v", opts.Layout)
	}
}

func TestOptionsKeepExplicitZeroLayoutValues(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.CardThreshold = 0 // every block a card
	cfg.MarginTop = 0
	opts := Options{Layout: cfg, Render: render.Options{Format: render.FormatMarkup}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Layout.CardThreshold != 0 {
		t.Errorf("CardThreshold = %g, explicit zero must not be replaced by the default", opts.Layout.CardThreshold)
	}
	if opts.Layout.MarginTop != 0 {
		t.Errorf("MarginTop = %g, explicit zero must not be replaced by the default", opts.Layout.MarginTop)
	}
}

func TestThemeOverride(t *testing.T) {
	runner := NewRunner(nil, quietLogger())
	doc := testDoc()
	doc.Styles.Theme = document.ThemeAcademic

	result, err := runner.Execute(context.Background(), doc, Options{
		Theme:  document.ThemeColorful,
		Render: render.Options{Format: render.FormatMarkup},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// The colorful theme paints the page cream, the academic theme white.
	if !strings.Contains(string(result.Artifact), "#fffaf0") {
		t.Error("theme override not reflected in output")
	}
}
