package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/pipeline"
	"github.com/lbreuer/folium/pkg/render"
)

func newTestServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(pipeline.NewRunner(nil, logger), logger)
}

func postRender(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleRenderMarkup(t *testing.T) {
	s := newTestServer()
	rec := postRender(t, s, renderRequest{
		Document: document.Document{
			Meta:   document.Meta{Title: "API Test"},
			Blocks: []document.Block{{ID: "p", Content: document.Paragraph{Text: "served over http"}}},
		},
		Options: pipeline.Options{
			Render: render.Options{Format: render.FormatMarkup},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %s", ct)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if rec.Header().Get("X-Document-Hash") == "" {
		t.Error("missing X-Document-Hash header")
	}
	if !strings.Contains(rec.Body.String(), "served over http") {
		t.Error("artifact does not contain document text")
	}
}

func TestHandleRenderPartialLayoutConfig(t *testing.T) {
	s := newTestServer()
	// Only cardThreshold is sent, explicitly zero: the rest of the layout
	// config merges over the defaults, and the zero itself must be honored
	// (every block becomes a card).
	body := `{
		"document": {
			"meta": {"title": "Partial Layout"},
			"blocks": [{"id": "p", "type": "paragraph", "text": "ordinary text"}],
			"styles": {}
		},
		"options": {"render": {"format": "markup"}, "layout": {"cardThreshold": 0}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `class="card"`) {
		t.Error("cardThreshold 0 should place every block in a card")
	}
}

func TestHandleRenderValidationErrors(t *testing.T) {
	s := newTestServer()
	rec := postRender(t, s, renderRequest{
		Document: document.Document{
			// No title, bad annotation span: both must be reported.
			Blocks: []document.Block{{
				ID:      "p",
				Content: document.Paragraph{Text: "short"},
				Annotations: []document.Annotation{
					{Kind: document.AnnotationHighlight, Span: document.Span{Start: 10, End: 5}},
				},
			}},
		},
		Options: pipeline.Options{Render: render.Options{Format: render.FormatMarkup}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if resp.Code != errors.ErrCodeSchemaViolation {
		t.Errorf("code = %s, want %s", resp.Code, errors.ErrCodeSchemaViolation)
	}
	if len(resp.Violations) < 2 {
		t.Errorf("got %d violations, want the full list: %v", len(resp.Violations), resp.Violations)
	}
}

func TestHandleRenderBadJSON(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
