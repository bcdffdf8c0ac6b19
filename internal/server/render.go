package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/pipeline"
)

// renderRequest is the POST /render body.
type renderRequest struct {
	Document document.Document `json:"document"`
	Options  pipeline.Options  `json:"options"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	RequestID  string                  `json:"requestId,omitempty"`
	Code       errors.Code             `json:"code"`
	Message    string                  `json:"message"`
	Violations errors.ValidationErrors `json:"violations,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	// Seed defaults before decoding so a partial layout config merges over
	// them while an explicit zero (e.g. cardThreshold 0) is kept as sent.
	req.Options.Layout = layout.DefaultConfig()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}
	req.Options.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), req.Document, req.Options)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", req.Options.Render.Format.ContentType())
	w.Header().Set("X-Document-Hash", result.DocumentHash)
	if result.CacheInfo.ArtifactHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifact) //nolint:errcheck
}

// statusFor maps the error taxonomy to HTTP status codes: caller mistakes
// are 400s, backend failures 500s.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeSchemaViolation),
		errors.Is(err, errors.ErrCodeConfiguration),
		errors.Is(err, errors.ErrCodeInvalidFormat),
		errors.Is(err, errors.ErrCodeInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	resp := errorResponse{
		RequestID: requestIDFrom(r.Context()),
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
	}
	var violations errors.ValidationErrors
	if stderrors.As(err, &violations) {
		resp.Violations = violations
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}
