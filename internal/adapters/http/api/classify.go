// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ClassifyDependencies defines the interface for classification.
type ClassifyDependencies interface {
	Classify(ctx context.Context, sessionID string, traits []string) (Classification, error)
}

// ClassifyHandler handles classification requests.
type ClassifyHandler struct {
	deps ClassifyDependencies
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(deps ClassifyDependencies) *ClassifyHandler {
	return &ClassifyHandler{deps: deps}
}

// classifyRequest mirrors the body of POST /classify. Callers send either
// answered questions or a bare trait list.
type classifyRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	Traits    []string       `json:"traits,omitempty"`
	Responses []responseItem `json:"responses,omitempty"`
}

func (c classifyRequest) validate() error {
	if len(c.Traits) == 0 && len(c.Responses) == 0 {
		return errors.New("missing traits or responses")
	}
	for _, r := range c.Responses {
		if err := r.validate(); err != nil {
			return err
		}
	}
	return nil
}

// HandleClassify handles POST /classify requests.
func (h *ClassifyHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	const op = "api.classify"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.Classify(r.Context(), req.SessionID, traitList(req.Traits, req.Responses))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
