// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ethoslab/archetype/internal/domain/model"
	"github.com/ethoslab/archetype/internal/domain/types"
)

// ResultsDependencies defines the interface for result persistence.
type ResultsDependencies interface {
	SaveResult(ctx context.Context, sub model.Submission) error
	AttachEmail(ctx context.Context, sessionID, email string) error
	Result(ctx context.Context, sessionID string) (types.ResultRecord, error)
}

// ResultsHandler handles result persistence requests.
type ResultsHandler struct {
	deps ResultsDependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultsDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// saveResultRequest mirrors the body of POST /results.
type saveResultRequest struct {
	SessionID string   `json:"session_id"`
	CohortID  string   `json:"cohort_id,omitempty"`
	Email     string   `json:"email,omitempty"`
	Archetype string   `json:"archetype"`
	Traits    []string `json:"traits,omitempty"`
}

func (s saveResultRequest) validate() error {
	switch {
	case strings.TrimSpace(s.SessionID) == "":
		return errors.New("missing session_id")
	case strings.TrimSpace(s.Archetype) == "":
		return errors.New("missing archetype")
	}
	return nil
}

type savedResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

// HandleSaveResult handles POST /results requests. Saving the same session
// again overwrites the earlier result.
func (h *ResultsHandler) HandleSaveResult(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_result"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req saveResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	sub := model.Submission{
		SessionID:  req.SessionID,
		CohortID:   req.CohortID,
		Email:      req.Email,
		Archetype:  types.Archetype(req.Archetype),
		Traits:     req.Traits,
		ReceivedAt: time.Now().UTC(),
	}
	if err := h.deps.SaveResult(r.Context(), sub); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, savedResponse{Status: "saved", SessionID: req.SessionID})
}

// attachEmailRequest mirrors the body of POST /results/email.
type attachEmailRequest struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
}

func (a attachEmailRequest) validate() error {
	switch {
	case strings.TrimSpace(a.SessionID) == "":
		return errors.New("missing session_id")
	case strings.TrimSpace(a.Email) == "":
		return errors.New("missing email")
	}
	return nil
}

// HandleAttachEmail handles POST /results/email requests.
func (h *ResultsHandler) HandleAttachEmail(w http.ResponseWriter, r *http.Request) {
	const op = "api.attach_email"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req attachEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if err := h.deps.AttachEmail(r.Context(), req.SessionID, req.Email); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, savedResponse{Status: "updated", SessionID: req.SessionID})
}

// HandleGetResult handles GET /results/{session_id} requests.
func (h *ResultsHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_result"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sessionID := strings.TrimPrefix(r.URL.Path, "/results/")
	if sessionID == "" || strings.Contains(sessionID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	rec, err := h.deps.Result(r.Context(), sessionID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
