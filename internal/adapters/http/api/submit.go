// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ethoslab/archetype/internal/domain/model"
)

// SubmitDependencies defines the interface for the full submission flow.
type SubmitDependencies interface {
	Classify(ctx context.Context, sessionID string, traits []string) (Classification, error)
	Submit(ctx context.Context, sub model.Submission) (string, error)
}

// SubmitHandler handles end-to-end quiz submissions: classify, then queue
// the result for persistence and report delivery.
type SubmitHandler struct {
	deps SubmitDependencies
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps SubmitDependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// submitRequest mirrors the body of POST /submit.
type submitRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	CohortID  string         `json:"cohort_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Traits    []string       `json:"traits,omitempty"`
	Responses []responseItem `json:"responses,omitempty"`
}

func (s submitRequest) validate() error {
	if len(s.Traits) == 0 && len(s.Responses) == 0 {
		return errors.New("missing traits or responses")
	}
	for _, r := range s.Responses {
		if err := r.validate(); err != nil {
			return err
		}
	}
	return nil
}

// submitResponse acknowledges an accepted submission with its outcome.
type submitResponse struct {
	Status         string         `json:"status"`
	Classification Classification `json:"classification"`
}

// HandleSubmit handles POST /submit requests.
func (h *SubmitHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	traits := traitList(req.Traits, req.Responses)
	result, err := h.deps.Classify(r.Context(), req.SessionID, traits)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	responses := make([]model.Response, 0, len(req.Responses))
	for _, item := range req.Responses {
		responses = append(responses, model.Response{
			QuestionID:     item.QuestionID,
			SelectedOption: item.SelectedOption,
			OptionIndex:    item.OptionIndex,
		})
	}

	sub := model.Submission{
		SessionID:  result.SessionID,
		CohortID:   req.CohortID,
		Email:      req.Email,
		Archetype:  result.Archetype,
		Traits:     traits,
		Responses:  responses,
		ReceivedAt: time.Now().UTC(),
	}
	if _, err := h.deps.Submit(r.Context(), sub); err != nil {
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, submitResponse{
		Status:         "accepted",
		Classification: result,
	})
}
