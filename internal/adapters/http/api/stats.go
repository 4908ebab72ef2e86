// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ethoslab/archetype/internal/domain/types"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// QuizStatsDependencies defines the interface for quiz taker statistics.
type QuizStatsDependencies interface {
	QuizStats(ctx context.Context, sessionID string) (types.QuizStats, error)
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	deps          QuizStatsDependencies
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps QuizStatsDependencies, statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{deps: deps, statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	stats := h.statsProvider.GetStats()
	_ = json.NewEncoder(w).Encode(stats)
}

// HandleQuizStats handles GET /quiz-stats requests. The optional session_id
// query parameter adds the caller's chronological taker number.
func (h *StatsHandler) HandleQuizStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_stats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	stats, err := h.deps.QuizStats(r.Context(), sessionID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
