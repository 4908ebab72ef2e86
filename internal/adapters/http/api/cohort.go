// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/ethoslab/archetype/internal/domain/types"
)

// CohortDependencies defines the interface for cohort aggregation.
type CohortDependencies interface {
	CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error)
}

// CohortHandler handles cohort statistics requests.
type CohortHandler struct {
	deps CohortDependencies
}

// NewCohortHandler creates a new cohort handler.
func NewCohortHandler(deps CohortDependencies) *CohortHandler {
	return &CohortHandler{deps: deps}
}

// HandleGetCohort handles GET /cohorts/{cohort_id} requests.
func (h *CohortHandler) HandleGetCohort(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_cohort"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cohortID := strings.TrimPrefix(r.URL.Path, "/cohorts/")
	if cohortID == "" || strings.Contains(cohortID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	stats, err := h.deps.CohortStats(r.Context(), cohortID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
