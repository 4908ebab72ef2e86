// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ethoslab/archetype/internal/domain/model"
	"github.com/ethoslab/archetype/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Classify scores traits into an archetype, minting a session ID
	// when the given one is blank.
	Classify(ctx context.Context, sessionID string, traits []string) (Classification, error)

	// SaveResult persists a submission synchronously.
	SaveResult(ctx context.Context, sub model.Submission) error

	// Submit enqueues a submission for async persistence and report
	// delivery, returning the session ID it was recorded under.
	Submit(ctx context.Context, sub model.Submission) (string, error)

	// AttachEmail sets the email on an already saved result.
	AttachEmail(ctx context.Context, sessionID, email string) error

	// Read operations expose stored quiz data.
	Result(ctx context.Context, sessionID string) (types.ResultRecord, error)
	CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error)
	QuizStats(ctx context.Context, sessionID string) (types.QuizStats, error)
}

// Classification mirrors the read shape returned by scoring.
type Classification = types.Classification

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	classifyHandler *ClassifyHandler
	resultsHandler  *ResultsHandler
	submitHandler   *SubmitHandler
	cohortHandler   *CohortHandler
	catalogHandler  *CatalogHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps, statsProvider),
		classifyHandler: NewClassifyHandler(deps),
		resultsHandler:  NewResultsHandler(deps),
		submitHandler:   NewSubmitHandler(deps),
		cohortHandler:   NewCohortHandler(deps),
		catalogHandler:  NewCatalogHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/quiz-stats", MetricsMiddleware(s.statsHandler.HandleQuizStats, "quiz_stats"))
	mux.HandleFunc("/classify", MetricsMiddleware(s.classifyHandler.HandleClassify, "classify"))
	mux.HandleFunc("/submit", MetricsMiddleware(s.submitHandler.HandleSubmit, "submit"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleSaveResult, "results"))
	mux.HandleFunc("/results/email", MetricsMiddleware(s.resultsHandler.HandleAttachEmail, "results_email"))
	mux.HandleFunc("/results/", MetricsMiddleware(s.resultsHandler.HandleGetResult, "results_get"))
	mux.HandleFunc("/cohorts/", MetricsMiddleware(s.cohortHandler.HandleGetCohort, "cohorts"))
	mux.HandleFunc("/archetypes", MetricsMiddleware(s.catalogHandler.HandleListArchetypes, "archetypes"))
	mux.HandleFunc("/archetypes/", MetricsMiddleware(s.catalogHandler.HandleGetArchetype, "archetypes_get"))
	mux.HandleFunc("/questions", MetricsMiddleware(s.catalogHandler.HandleListQuestions, "questions"))
	mux.HandleFunc("/traits", MetricsMiddleware(s.catalogHandler.HandleListTraits, "traits"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404 without coupling
// to every store implementation.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// traitList flattens a request's answers into the trait words the scoring
// engine reads. Responses win over a bare trait list when both are sent.
func traitList(traits []string, responses []responseItem) []string {
	if len(responses) == 0 {
		return traits
	}
	out := make([]string, 0, len(responses))
	for _, r := range responses {
		out = append(out, r.SelectedOption)
	}
	return out
}

// responseItem mirrors one answered question in request bodies.
type responseItem struct {
	QuestionID     int    `json:"question_id"`
	SelectedOption string `json:"selected_option"`
	OptionIndex    int    `json:"option_index,omitempty"`
}

func (r responseItem) validate() error {
	if strings.TrimSpace(r.SelectedOption) == "" {
		return errors.New("missing selected_option")
	}
	return nil
}
