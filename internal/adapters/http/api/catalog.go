// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/ethoslab/archetype/internal/domain/catalog"
	"github.com/ethoslab/archetype/internal/domain/types"
)

// CatalogHandler serves the static reference data: archetype profiles,
// the question bank and the selectable trait list.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// archetypeView is the wire shape of one archetype profile.
type archetypeView struct {
	ID             types.Archetype   `json:"id"`
	Name           string            `json:"name"`
	Emoji          string            `json:"emoji"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Traits         []string          `json:"traits"`
	Strengths      []string          `json:"strengths"`
	Challenges     []string          `json:"challenges"`
	WorkStyle      string            `json:"work_style"`
	Communication  string            `json:"communication"`
	Relationships  string            `json:"relationships"`
	Leadership     string            `json:"leadership"`
	Motivation     string            `json:"motivation"`
	Stress         string            `json:"stress"`
	Growth         string            `json:"growth"`
	CompatibleWith []types.Archetype `json:"compatible_with"`
	ConflictsWith  []types.Archetype `json:"conflicts_with"`
	FamousPeople   []string          `json:"famous_people"`
	CareersToAvoid []string          `json:"careers_to_avoid"`
	IdealCareers   []string          `json:"ideal_careers"`
}

func toArchetypeView(p catalog.Profile) archetypeView {
	return archetypeView{
		ID:             p.ID,
		Name:           p.Name,
		Emoji:          p.Emoji,
		Title:          p.Title,
		Description:    p.Description,
		Traits:         p.Traits,
		Strengths:      p.Strengths,
		Challenges:     p.Challenges,
		WorkStyle:      p.WorkStyle,
		Communication:  p.Communication,
		Relationships:  p.Relationships,
		Leadership:     p.Leadership,
		Motivation:     p.Motivation,
		Stress:         p.Stress,
		Growth:         p.Growth,
		CompatibleWith: p.CompatibleWith,
		ConflictsWith:  p.ConflictsWith,
		FamousPeople:   p.FamousPeople,
		CareersToAvoid: p.CareersToAvoid,
		IdealCareers:   p.IdealCareers,
	}
}

// HandleListArchetypes handles GET /archetypes requests.
func (h *CatalogHandler) HandleListArchetypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	profiles := catalog.Profiles()
	views := make([]archetypeView, len(profiles))
	for i, p := range profiles {
		views[i] = toArchetypeView(p)
	}
	writeJSON(w, http.StatusOK, views)
}

// HandleGetArchetype handles GET /archetypes/{id} requests.
func (h *CatalogHandler) HandleGetArchetype(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_archetype"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/archetypes/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	p, ok := catalog.Lookup(types.Archetype(strings.ToLower(id)))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toArchetypeView(p))
}

// HandleListQuestions handles GET /questions requests.
func (h *CatalogHandler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Questions())
}

// HandleListTraits handles GET /traits requests.
func (h *CatalogHandler) HandleListTraits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, catalog.SelectableTraits())
}
