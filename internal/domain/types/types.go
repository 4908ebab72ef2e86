// Package types contains common types used across the application.
package types

// Archetype identifies one of the fixed personality classifications.
type Archetype string

// The closed set of archetypes. Declaration order matters: it is the
// catalog's fixed iteration order used by the trait-weighted tie-break.
const (
	Dove    Archetype = "dove"
	Peacock Archetype = "peacock"
	Owl     Archetype = "owl"
	Shark   Archetype = "shark"
)

// Breakdown maps every archetype to an integer percentage 0-100.
// Values are rounded independently and are not renormalized, so the sum
// may differ slightly from 100.
type Breakdown map[Archetype]int

// Scores maps every archetype to its raw score. Always dense: all
// archetypes are present even when zero.
type Scores map[Archetype]int

// Distribution is one archetype's share within a cohort.
type Distribution struct {
	Archetype  Archetype `json:"archetype"`
	Count      int       `json:"count"`
	Percentage float64   `json:"percentage"`
}

// CohortStats aggregates quiz results for one cohort.
type CohortStats struct {
	CohortID          string         `json:"cohort_id"`
	TotalParticipants int            `json:"total_participants"`
	Distributions     []Distribution `json:"distributions"`
}

// QuizStats reports a session's position among all recorded sessions.
type QuizStats struct {
	TotalQuizTakers int    `json:"total_quiz_takers"`
	QuizTakerNumber int    `json:"quiz_taker_number"`
	SessionID       string `json:"session_id"`
}

// Classification is the outcome of scoring one session's answers.
type Classification struct {
	SessionID string    `json:"session_id"`
	Archetype Archetype `json:"archetype"`
	Scores    Scores    `json:"scores"`
	Breakdown Breakdown `json:"breakdown"`
	Unmapped  []string  `json:"unmapped,omitempty"`
	Strategy  string    `json:"strategy"`
}

// ResultRecord is the stored shape of one session's quiz result.
type ResultRecord struct {
	SessionID string    `json:"session_id"`
	CohortID  string    `json:"cohort_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Archetype Archetype `json:"archetype"`
	Traits    []string  `json:"traits"`
}
