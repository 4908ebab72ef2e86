// Package model defines the domain entities flowing through the quiz
// pipeline: answer responses, submissions and their validation rules.
package model

import (
	"strings"
	"time"

	"github.com/ethoslab/archetype/internal/domain/types"
)

// Response is one answered question: the option text the taker picked.
// OptionIndex is informational; scoring reads SelectedOption only.
type Response struct {
	QuestionID     int    `json:"question_id"`
	SelectedOption string `json:"selected_option"`
	OptionIndex    int    `json:"option_index,omitempty"`
}

// Submission is a completed quiz result queued for persistence and,
// when an email is present, report delivery.
type Submission struct {
	SessionID  string          `json:"session_id"`
	CohortID   string          `json:"cohort_id,omitempty"`
	Email      string          `json:"email,omitempty"`
	Archetype  types.Archetype `json:"archetype"`
	Traits     []string        `json:"traits,omitempty"`
	Responses  []Response      `json:"responses,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
}

// Validate reports whether the submission can be persisted.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.SessionID) == "" {
		return ErrMissingSessionID
	}
	if s.Archetype == "" {
		return ErrMissingArchetype
	}
	return nil
}

// HasEmail reports whether the submission requests a report email.
func (s *Submission) HasEmail() bool {
	return strings.TrimSpace(s.Email) != ""
}

// Record converts the submission to its stored shape.
func (s *Submission) Record() types.ResultRecord {
	return types.ResultRecord{
		SessionID: s.SessionID,
		CohortID:  s.CohortID,
		Email:     s.Email,
		Archetype: s.Archetype,
		Traits:    append([]string(nil), s.Traits...),
	}
}
