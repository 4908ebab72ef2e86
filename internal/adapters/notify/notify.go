// Package notify delivers archetype report emails. Delivery is best
// effort: a failed send never invalidates the saved result.
package notify

import (
	"context"

	"github.com/ethoslab/archetype/internal/domain/types"
)

// Report is the content of one archetype report email.
type Report struct {
	To        string
	SessionID string
	Archetype types.Archetype
}

// Mailer sends archetype report emails.
type Mailer interface {
	// SendReport delivers the report for one session.
	SendReport(ctx context.Context, report Report) error
}

// NoopMailer discards every report. Used when no API key is configured.
type NoopMailer struct{}

// SendReport does nothing.
func (NoopMailer) SendReport(ctx context.Context, report Report) error {
	return nil
}
