package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethoslab/archetype/internal/domain/catalog"
)

const (
	defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"
	defaultSenderName    = "Archetype Quiz"
	defaultSenderEmail   = "reports@archetype.example"
	defaultSendTimeout   = 10 * time.Second
)

// BrevoMailer sends report emails through the Brevo transactional API.
type BrevoMailer struct {
	apiKey      string
	endpoint    string
	senderName  string
	senderEmail string
	client      *http.Client
}

// NewBrevoMailer creates a mailer for the given API key.
func NewBrevoMailer(apiKey string, opts ...BrevoOption) *BrevoMailer {
	m := &BrevoMailer{
		apiKey:      apiKey,
		endpoint:    defaultBrevoEndpoint,
		senderName:  defaultSenderName,
		senderEmail: defaultSenderEmail,
		client:      &http.Client{Timeout: defaultSendTimeout},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoMessage struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// SendReport delivers the report for one session.
func (m *BrevoMailer) SendReport(ctx context.Context, report Report) error {
	if report.To == "" {
		return ErrMissingRecipient
	}

	profile, ok := catalog.Lookup(report.Archetype)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArchetype, report.Archetype)
	}

	msg := brevoMessage{
		Sender:      brevoAddress{Name: m.senderName, Email: m.senderEmail},
		To:          []brevoAddress{{Email: report.To}},
		Subject:     fmt.Sprintf("Your result: %s %s", profile.Name, profile.Title),
		HTMLContent: renderReport(&profile),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// renderReport builds the HTML body from the archetype profile.
func renderReport(p *catalog.Profile) string {
	var b strings.Builder
	b.WriteString("<html><body style=\"font-family:sans-serif;max-width:600px;margin:0 auto\">")
	fmt.Fprintf(&b, "<h1>%s %s</h1>", p.Emoji, html.EscapeString(p.Name))
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(p.Title))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(p.Description))

	b.WriteString("<h3>Strengths</h3><ul>")
	for _, s := range p.Strengths {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(s))
	}
	b.WriteString("</ul>")

	b.WriteString("<h3>Challenges</h3><ul>")
	for _, c := range p.Challenges {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(c))
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<h3>Work style</h3><p>%s</p>", html.EscapeString(p.WorkStyle))
	fmt.Fprintf(&b, "<h3>Growth</h3><p>%s</p>", html.EscapeString(p.Growth))

	b.WriteString("<h3>Ideal careers</h3><ul>")
	for _, c := range p.IdealCareers {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(c))
	}
	b.WriteString("</ul>")

	b.WriteString("</body></html>")
	return b.String()
}
