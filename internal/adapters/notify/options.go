package notify

import "net/http"

// BrevoOption applies a configuration option to the BrevoMailer.
type BrevoOption func(*BrevoMailer)

// WithEndpoint overrides the API endpoint, mainly for tests.
func WithEndpoint(endpoint string) BrevoOption {
	return func(m *BrevoMailer) {
		if endpoint != "" {
			m.endpoint = endpoint
		}
	}
}

// WithSender sets the sender name and address on outgoing reports.
func WithSender(name, email string) BrevoOption {
	return func(m *BrevoMailer) {
		if name != "" {
			m.senderName = name
		}
		if email != "" {
			m.senderEmail = email
		}
	}
}

// WithHTTPClient overrides the HTTP client used for delivery.
func WithHTTPClient(client *http.Client) BrevoOption {
	return func(m *BrevoMailer) {
		if client != nil {
			m.client = client
		}
	}
}
