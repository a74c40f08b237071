package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tavola/internal/config"
)

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"text"`
}

// Mailer delivers a rendered message through the external mail
// collaborator. Implementations do not retry; a failed send is reported
// once and the caller decides what to surface.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPMailer posts messages to an HTTP mail API.
type HTTPMailer struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

func NewHTTPMailer(cfg config.MailConfig) *HTTPMailer {
	return &HTTPMailer{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		from:     cfg.From,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *HTTPMailer) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(struct {
		From string `json:"from"`
		Message
	}{From: m.from, Message: msg})
	if err != nil {
		return fmt.Errorf("marshaling mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}
