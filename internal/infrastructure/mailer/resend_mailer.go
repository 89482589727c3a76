// Package mailer dispatches transactional email through the Resend REST
// API. Only the single send endpoint is used, so the client is a thin
// net/http wrapper rather than a full SDK.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"athlete-intake/pkg/errors"
)

// Envelope is built fresh per request and never stored.
type Envelope struct {
	From    string
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

type Mailer interface {
	Send(ctx context.Context, env Envelope) (id string, err error)
}

type ResendMailer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewResendMailer(apiKey, baseURL string) *ResendMailer {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &ResendMailer{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send returns the provider message id. A non-2xx provider answer maps to
// the 502 error class, a transport failure to 500.
func (m *ResendMailer) Send(ctx context.Context, env Envelope) (string, error) {
	payload, err := json.Marshal(sendRequest{
		From:    env.From,
		To:      env.To,
		Subject: env.Subject,
		HTML:    env.HTML,
		ReplyTo: env.ReplyTo,
	})
	if err != nil {
		return "", errors.ErrInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", errors.ErrInternal(err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", errors.ErrEmailTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", errors.ErrEmailTransport(err)
	}

	var parsed sendResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("email provider returned %d", resp.StatusCode)
		if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, parsed.Message)
		}
		return "", errors.ErrEmailProvider(msg)
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.ErrEmailTransport(fmt.Errorf("cannot decode provider response: %w", err))
	}
	return parsed.ID, nil
}
