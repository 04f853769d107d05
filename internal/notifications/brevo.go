package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoClient sends transactional email through the Brevo SMTP API.
type BrevoClient struct {
	apiKey     string
	sender     Address
	sandbox    bool
	endpoint   string
	httpClient *http.Client
}

type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Message is one transactional email. ReplyTo lets staff answer the visitor
// directly from their inbox.
type Message struct {
	To      Address
	ReplyTo *Address
	Subject string
	HTML    string
	Tags    []string
}

func (m Message) validate() error {
	switch {
	case strings.TrimSpace(m.To.Email) == "":
		return errors.New("missing recipient email")
	case strings.TrimSpace(m.Subject) == "":
		return errors.New("missing subject")
	case strings.TrimSpace(m.HTML) == "":
		return errors.New("missing html body")
	}
	return nil
}

// APIError is a non-2xx answer from Brevo.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brevo send failed: status=%d body=%s", e.StatusCode, e.Body)
}

// NewBrevoClient returns nil when the API key or sender is missing, which
// callers treat as "mail disabled". In sandbox mode Brevo accepts and drops
// every message.
func NewBrevoClient(apiKey, senderEmail, senderName string, sandbox bool) *BrevoClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &BrevoClient{
		apiKey:     apiKey,
		sender:     Address{Email: senderEmail, Name: senderName},
		sandbox:    sandbox,
		endpoint:   defaultBrevoEndpoint,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

type brevoSendRequest struct {
	Sender      Address           `json:"sender"`
	To          []Address         `json:"to"`
	ReplyTo     *Address          `json:"replyTo,omitempty"`
	Subject     string            `json:"subject"`
	HtmlContent string            `json:"htmlContent"`
	Tags        []string          `json:"tags,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}

// Send delivers msg and returns the Brevo message ID.
func (c *BrevoClient) Send(ctx context.Context, msg Message) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	if err := msg.validate(); err != nil {
		return "", err
	}

	payload := brevoSendRequest{
		Sender:      c.sender,
		To:          []Address{msg.To},
		ReplyTo:     msg.ReplyTo,
		Subject:     msg.Subject,
		HtmlContent: msg.HTML,
		Tags:        msg.Tags,
	}
	if c.sandbox {
		payload.Headers = map[string]string{"X-Sib-Sandbox": "drop"}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("brevo marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("brevo create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("brevo decode response: %w", err)
	}
	if strings.TrimSpace(out.MessageID) == "" {
		return "", errors.New("brevo response missing messageId")
	}
	return out.MessageID, nil
}
