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

// VerificationSender delivers a one-time code to an email address.
type VerificationSender interface {
	SendVerificationRequest(ctx context.Context, identifier, token string) error
}

// DeliveryError reports a verification email that was not accepted by the
// delivery endpoint. The sign-in attempt it belongs to cannot proceed.
type DeliveryError struct {
	Recipient  string
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("otp delivery failed: to=%s: %v", e.Recipient, e.Err)
	}
	return fmt.Sprintf("otp delivery failed: to=%s status=%d body=%s", e.Recipient, e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// OTPClient posts verification codes to the email delivery service:
// POST <endpoint> {"to","otp","appName"} with an x-api-key header.
type OTPClient struct {
	endpoint   string
	apiKey     string
	appName    string
	httpClient *http.Client
}

// NewOTPClient returns nil when the endpoint or API key is missing.
func NewOTPClient(endpoint, apiKey, appName string) *OTPClient {
	if strings.TrimSpace(endpoint) == "" || strings.TrimSpace(apiKey) == "" {
		return nil
	}
	if strings.TrimSpace(appName) == "" {
		appName = "App"
	}
	return &OTPClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		appName:    appName,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

type otpSendRequest struct {
	To      string `json:"to"`
	OTP     string `json:"otp"`
	AppName string `json:"appName"`
}

// SendVerificationRequest makes a single delivery attempt. Any transport
// failure or non-2xx answer is returned as a *DeliveryError.
func (c *OTPClient) SendVerificationRequest(ctx context.Context, identifier, token string) error {
	if c == nil {
		return errors.New("otp client is nil")
	}
	if strings.TrimSpace(identifier) == "" {
		return errors.New("missing recipient email")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("missing token")
	}

	raw, err := json.Marshal(otpSendRequest{To: identifier, OTP: token, AppName: c.appName})
	if err != nil {
		return fmt.Errorf("otp marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("otp create request: %w", err)
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &DeliveryError{Recipient: identifier, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &DeliveryError{
			Recipient:  identifier,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return nil
}
