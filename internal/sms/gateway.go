package sms

import (
	"context"
	"fmt"
)

// Gateway sends a plain-text message to a single recipient. Implementations
// report provider rejections as *GatewayError and anything else (transport,
// decoding) as plain errors.
type Gateway interface {
	Send(ctx context.Context, message, recipient string) (*Response, error)
}

// Response is the provider's reply to a successful send. It is opaque to
// callers beyond logging and display.
type Response struct {
	Message    string      `json:"message"`
	Recipients []Recipient `json:"recipients"`
}

// Recipient reports per-recipient delivery status.
type Recipient struct {
	Number     string `json:"number"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Cost       string `json:"cost"`
	MessageID  string `json:"messageId"`
}

// GatewayError is a structured rejection from the SMS provider, distinct from
// transport or decoding failures.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sms gateway rejected request (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("sms gateway rejected request: %s", e.Message)
}

// NoopGateway accepts every message without sending anything. Useful in tests
// and local development without provider credentials.
type NoopGateway struct{}

func (NoopGateway) Send(ctx context.Context, message, recipient string) (*Response, error) {
	return &Response{
		Message: "Sent to 1/1",
		Recipients: []Recipient{
			{Number: recipient, Status: "Success", StatusCode: 101, Cost: "0"},
		},
	}, nil
}
