package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"duka/internal/config"

	"github.com/rs/zerolog"
)

// statusCodeSuccess is the per-recipient code Africa's Talking returns when a
// message is accepted for delivery.
const statusCodeSuccess = 101

// messagingPath is the bulk messaging endpoint, relative to the API base URL.
const messagingPath = "/version1/messaging"

// atResponse mirrors the provider's response envelope.
type atResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
			Cost       string `json:"cost"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// africasTalkingGateway implements Gateway against the Africa's Talking
// messaging REST API.
type africasTalkingGateway struct {
	client   *http.Client
	baseURL  string
	username string
	apiKey   string
	senderID string
	logger   zerolog.Logger
}

// NewAfricasTalkingGateway creates a gateway backed by the Africa's Talking
// messaging API. No request timeout is configured; the call runs under the
// caller's context.
func NewAfricasTalkingGateway(cfg config.SMSConfig, logger zerolog.Logger) Gateway {
	return &africasTalkingGateway{
		client:   &http.Client{},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		logger:   logger.With().Str("component", "sms-gateway").Logger(),
	}
}

// Send posts the message to the provider and interprets the response. A non-2xx
// status or a response without an accepted recipient is a *GatewayError;
// transport and decoding failures are returned as plain errors.
func (g *africasTalkingGateway) Send(ctx context.Context, message, recipient string) (*Response, error) {
	form := url.Values{}
	form.Set("username", g.username)
	form.Set("to", recipient)
	form.Set("message", message)
	if g.senderID != "" {
		form.Set("from", g.senderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+messagingPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("recipient", recipient).Msg("sms request failed")
		return nil, fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sms response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Warn().
			Int("status", resp.StatusCode).
			Str("recipient", recipient).
			Str("body", string(body)).
			Msg("sms gateway rejected request")
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var decoded atResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode sms response: %w", err)
	}

	result := &Response{Message: decoded.SMSMessageData.Message}
	accepted := false
	for _, rec := range decoded.SMSMessageData.Recipients {
		result.Recipients = append(result.Recipients, Recipient{
			Number:     rec.Number,
			Status:     rec.Status,
			StatusCode: rec.StatusCode,
			Cost:       rec.Cost,
			MessageID:  rec.MessageID,
		})
		if rec.StatusCode == statusCodeSuccess {
			accepted = true
		}
	}

	// The provider can answer 2xx and still accept nothing, e.g. an invalid
	// phone number or exhausted credits.
	if !accepted {
		g.logger.Warn().
			Str("recipient", recipient).
			Str("provider_message", decoded.SMSMessageData.Message).
			Msg("sms gateway accepted no recipients")
		return nil, &GatewayError{Message: decoded.SMSMessageData.Message}
	}

	g.logger.Info().
		Str("recipient", recipient).
		Str("provider_message", decoded.SMSMessageData.Message).
		Msg("sms sent successfully")

	return result, nil
}
