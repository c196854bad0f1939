package handler

import (
	"fmt"
	"net/http"

	"duka/internal/model"
	"duka/internal/sms"

	"github.com/rs/zerolog"
)

// SMSHandler exposes the gateway smoke-test endpoint.
type SMSHandler struct {
	gateway   sms.Gateway
	recipient string
	logger    zerolog.Logger
}

// NewSMSHandler creates a new SMS test handler. The recipient comes from
// configuration.
func NewSMSHandler(gateway sms.Gateway, recipient string, logger zerolog.Logger) *SMSHandler {
	return &SMSHandler{
		gateway:   gateway,
		recipient: recipient,
		logger:    logger.With().Str("handler", "sms").Logger(),
	}
}

// TestSMS handles GET /test_sms requests: sends a fixed test message and
// reports the provider response verbatim.
func (h *SMSHandler) TestSMS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidForm, "method not allowed", h.logger)
		return
	}

	response, err := h.gateway.Send(r.Context(), "Test message", h.recipient)
	if err != nil {
		h.logger.Error().Err(err).Msg("sms test failed")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "SMS test failed: %v", err)
		return
	}

	h.logger.Info().Str("provider_message", response.Message).Msg("sms test successful")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "SMS test successful. Response: %s", response.Message)
}
