package handler

import (
	"net/http"

	"duka/internal/model"
	"duka/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// AddCustomer handles GET and POST /add_customer requests. GET describes the
// expected form; POST creates the customer and redirects to the index.
func (h *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"action": "/add_customer",
			"fields": []string{"name", "code"},
		})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form data", h.logger)
			return
		}

		customer, err := h.service.Create(r.Context(), r.PostFormValue("name"), r.PostFormValue("code"))
		if err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}

		h.logger.Info().Int64("customer_id", customer.ID).Msg("customer added")
		setFlash(w, "Customer added successfully!")
		redirectHome(w, r)

	default:
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidForm, "method not allowed", h.logger)
	}
}
