package handler

import (
	"net/http"

	"duka/internal/model"
	"duka/internal/service"

	"github.com/rs/zerolog"
)

// IndexHandler serves the storefront landing data.
type IndexHandler struct {
	customers service.CustomerService
	products  service.ProductService
	logger    zerolog.Logger
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(customers service.CustomerService, products service.ProductService, logger zerolog.Logger) *IndexHandler {
	return &IndexHandler{
		customers: customers,
		products:  products,
		logger:    logger.With().Str("handler", "index").Logger(),
	}
}

// indexResponse is the payload for GET /.
type indexResponse struct {
	Customers []model.Customer `json:"customers"`
	Products  []model.Product  `json:"products"`
	Flash     string           `json:"flash,omitempty"`
}

// Index handles GET / requests: all customers, all products and the pending
// flash message, if any.
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidForm, "method not allowed", h.logger)
		return
	}

	customers, err := h.customers.GetAll(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve customers", h.logger)
		return
	}

	products, err := h.products.GetAll(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve products", h.logger)
		return
	}

	if customers == nil {
		customers = []model.Customer{}
	}
	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, indexResponse{
		Customers: customers,
		Products:  products,
		Flash:     popFlash(w, r),
	})
}
