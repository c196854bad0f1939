package handler

import (
	"net/http"
	"strconv"

	"duka/internal/model"
	"duka/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// AddProduct handles GET and POST /add_product requests. GET describes the
// expected form; POST creates the product and redirects to the index. A
// malformed price is a 400, not a server error.
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"action": "/add_product",
			"fields": []string{"name", "price"},
		})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form data", h.logger)
			return
		}

		price, err := strconv.ParseFloat(r.PostFormValue("price"), 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidPrice, "price must be a number", h.logger)
			return
		}

		product, err := h.service.Create(r.Context(), r.PostFormValue("name"), price)
		if err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}

		h.logger.Info().Int64("product_id", product.ID).Msg("product added")
		setFlash(w, "Product added successfully!")
		redirectHome(w, r)

	default:
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidForm, "method not allowed", h.logger)
	}
}
