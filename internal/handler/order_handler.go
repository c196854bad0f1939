package handler

import (
	"net/http"
	"strconv"
	"strings"

	"duka/internal/model"
	"duka/internal/service"

	"github.com/rs/zerolog"
)

// placeOrderPrefix is the path prefix for order placement routes; the
// customer id follows it.
const placeOrderPrefix = "/place_order/"

// OrderHandler handles order-placement HTTP requests.
type OrderHandler struct {
	orders    service.OrderService
	customers service.CustomerService
	products  service.ProductService
	logger    zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	orders service.OrderService,
	customers service.CustomerService,
	products service.ProductService,
	logger zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		customers: customers,
		products:  products,
		logger:    logger.With().Str("handler", "order").Logger(),
	}
}

// placeOrderContext is the payload for GET /place_order/{customer_id}: the
// data the caller needs to build the order form.
type placeOrderContext struct {
	Customer model.Customer  `json:"customer"`
	Products []model.Product `json:"products"`
	Orders   []model.Order   `json:"orders"`
}

// PlaceOrder handles GET and POST /place_order/{customer_id} requests.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseID(strings.TrimPrefix(r.URL.Path, placeOrderPrefix))
	if err != nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeCustomerNotFound, "customer not found", h.logger)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.orderForm(w, r, customerID)
	case http.MethodPost:
		h.placeOrder(w, r, customerID)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidForm, "method not allowed", h.logger)
	}
}

// orderForm returns the customer, the catalogue and the customer's past
// orders.
func (h *OrderHandler) orderForm(w http.ResponseWriter, r *http.Request, customerID int64) {
	customer, err := h.customers.GetByID(r.Context(), customerID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	products, err := h.products.GetAll(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve products", h.logger)
		return
	}

	orders, err := h.orders.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve orders", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, placeOrderContext{
		Customer: *customer,
		Products: products,
		Orders:   orders,
	})
}

// placeOrder parses the order form and runs the placement workflow. The flash
// message reports the notification outcome; the redirect happens either way.
func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request, customerID int64) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form data", h.logger)
		return
	}

	productID, err := strconv.ParseInt(r.PostFormValue("product_id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "product_id must be an integer", h.logger)
		return
	}

	quantity, err := strconv.Atoi(r.PostFormValue("amount"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidQuantity, "amount must be an integer", h.logger)
		return
	}

	result, err := h.orders.PlaceOrder(r.Context(), &model.PlaceOrderRequest{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	h.logger.Info().
		Int64("order_id", result.Order.ID).
		Bool("notification_sent", result.NotificationSent).
		Msg("order placement completed")

	setFlash(w, result.NotificationInfo)
	redirectHome(w, r)
}
