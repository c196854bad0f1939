package router

import (
	"net/http"

	"duka/internal/handler"
	"duka/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	indexHandler *handler.IndexHandler,
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	smsHandler *handler.SMSHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// The root pattern catches every unregistered path, so the index handler
	// only answers an exact match.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		indexHandler.Index(w, r)
	})

	mux.HandleFunc("/add_customer", customerHandler.AddCustomer)
	mux.HandleFunc("/add_product", productHandler.AddProduct)

	// Order placement carries the customer id in the path
	mux.HandleFunc("/place_order/", orderHandler.PlaceOrder)

	mux.HandleFunc("/test_sms", smsHandler.TestSMS)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
