package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"duka/internal/config"
	"duka/internal/handler"
	"duka/internal/model"
	"duka/internal/repository"
	"duka/internal/router"
	"duka/internal/service"
	"duka/internal/sms"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newATStub fakes the Africa's Talking messaging endpoint. When accept is
// false every submission is reported as rejected.
func newATStub(t *testing.T, accept bool) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		statusCode := 101
		status := "Success"
		if !accept {
			statusCode = 405
			status = "InsufficientBalance"
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"SMSMessageData": {
				"Message": "Sent to 1/1",
				"Recipients": [
					{"number": %q, "status": %q, "statusCode": %d, "cost": "KES 0.8000", "messageId": "ATXid_1"}
				]
			}
		}`, r.PostFormValue("to"), status, statusCode)
	}))
}

func setupTestServer(t *testing.T, testDB *TestDB, gateway sms.Gateway) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	customerRepo := repository.NewCustomerRepository(testDB.Pool, logger)
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	customerService := service.NewCustomerService(customerRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, customerRepo, productRepo, gateway, logger)

	indexHandler := handler.NewIndexHandler(customerService, productService, logger)
	customerHandler := handler.NewCustomerHandler(customerService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, customerService, productService, logger)
	smsHandler := handler.NewSMSHandler(gateway, "+254700000000", logger)

	return router.New(indexHandler, customerHandler, productHandler, orderHandler, smsHandler, logger)
}

func postForm(server http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func flashValue(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "flash" && cookie.MaxAge >= 0 {
			value, err := url.QueryUnescape(cookie.Value)
			require.NoError(t, err)
			return value
		}
	}
	return ""
}

func TestCustomerAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB, &sms.NoopGateway{})

	t.Run("POST /add_customer registers and redirects", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := postForm(server, "/add_customer", url.Values{
			"name": {"Jane"},
			"code": {"+254700000000"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, "Customer added successfully!", flashValue(t, w))

		var count int
		err := testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM customers").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("POST /add_customer with missing name returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := postForm(server, "/add_customer", url.Values{"code": {"+254700000000"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET / lists registered customers", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCustomer(t, testDB.Pool, "Jane", "+254700000000")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Customers []model.Customer `json:"customers"`
			Products  []model.Product  `json:"products"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Customers, 1)
		assert.Equal(t, "Jane", resp.Customers[0].Name)
		assert.Empty(t, resp.Products)
	})
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB, &sms.NoopGateway{})

	t.Run("POST /add_product registers and redirects", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := postForm(server, "/add_product", url.Values{
			"name":  {"Widget"},
			"price": {"10.99"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, "Product added successfully!", flashValue(t, w))

		var price float64
		err := testDB.Pool.QueryRow(context.Background(), "SELECT price FROM products WHERE name = 'Widget'").Scan(&price)
		require.NoError(t, err)
		assert.Equal(t, 10.99, price)
	})

	t.Run("POST /add_product with malformed price returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := postForm(server, "/add_product", url.Values{
			"name":  {"Widget"},
			"price": {"not-a-number"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	t.Run("POST /place_order persists order and confirms by SMS", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		stub := newATStub(t, true)
		defer stub.Close()

		gateway := sms.NewAfricasTalkingGateway(config.SMSConfig{
			BaseURL:  stub.URL,
			Username: "sandbox",
			APIKey:   "test-key",
		}, zerolog.Nop())
		server := setupTestServer(t, testDB, gateway)

		customerID := SeedCustomer(t, testDB.Pool, "Jane", "+254700000000")
		productID := SeedProduct(t, testDB.Pool, "Widget", 10.99)

		w := postForm(server, fmt.Sprintf("/place_order/%d", customerID), url.Values{
			"product_id": {fmt.Sprintf("%d", productID)},
			"amount":     {"2"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, "Order placed successfully and confirmation SMS sent.", flashValue(t, w))

		var item string
		var price float64
		var quantity int
		err := testDB.Pool.QueryRow(context.Background(),
			"SELECT item, price, quantity FROM orders WHERE customer_id = $1", customerID,
		).Scan(&item, &price, &quantity)
		require.NoError(t, err)
		assert.Equal(t, "Widget", item)
		assert.Equal(t, 10.99, price)
		assert.Equal(t, 2, quantity)
	})

	t.Run("POST /place_order stands when the gateway rejects the SMS", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		stub := newATStub(t, false)
		defer stub.Close()

		gateway := sms.NewAfricasTalkingGateway(config.SMSConfig{
			BaseURL:  stub.URL,
			Username: "sandbox",
			APIKey:   "test-key",
		}, zerolog.Nop())
		server := setupTestServer(t, testDB, gateway)

		customerID := SeedCustomer(t, testDB.Pool, "Jane", "+254700000000")
		productID := SeedProduct(t, testDB.Pool, "Widget", 10.99)

		w := postForm(server, fmt.Sprintf("/place_order/%d", customerID), url.Values{
			"product_id": {fmt.Sprintf("%d", productID)},
			"amount":     {"2"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, flashValue(t, w), "but SMS sending failed")

		var count int
		err := testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "order must survive a failed notification")
	})

	t.Run("POST /place_order for unknown customer returns 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		server := setupTestServer(t, testDB, &sms.NoopGateway{})
		productID := SeedProduct(t, testDB.Pool, "Widget", 10.99)

		w := postForm(server, "/place_order/999", url.Values{
			"product_id": {fmt.Sprintf("%d", productID)},
			"amount":     {"1"},
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("POST /place_order with zero quantity returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		server := setupTestServer(t, testDB, &sms.NoopGateway{})
		customerID := SeedCustomer(t, testDB.Pool, "Jane", "+254700000000")
		productID := SeedProduct(t, testDB.Pool, "Widget", 10.99)

		w := postForm(server, fmt.Sprintf("/place_order/%d", customerID), url.Values{
			"product_id": {fmt.Sprintf("%d", productID)},
			"amount":     {"0"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var count int
		err := testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("GET /place_order/{id} returns order context", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		server := setupTestServer(t, testDB, &sms.NoopGateway{})
		customerID := SeedCustomer(t, testDB.Pool, "Jane", "+254700000000")
		SeedProduct(t, testDB.Pool, "Widget", 10.99)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/place_order/%d", customerID), nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Customer model.Customer  `json:"customer"`
			Products []model.Product `json:"products"`
			Orders   []model.Order   `json:"orders"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Jane", resp.Customer.Name)
		require.Len(t, resp.Products, 1)
		assert.Empty(t, resp.Orders)
	})
}

func TestHealthAndCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB, &sms.NoopGateway{})

	t.Run("GET /health returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/add_customer", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}
