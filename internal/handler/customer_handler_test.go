package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"duka/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerService is a mock implementation of CustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, name, code string) (*model.Customer, error) {
	args := m.Called(ctx, name, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

// postForm builds a form-encoded POST request.
func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashValue extracts the flash cookie set on a response, decoded.
func flashValue(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flashCookie && cookie.MaxAge >= 0 {
			value, err := url.QueryUnescape(cookie.Value)
			require.NoError(t, err)
			return value
		}
	}
	return ""
}

func TestCustomerHandler_AddCustomer(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		form           url.Values
		mockReturn     *model.Customer
		mockError      error
		expectService  bool
		expectedStatus int
		expectedFlash  string
	}{
		{
			name:           "GET returns form descriptor",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST creates customer and redirects",
			method:         http.MethodPost,
			form:           url.Values{"name": {"Jane"}, "code": {"+254700000000"}},
			mockReturn:     &model.Customer{ID: 1, Name: "Jane", Code: "+254700000000"},
			expectService:  true,
			expectedStatus: http.StatusFound,
			expectedFlash:  "Customer added successfully!",
		},
		{
			name:           "POST missing name",
			method:         http.MethodPost,
			form:           url.Values{"code": {"+254700000000"}},
			mockError:      model.ErrMissingName,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "POST missing code",
			method:         http.MethodPost,
			form:           url.Values{"name": {"Jane"}},
			mockError:      model.ErrMissingCode,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCustomerService)
			h := NewCustomerHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("Create", mock.Anything,
					tt.form.Get("name"), tt.form.Get("code")).
					Return(tt.mockReturn, tt.mockError)
			}

			var req *http.Request
			if tt.method == http.MethodPost {
				req = postForm("/add_customer", tt.form)
			} else {
				req = httptest.NewRequest(tt.method, "/add_customer", nil)
			}

			rec := httptest.NewRecorder()
			h.AddCustomer(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusFound {
				assert.Equal(t, "/", rec.Header().Get("Location"))
				assert.Equal(t, tt.expectedFlash, flashValue(t, rec))
			}

			mockService.AssertExpectations(t)
		})
	}
}
