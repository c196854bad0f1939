package service

import (
	"context"

	"duka/internal/model"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// Create registers a new customer with a display name and contact code.
	Create(ctx context.Context, name, code string) (*model.Customer, error)

	// GetAll retrieves all registered customers.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by ID.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// Create adds a new product with a display name and unit price.
	Create(ctx context.Context, name string, price float64) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// OrderService defines operations for order placement.
type OrderService interface {
	// PlaceOrder runs the order workflow: resolve customer and product,
	// validate quantity, persist the order, then notify the customer. The
	// order stands regardless of notification outcome.
	PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.PlaceOrderResult, error)

	// ListByCustomer retrieves all orders placed by the given customer.
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}
