package repository

import (
	"context"

	"duka/internal/model"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer and populates its assigned ID and timestamp.
	Create(ctx context.Context, customer *model.Customer) error

	// GetAll retrieves all customers ordered by ID.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by its ID. Returns nil when the ID
	// does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product and populates its assigned ID and timestamp.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves all products ordered by ID.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the ID
	// does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order and populates its assigned ID and timestamp.
	// The insert is the commit point of the sale.
	Create(ctx context.Context, order *model.Order) error

	// GetAll retrieves all orders ordered by ID.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by its ID. Returns nil when the ID
	// does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer.
	GetByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}
