package service

import (
	"context"
	"fmt"
	"strings"

	"duka/internal/model"
	"duka/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Create registers a new customer with a display name and contact code.
// The code is expected to be a phone number but is not validated beyond
// presence.
func (s *customerService) Create(ctx context.Context, name, code string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)

	if name == "" {
		return nil, model.ErrMissingName
	}
	if code == "" {
		return nil, model.ErrMissingCode
	}

	customer := &model.Customer{Name: name, Code: code}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().
		Int64("customer_id", customer.ID).
		Str("name", customer.Name).
		Msg("customer created")

	return customer, nil
}

// GetAll retrieves all registered customers.
func (s *customerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all customers")
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a single customer by ID.
func (s *customerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to get customer by ID")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		s.logger.Debug().Int64("customer_id", id).Msg("customer not found")
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}
