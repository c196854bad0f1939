package service

import (
	"context"
	"errors"
	"fmt"

	"duka/internal/model"
	"duka/internal/repository"
	"duka/internal/sms"

	"github.com/rs/zerolog"
)

// Flash messages reported back to the caller after placing an order. The
// wording distinguishes a clean send from the two contained failure kinds.
const (
	msgOrderPlacedAndSent  = "Order placed successfully and confirmation SMS sent."
	msgOrderPlacedSMSFail  = "Order placed successfully, but SMS sending failed: %s"
	msgOrderPlacedSMSError = "Order placed successfully, but we encountered an unexpected error while sending the SMS."
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	gateway      sms.Gateway
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	gateway sms.Gateway,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		gateway:      gateway,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder runs the order workflow. The order insert is the commit point of
// the sale: the confirmation SMS is sent afterwards and its failure never
// rolls the order back.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.PlaceOrderResult, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", req.CustomerID).Msg("failed to resolve customer")
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ProductID).Msg("failed to resolve product")
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if req.Quantity <= 0 {
		s.logger.Warn().
			Int64("customer_id", req.CustomerID).
			Int("quantity", req.Quantity).
			Msg("rejected non-positive quantity")
		return nil, model.ErrInvalidQuantity
	}

	// Snapshot the item name and unit price so later catalogue changes never
	// rewrite order history.
	order := &model.Order{
		CustomerID: customer.ID,
		Item:       product.Name,
		Price:      product.Price,
		Quantity:   req.Quantity,
	}
	total := product.Price * float64(req.Quantity)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().
			Err(err).
			Int64("customer_id", customer.ID).
			Int64("product_id", product.ID).
			Msg("failed to persist order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("customer_id", customer.ID).
		Str("item", order.Item).
		Int("quantity", order.Quantity).
		Float64("total", total).
		Msg("order placed")

	result := &model.PlaceOrderResult{Order: *order, Total: total}
	result.NotificationSent, result.NotificationInfo = s.notify(ctx, customer, order, total)

	return result, nil
}

// notify composes and sends the confirmation SMS. Failures are contained:
// they are logged and reported in the returned info string only.
func (s *orderService) notify(ctx context.Context, customer *model.Customer, order *model.Order, total float64) (bool, string) {
	message := fmt.Sprintf(
		"Hello %s, your order has been placed successfully.\n"+
			"Item: %s\n"+
			"Quantity: %d\n"+
			"Total Price: Ksh%.2f\n"+
			"Thank you for your order!",
		customer.Name, order.Item, order.Quantity, total)

	response, err := s.gateway.Send(ctx, message, customer.Code)
	if err != nil {
		var gatewayErr *sms.GatewayError
		if errors.As(err, &gatewayErr) {
			s.logger.Error().
				Err(err).
				Int64("order_id", order.ID).
				Str("recipient", customer.Code).
				Msg("sms gateway error")
			return false, fmt.Sprintf(msgOrderPlacedSMSFail, gatewayErr.Message)
		}

		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Str("recipient", customer.Code).
			Msg("unexpected error while sending sms")
		return false, msgOrderPlacedSMSError
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("provider_message", response.Message).
		Msg("confirmation sms sent")

	return true, msgOrderPlacedAndSent
}

// ListByCustomer retrieves all orders placed by the given customer.
func (s *orderService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", customerID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
