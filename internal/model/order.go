package model

import "time"

// Order represents a placed order. Item and Price are snapshots copied from
// the product at placement time, so later catalogue changes never alter
// order history.
type Order struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customerId" db:"customer_id"`
	Item       string    `json:"item" db:"item"`
	Price      float64   `json:"price" db:"price"`
	Quantity   int       `json:"quantity" db:"quantity"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Total returns the order total. It is derived from the snapshot fields and
// never stored.
func (o *Order) Total() float64 {
	return o.Price * float64(o.Quantity)
}

// PlaceOrderRequest carries the parsed form input for placing an order.
type PlaceOrderRequest struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
}

// PlaceOrderResult reports the outcome of an order placement. The order is
// committed before notification is attempted, so NotificationSent false does
// not imply the order failed.
type PlaceOrderResult struct {
	Order            Order   `json:"order"`
	Total            float64 `json:"total"`
	NotificationSent bool    `json:"notificationSent"`
	NotificationInfo string  `json:"notificationInfo,omitempty"`
}
