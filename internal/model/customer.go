package model

import "time"

// Customer represents a registered customer.
// Code is the SMS recipient identifier, expected to be a phone number in
// international format.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
