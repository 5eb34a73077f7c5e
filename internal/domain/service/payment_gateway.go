// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
)

// PaymentRequest is what the checkout asks a gateway to charge.
type PaymentRequest struct {
	OrderID       string
	OwnerID       string
	Amount        float64
	Currency      string
	CustomerEmail string
}

// PaymentReceipt is the gateway's proof of a successful charge.
type PaymentReceipt struct {
	Reference string
}

// PaymentGateway charges a customer. Implementations must honour ctx cancellation.
type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentRequest) (*PaymentReceipt, error)
}
