package usecase

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// CheckoutDetailsInput is the customer form submitted on the details step
type CheckoutDetailsInput struct {
	Name                string `json:"name" validate:"required,max=120"`
	Email               string `json:"email" validate:"required,email"`
	TradingViewUsername string `json:"tradingViewUsername" validate:"omitempty,max=64"`
	AffiliateCode       string `json:"affiliateCode" validate:"omitempty,max=32"`
}

// PaymentInput carries the decorative card fields of the payment step. They are never validated.
type PaymentInput struct {
	CardName   string `json:"cardName,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVC        string `json:"cvc,omitempty"`
}

// CheckoutUsecase drives the cart -> details -> payment -> confirmation wizard of one owner
type CheckoutUsecase interface {
	// GetSession returns the current wizard state, creating it at the cart step
	GetSession(ctx context.Context, ownerID string) (*entity.CheckoutSession, error)

	// Begin moves from cart to details; the cart must not be empty
	Begin(ctx context.Context, ownerID string) (*entity.CheckoutSession, error)

	// SubmitDetails validates the form and moves from details to payment
	SubmitDetails(ctx context.Context, ownerID string, input *CheckoutDetailsInput) (*entity.CheckoutSession, error)

	// Back moves one step backwards (details -> cart, payment -> details)
	Back(ctx context.Context, ownerID string) (*entity.CheckoutSession, error)

	// SubmitPayment charges the cart total and, on success, confirms the order and clears the cart
	SubmitPayment(ctx context.Context, ownerID string, input *PaymentInput) (*entity.CheckoutSession, error)

	// Cancel returns the wizard to the cart step without side effects
	Cancel(ctx context.Context, ownerID string) (*entity.CheckoutSession, error)
}
