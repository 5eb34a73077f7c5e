// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutStep is the position of a checkout session in the purchase wizard.
type CheckoutStep string

const (
	CheckoutStepCart         CheckoutStep = "cart"
	CheckoutStepDetails      CheckoutStep = "details"
	CheckoutStepPayment      CheckoutStep = "payment"
	CheckoutStepConfirmation CheckoutStep = "confirmation"
)

// String representation (for logging)
func (s CheckoutStep) String() string {
	return string(s)
}

// IsTerminal reports whether the step ends the wizard.
func (s CheckoutStep) IsTerminal() bool {
	return s == CheckoutStepConfirmation
}

// CanTransitionTo reports whether the wizard may move from s to next.
// Cancellation back to the cart is handled separately.
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case CheckoutStepCart:
		return next == CheckoutStepDetails
	case CheckoutStepDetails:
		return next == CheckoutStepCart || next == CheckoutStepPayment
	case CheckoutStepPayment:
		return next == CheckoutStepDetails || next == CheckoutStepConfirmation
	default:
		return false
	}
}

// CheckoutForm is the customer data collected on the details step.
type CheckoutForm struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	TradingViewUsername string `json:"tradingViewUsername,omitempty"`
	AffiliateCode       string `json:"affiliateCode,omitempty"`
}

// Order is the receipt produced when a checkout reaches confirmation.
type Order struct {
	ID               uuid.UUID    `json:"id"`
	OwnerID          string       `json:"ownerId"`
	Items            []CartItem   `json:"items"`
	Total            float64      `json:"total"`
	Currency         string       `json:"currency"`
	Customer         CheckoutForm `json:"customer"`
	PaymentReference string       `json:"paymentReference"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// CheckoutSession is the ephemeral wizard state of one browser session. It is never persisted.
type CheckoutSession struct {
	ID         uuid.UUID    `json:"id"`
	OwnerID    string       `json:"ownerId"`
	Step       CheckoutStep `json:"step"`
	Form       CheckoutForm `json:"form"`
	Processing bool         `json:"processing"`
	Order      *Order       `json:"order,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Clone returns a copy safe to hand out of the session store.
func (s *CheckoutSession) Clone() *CheckoutSession {
	cloned := *s
	if s.Order != nil {
		order := *s.Order
		order.Items = append([]CartItem(nil), s.Order.Items...)
		cloned.Order = &order
	}

	return &cloned
}
