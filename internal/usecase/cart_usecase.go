package usecase

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// CartItemInput is the payload of an add-to-cart request
type CartItemInput struct {
	ID       string                  `json:"id" validate:"required"`
	Name     string                  `json:"name" validate:"required"`
	Price    float64                 `json:"price" validate:"gte=0"`
	Quantity int                     `json:"quantity" validate:"gte=1"`
	Type     entity.ItemType         `json:"type" validate:"required,oneof=membership bootcamp scanner copytrading"`
	Details  *entity.CartItemDetails `json:"details,omitempty"`
}

// CartItemPatch carries the fields to change on an existing line; nil fields are left as is
type CartItemPatch struct {
	Name     *string                 `json:"name,omitempty" validate:"omitempty,min=1"`
	Price    *float64                `json:"price,omitempty" validate:"omitempty,gte=0"`
	Quantity *int                    `json:"quantity,omitempty" validate:"omitempty,gte=1"`
	Details  *entity.CartItemDetails `json:"details,omitempty"`
}

// CartView is the cart with its derived totals
type CartView struct {
	OwnerID        string            `json:"ownerId"`
	Items          []entity.CartItem `json:"items"`
	IsOpen         bool              `json:"isOpen"`
	TotalItems     int               `json:"totalItems"`
	TotalPrice     float64           `json:"totalPrice"`
	FormattedTotal string            `json:"formattedTotal"`
}

// CartUsecase defines the shopping cart operations, scoped by owner (browser session)
type CartUsecase interface {
	// GetCart returns the owner's lines and totals
	GetCart(ctx context.Context, ownerID string) (*CartView, error)

	// AddItem appends a line, or increases the quantity of the line with the same id
	AddItem(ctx context.Context, ownerID string, input *CartItemInput) (*CartView, error)

	// RemoveItem deletes a line; removing an absent id is a no-op
	RemoveItem(ctx context.Context, ownerID, itemID string) (*CartView, error)

	// UpdateItem merges patch into the line; an unknown id is a no-op
	UpdateItem(ctx context.Context, ownerID, itemID string, patch *CartItemPatch) (*CartView, error)

	// ClearCart removes every line
	ClearCart(ctx context.Context, ownerID string) error

	// SetOpen toggles the cart drawer flag
	SetOpen(ctx context.Context, ownerID string, open bool) (*CartView, error)

	// Snapshot returns a deep copy of the owner's cart
	Snapshot(ctx context.Context, ownerID string) (*entity.Cart, error)
}
