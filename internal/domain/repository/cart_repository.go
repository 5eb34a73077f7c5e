package repository

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// CartRepository persists the item list of each cart owner under cart:<ownerID>.
type CartRepository interface {
	// LoadCart returns the stored items of the owner. A missing cart is empty.
	LoadCart(ctx context.Context, ownerID string) ([]entity.CartItem, error)

	// SaveCart replaces the stored items of the owner.
	SaveCart(ctx context.Context, ownerID string, items []entity.CartItem) error
}
