package document

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
)

type cartRepository struct {
	store repository.KeyValueStore
}

// NewCartRepository stores each cart as a JSON array of lines.
func NewCartRepository(store repository.KeyValueStore) repository.CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) LoadCart(ctx context.Context, ownerID string) ([]entity.CartItem, error) {
	return loadList[entity.CartItem](ctx, r.store, cartKey(ownerID))
}

func (r *cartRepository) SaveCart(ctx context.Context, ownerID string, items []entity.CartItem) error {
	if items == nil {
		items = []entity.CartItem{}
	}

	return save(ctx, r.store, cartKey(ownerID), items)
}

func cartKey(ownerID string) string {
	return constants.KeyCartPrefix + ownerID
}
