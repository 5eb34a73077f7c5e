package document

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
)

type commissionRepository struct {
	store repository.KeyValueStore
}

// NewCommissionRepository stores the ledger under commissionHistory.
func NewCommissionRepository(store repository.KeyValueStore) repository.CommissionRepository {
	return &commissionRepository{store: store}
}

func (r *commissionRepository) LoadCommissions(ctx context.Context) ([]*entity.Commission, error) {
	return loadList[*entity.Commission](ctx, r.store, constants.KeyCommissionHistory)
}

func (r *commissionRepository) SaveCommissions(ctx context.Context, commissions []*entity.Commission) error {
	return save(ctx, r.store, constants.KeyCommissionHistory, nonNil(commissions))
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}

	return list
}
