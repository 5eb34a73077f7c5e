package document

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
)

type copytradingRepository struct {
	store repository.KeyValueStore
}

// NewCopytradingRepository stores accounts and operations as two documents.
func NewCopytradingRepository(store repository.KeyValueStore) repository.CopytradingRepository {
	return &copytradingRepository{store: store}
}

func (r *copytradingRepository) LoadAccounts(ctx context.Context) ([]*entity.CopytradingAccount, error) {
	return loadList[*entity.CopytradingAccount](ctx, r.store, constants.KeyCopytradingAccounts)
}

func (r *copytradingRepository) SaveAccounts(ctx context.Context, accounts []*entity.CopytradingAccount) error {
	return save(ctx, r.store, constants.KeyCopytradingAccounts, nonNil(accounts))
}

func (r *copytradingRepository) LoadOperations(ctx context.Context) ([]*entity.TradeOperation, error) {
	return loadList[*entity.TradeOperation](ctx, r.store, constants.KeyCopytradingOperations)
}

func (r *copytradingRepository) SaveOperations(ctx context.Context, operations []*entity.TradeOperation) error {
	return save(ctx, r.store, constants.KeyCopytradingOperations, nonNil(operations))
}
