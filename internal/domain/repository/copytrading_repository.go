package repository

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// CopytradingRepository persists copytrading accounts and mirrored trade operations.
type CopytradingRepository interface {
	LoadAccounts(ctx context.Context) ([]*entity.CopytradingAccount, error)
	SaveAccounts(ctx context.Context, accounts []*entity.CopytradingAccount) error

	LoadOperations(ctx context.Context) ([]*entity.TradeOperation, error)
	SaveOperations(ctx context.Context, operations []*entity.TradeOperation) error
}
