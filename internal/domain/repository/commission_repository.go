package repository

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// CommissionRepository persists the whole commission ledger as one document.
type CommissionRepository interface {
	// LoadCommissions returns every stored commission. A missing ledger is empty.
	LoadCommissions(ctx context.Context) ([]*entity.Commission, error)

	// SaveCommissions replaces the stored ledger.
	SaveCommissions(ctx context.Context, commissions []*entity.Commission) error
}
