package service

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// BrokerBridge reaches the trading terminal behind a copytrading account.
type BrokerBridge interface {
	// CheckConnectivity returns nil when the account's broker connection is usable.
	CheckConnectivity(ctx context.Context, account *entity.CopytradingAccount) error
}
