package usecase

import (
	"context"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// RegisterAccountInput links a broker account to a member
type RegisterAccountInput struct {
	UserID        string               `json:"-"`
	BrokerName    string               `json:"brokerName"`
	ServerName    string               `json:"serverName"`
	AccountNumber string               `json:"accountNumber" validate:"required"`
	RiskSettings  *entity.RiskSettings `json:"riskSettings,omitempty"`
}

// SyncReport summarises one sync pass
type SyncReport struct {
	StartedAt      time.Time     `json:"startedAt"`
	Duration       time.Duration `json:"duration"`
	Accounts       int           `json:"accounts"`
	Promoted       int           `json:"promoted"`
	Failed         int           `json:"failed"`
	TradesOpened   int           `json:"tradesOpened"`
	TradesClosed   int           `json:"tradesClosed"`
	OpenOperations int           `json:"openOperations"`
	Skipped        bool          `json:"skipped"`
}

// CopytradingUsecase manages copytrading accounts and the simulated trade feed
type CopytradingUsecase interface {
	RegisterAccount(ctx context.Context, input *RegisterAccountInput) (*entity.CopytradingAccount, error)
	GetAccount(ctx context.Context, userID string) (*entity.CopytradingAccount, error)
	ListAccounts(ctx context.Context) ([]*entity.CopytradingAccount, error)
	UpdateAccountStatus(ctx context.Context, userID string, status entity.AccountStatus) (*entity.CopytradingAccount, error)
	UpdateRiskSettings(ctx context.Context, userID string, settings *entity.RiskSettings) (*entity.CopytradingAccount, error)

	// ListOperations returns trades newest first; an empty status selects all
	ListOperations(ctx context.Context, status entity.TradeStatus) ([]*entity.TradeOperation, error)

	// SyncTrades resolves pending accounts and advances the simulated trade feed.
	// A pass that starts while another runs is skipped.
	SyncTrades(ctx context.Context) (*SyncReport, error)
}
