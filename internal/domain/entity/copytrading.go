// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the connection state of a copytrading account.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusError    AccountStatus = "error"
	AccountStatusDisabled AccountStatus = "disabled"
)

// IsValid checks if the AccountStatus is a known value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusActive, AccountStatusError, AccountStatusDisabled:
		return true
	default:
		return false
	}
}

// RiskSettings bound how aggressively trades are mirrored into the account.
type RiskSettings struct {
	MaxVolume     float64 `json:"maxVolume" validate:"gt=0"`
	MaxDrawdown   float64 `json:"maxDrawdown" validate:"gte=0,lte=100"`
	UseStopLoss   bool    `json:"useStopLoss"`
	UseTakeProfit bool    `json:"useTakeProfit"`
	CopyRatio     float64 `json:"copyRatio" validate:"gt=0"`
}

// CopytradingAccount links a member to a broker account. One account per user.
type CopytradingAccount struct {
	UserID        string        `json:"userId"`
	BrokerName    string        `json:"brokerName"`
	ServerName    string        `json:"serverName"`
	AccountNumber string        `json:"accountNumber"`
	Status        AccountStatus `json:"status"`
	LastSync      time.Time     `json:"lastSync"`
	RiskSettings  RiskSettings  `json:"riskSettings"`
}

// TradeType is the direction of a trade.
type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

// TradeStatus is the lifecycle state of a trade operation.
type TradeStatus string

const (
	TradeStatusOpen    TradeStatus = "open"
	TradeStatusClosed  TradeStatus = "closed"
	TradeStatusPending TradeStatus = "pending"
)

// contractSize is the multiplier applied to price moves when computing profit.
const contractSize = 100

// TradeOperation is one mirrored trade.
type TradeOperation struct {
	ID         string      `json:"id"`
	Symbol     string      `json:"symbol"`
	Type       TradeType   `json:"type"`
	OpenTime   time.Time   `json:"openTime"`
	CloseTime  *time.Time  `json:"closeTime,omitempty"`
	OpenPrice  float64     `json:"openPrice"`
	ClosePrice *float64    `json:"closePrice,omitempty"`
	Volume     float64     `json:"volume"`
	StopLoss   *float64    `json:"stopLoss,omitempty"`
	TakeProfit *float64    `json:"takeProfit,omitempty"`
	Profit     *float64    `json:"profit,omitempty"`
	Status     TradeStatus `json:"status"`
}

// ComputeProfit returns (close-open)*volume*contractSize, mirrored for sells.
// The result is kept at full precision; rounding is left to presentation.
func (t *TradeOperation) ComputeProfit(closePrice float64) float64 {
	move := decimal.NewFromFloat(closePrice).Sub(decimal.NewFromFloat(t.OpenPrice))
	if t.Type == TradeTypeSell {
		move = move.Neg()
	}

	return move.Mul(decimal.NewFromFloat(t.Volume)).Mul(decimal.NewFromInt(contractSize)).InexactFloat64()
}

// Close marks the trade closed at the given price and time and records the profit.
func (t *TradeOperation) Close(closePrice float64, at time.Time) {
	profit := t.ComputeProfit(closePrice)
	t.ClosePrice = &closePrice
	t.CloseTime = &at
	t.Profit = &profit
	t.Status = TradeStatusClosed
}
