package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeOperation_ComputeProfit(t *testing.T) {
	tests := []struct {
		name       string
		tradeType  TradeType
		openPrice  float64
		closePrice float64
		volume     float64
		want       float64
	}{
		{name: "buy gains when price rises", tradeType: TradeTypeBuy, openPrice: 1.085, closePrice: 1.095, volume: 1, want: 1},
		{name: "buy loses when price falls", tradeType: TradeTypeBuy, openPrice: 1.085, closePrice: 1.075, volume: 1, want: -1},
		{name: "sell gains when price falls", tradeType: TradeTypeSell, openPrice: 2350, closePrice: 2340, volume: 0.5, want: 500},
		{name: "sell loses when price rises", tradeType: TradeTypeSell, openPrice: 2350, closePrice: 2360, volume: 0.5, want: -500},
		{name: "flat close", tradeType: TradeTypeBuy, openPrice: 149.5, closePrice: 149.5, volume: 2, want: 0},
		{name: "buy keeps a sub-cent gain", tradeType: TradeTypeBuy, openPrice: 1.0, closePrice: 1.00001, volume: 0.01, want: 0.00001},
		{name: "sell keeps a sub-cent gain", tradeType: TradeTypeSell, openPrice: 1.00001, closePrice: 1.0, volume: 0.01, want: 0.00001},
		{name: "buy keeps a sub-cent loss", tradeType: TradeTypeBuy, openPrice: 1.00001, closePrice: 1.0, volume: 0.01, want: -0.00001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &TradeOperation{Type: tt.tradeType, OpenPrice: tt.openPrice, Volume: tt.volume}
			assert.InDelta(t, tt.want, op.ComputeProfit(tt.closePrice), 1e-9)
		})
	}
}

func TestTradeOperation_Close(t *testing.T) {
	at := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	op := &TradeOperation{Type: TradeTypeBuy, OpenPrice: 1.2, Volume: 0.1, Status: TradeStatusOpen}

	op.Close(1.25, at)

	assert.Equal(t, TradeStatusClosed, op.Status)
	require.NotNil(t, op.ClosePrice)
	require.NotNil(t, op.CloseTime)
	require.NotNil(t, op.Profit)
	assert.InDelta(t, 1.25, *op.ClosePrice, 0)
	assert.Equal(t, at, *op.CloseTime)
	assert.Greater(t, *op.Profit, 0.0)
}

func TestTradeOperation_ComputeProfit_SignOnSmallMoves(t *testing.T) {
	buy := &TradeOperation{Type: TradeTypeBuy, OpenPrice: 1.0, Volume: 0.01}
	sell := &TradeOperation{Type: TradeTypeSell, OpenPrice: 1.0, Volume: 0.01}

	assert.Greater(t, buy.ComputeProfit(1.00001), 0.0)
	assert.Less(t, buy.ComputeProfit(0.99999), 0.0)
	assert.Greater(t, sell.ComputeProfit(0.99999), 0.0)
	assert.Less(t, sell.ComputeProfit(1.00001), 0.0)
}
