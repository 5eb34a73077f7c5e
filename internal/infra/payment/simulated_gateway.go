// Package payment holds PaymentGateway implementations.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// simulatedGateway approves every charge after a fixed delay. Card data is never inspected.
type simulatedGateway struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedGateway creates the gateway used until a real processor is wired in.
func NewSimulatedGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{
		delay:  cfg.Checkout.PaymentDelay,
		logger: logger,
	}
}

// Charge waits for the configured delay or until ctx is done.
func (g *simulatedGateway) Charge(ctx context.Context, req service.PaymentRequest) (*service.PaymentReceipt, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "payment interrupted")
		case <-timer.C:
		}
	}

	receipt := &service.PaymentReceipt{Reference: "SIM-" + uuid.NewString()}

	g.logger.InfoContext(ctx, "Simulated payment approved",
		slog.String("order_id", req.OrderID),
		slog.Float64("amount", req.Amount),
		slog.String("currency", req.Currency),
		slog.String("reference", receipt.Reference),
	)

	return receipt, nil
}
