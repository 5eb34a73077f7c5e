package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	mockService "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServiceTestConfig() *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{Currency: "EUR"},
		Copytrading: &config.CopytradingConfig{
			PromotionPolicy:  constants.PromotionPolicyConnectivity,
			MaxOpenTrades:    5,
			RetainOperations: 50,
			Symbols:          []string{"EURUSD"},
		},
		SiteSettings: &config.SiteSettingsConfig{
			TimeZone: "Europe/Lisbon",
			EnvKeys:  []string{"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"},
		},
	}
}

// newLenientMetrics accepts any counter call without asserting it.
func newLenientMetrics(t *testing.T) *mockService.MockMetrics {
	m := mockService.NewMockMetrics(t)
	m.EXPECT().OrderCompleted(mock.Anything).Maybe()
	m.EXPECT().PaymentFailed().Maybe()
	m.EXPECT().CommissionRecorded().Maybe()
	m.EXPECT().CommissionStatusChanged(mock.Anything).Maybe()
	m.EXPECT().SyncCompleted(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().StoreWriteFailed(mock.Anything).Maybe()

	return m
}

// fixedClock returns a clock frozen at t; advance moves it forward.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time {
	return c.t
}

func (c *fixedClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}
