// Package broker holds BrokerBridge implementations used by the copytrading sync.
package broker

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/integrations"

	"github.com/pkg/errors"
)

// ErrUnreachable is returned when the broker cannot be reached for an account.
var ErrUnreachable = errors.New("broker unreachable")

// simulatedBridge treats every account with a broker account number as reachable.
type simulatedBridge struct{}

// NewSimulatedBridge creates the bridge used when no terminal bridge is deployed.
func NewSimulatedBridge() service.BrokerBridge {
	return simulatedBridge{}
}

func (simulatedBridge) CheckConnectivity(ctx context.Context, account *entity.CopytradingAccount) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(account.AccountNumber) == "" {
		return errors.Wrap(ErrUnreachable, "missing account number")
	}

	return nil
}

// httpBridge asks the terminal bridge service whether an account is connected.
type httpBridge struct {
	client *integrations.Client
}

// NewHTTPBridge checks connectivity with GET /api/health on the bridge service.
func NewHTTPBridge(client *integrations.Client) service.BrokerBridge {
	return &httpBridge{client: client}
}

func (b *httpBridge) CheckConnectivity(ctx context.Context, account *entity.CopytradingAccount) error {
	query := url.Values{}
	query.Set("broker", account.BrokerName)
	query.Set("server", account.ServerName)
	query.Set("account", account.AccountNumber)

	envelope, err := b.client.Get(ctx, "/api/health?"+query.Encode())
	if err != nil {
		return errors.Wrap(err, "broker bridge health check failed")
	}
	if !envelope.Success {
		return errors.Wrapf(ErrUnreachable, "%s", envelope.Message)
	}

	return nil
}

// NewBrokerBridge creates the BrokerBridge selected by copytrading.bridge.kind
func NewBrokerBridge(cfg *config.Config, logger *slog.Logger) (service.BrokerBridge, error) {
	bridgeCfg := cfg.Copytrading.Bridge

	switch bridgeCfg.Kind {
	case constants.BrokerBridgeSimulated:
		logger.Info("Using simulated broker bridge")

		return NewSimulatedBridge(), nil

	case constants.BrokerBridgeHTTP:
		if bridgeCfg.URL == "" {
			return nil, errors.New("copytrading.bridge.url is required for http bridge")
		}
		logger.Info("Using HTTP broker bridge", slog.String("url", bridgeCfg.URL))

		client := integrations.NewClient(integrations.Options{
			Name:    "broker-bridge",
			BaseURL: bridgeCfg.URL,
			Timeout: bridgeCfg.Timeout,
		}, logger)

		return NewHTTPBridge(client), nil

	default:
		return nil, errors.Errorf("unknown broker bridge: %s", bridgeCfg.Kind)
	}
}
