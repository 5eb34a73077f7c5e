package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/middleware"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/router/handler"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/auth"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/broker"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/integrations"
	logs "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/log"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/metrics"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/payment"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/pubsub"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/qrcode"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/scheduler"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startScheduler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
		persistence.Module,
	)
}

func injectRepo() fx.Option {
	return document.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			payment.NewSimulatedGateway,
			broker.NewBrokerBridge,
			integrations.NewIntegrationClient,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewCommissionService,
			impl.NewAffiliateService,
			impl.NewCopytradingService,
			impl.NewSiteConfigService,
			impl.NewIntegrationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewCommissionHandler,
			handler.NewAffiliateHandler,
			handler.NewCopytradingHandler,
			handler.NewSiteConfigHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			scheduler.NewSyncScheduler,
		),
	)
}

// startScheduler forces construction of the sync scheduler so its lifecycle hooks are registered.
func startScheduler(*scheduler.SyncScheduler) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
