package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type integrationProbe struct {
	name string
	path string
}

//nolint:gochecknoglobals
var integrationProbes = []integrationProbe{
	{name: "health", path: "/api/health"},
	{name: "telegram", path: "/api/telegram/status"},
	{name: "products", path: "/api/products"},
}

type integrationService struct {
	client service.IntegrationClient
	now    func() time.Time
	logger *slog.Logger
}

// IntegrationServiceParams holds dependencies for IntegrationService, injected by Fx.
type IntegrationServiceParams struct {
	fx.In

	Client service.IntegrationClient
	Logger *slog.Logger
}

// NewIntegrationService is the constructor for integrationService.
func NewIntegrationService(params IntegrationServiceParams) usecase.IntegrationUsecase {
	return &integrationService{
		client: params.Client,
		now:    time.Now,
		logger: params.Logger,
	}
}

func (srv *integrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckIntegrations probes every companion endpoint concurrently.
func (srv *integrationService) CheckIntegrations(ctx context.Context) []usecase.IntegrationStatus {
	statuses := make([]usecase.IntegrationStatus, len(integrationProbes))

	var group errgroup.Group
	for i, probe := range integrationProbes {
		group.Go(func() error {
			statuses[i] = srv.check(ctx, probe)

			return nil
		})
	}
	_ = group.Wait()

	return statuses
}

func (srv *integrationService) check(ctx context.Context, probe integrationProbe) usecase.IntegrationStatus {
	started := srv.now()
	status := usecase.IntegrationStatus{
		Name:      probe.name,
		Path:      probe.path,
		CheckedAt: started,
	}

	envelope, err := srv.client.Get(ctx, probe.path)
	status.Latency = srv.now().Sub(started)
	if err != nil {
		srv.log(ctx).Warn("Integration check failed",
			slog.String("integration", probe.name),
			slog.Any("error", err),
		)
		status.Message = err.Error()

		return status
	}

	status.Healthy = envelope.Success
	status.Message = envelope.Message
	status.Data = envelope.Data

	return status
}
