package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var commissionCSVHeader = []string{"ID", "Afiliado", "Cliente", "Produto", "Valor", "Status", "Data"} //nolint:gochecknoglobals

// commissionService implements the CommissionUsecase interface over the commissionHistory document.
type commissionService struct {
	mu          sync.Mutex
	loaded      bool
	commissions []*entity.Commission

	commissionRepo repository.CommissionRepository
	metrics        service.Metrics
	location       *time.Location
	now            func() time.Time
	logger         *slog.Logger
}

// CommissionServiceParams holds dependencies for CommissionService, injected by Fx.
type CommissionServiceParams struct {
	fx.In

	CommissionRepo repository.CommissionRepository
	Metrics        service.Metrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCommissionService is the constructor for commissionService.
func NewCommissionService(params CommissionServiceParams) usecase.CommissionUsecase {
	return &commissionService{
		commissionRepo: params.CommissionRepo,
		metrics:        params.Metrics,
		location:       loadLocation(params.Config, params.Logger),
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *commissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *commissionService) RecordCommission(ctx context.Context, input *usecase.CommissionInput) (*entity.Commission, error) {
	input, err := normalizeCommissionInput(input)
	if err != nil {
		return nil, err
	}

	date := srv.now()
	if input.Date != nil {
		date = *input.Date
	}

	commission := &entity.Commission{
		ID:                uuid.NewString(),
		AffiliateUsername: input.AffiliateUsername,
		CustomerUsername:  input.CustomerUsername,
		ProductName:       input.ProductName,
		Amount:            decimal.NewFromFloat(input.Amount).Round(2).InexactFloat64(),
		Status:            entity.CommissionStatusPending,
		Date:              date,
		Version:           1,
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)
	srv.commissions = append(srv.commissions, commission)
	srv.persistLocked(ctx)
	srv.metrics.CommissionRecorded()

	srv.log(ctx).Info("Commission recorded",
		slog.String("commission_id", commission.ID),
		slog.String("affiliate", commission.AffiliateUsername),
		slog.Float64("amount", commission.Amount),
	)

	return copyCommission(commission), nil
}

func (srv *commissionService) ListCommissions(ctx context.Context, filter *usecase.CommissionFilter) ([]*entity.Commission, error) {
	if err := validateCommissionFilter(filter); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	return srv.filterLocked(filter), nil
}

func (srv *commissionService) GetStats(ctx context.Context, filter *usecase.CommissionFilter) (*entity.CommissionStats, error) {
	list, err := srv.ListCommissions(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := entity.ComputeCommissionStats(list)

	return &stats, nil
}

func (srv *commissionService) UpdateCommissionStatus(
	ctx context.Context,
	id string,
	status entity.CommissionStatus,
	expectedVersion int,
	override bool,
) (*usecase.StatusUpdateResult, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"status": "must be one of pending, paid, cancelled"})
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	commission := srv.findLocked(id)
	if commission == nil {
		return nil, domainerrors.ErrCommissionNotFound.WithDetails(id)
	}
	if expectedVersion != 0 && commission.Version != expectedVersion {
		return nil, domainerrors.ErrVersionConflict.WithDetails(
			fmt.Sprintf("commission %s is at version %d, expected %d", id, commission.Version, expectedVersion))
	}

	outcome := srv.applyLocked(commission, status, override)
	switch outcome {
	case usecase.OutcomeSkipped:
		return nil, domainerrors.ErrIllegalCommissionTransition.WithDetails(
			fmt.Sprintf("%s -> %s", commission.Status, status))
	case usecase.OutcomeUpdated:
		srv.persistLocked(ctx)
		srv.metrics.CommissionStatusChanged(string(status))
		srv.log(ctx).Info("Commission status updated",
			slog.String("commission_id", id),
			slog.String("status", string(status)),
			slog.Bool("override", override),
		)
	}

	return newStatusUpdateResult(commission, outcome), nil
}

func (srv *commissionService) BulkUpdateCommissions(
	ctx context.Context,
	ids []string,
	status entity.CommissionStatus,
	override bool,
) (*usecase.BulkUpdateResult, error) {
	fields := domainerrors.FieldErrors{}
	if !status.IsValid() {
		fields["status"] = "must be one of pending, paid, cancelled"
	}
	if len(ids) == 0 {
		fields["ids"] = "at least one id is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	result := &usecase.BulkUpdateResult{
		Success: true,
		Results: make([]*usecase.StatusUpdateResult, 0, len(ids)),
	}
	for _, id := range ids {
		commission := srv.findLocked(id)
		if commission == nil {
			result.NotFound++
			result.Results = append(result.Results, &usecase.StatusUpdateResult{
				ID:      id,
				Outcome: usecase.OutcomeNotFound,
				Message: "Commission not found",
			})

			continue
		}

		outcome := srv.applyLocked(commission, status, override)
		switch outcome {
		case usecase.OutcomeUpdated:
			result.Updated++
		case usecase.OutcomeUnchanged:
			result.Unchanged++
		case usecase.OutcomeSkipped:
			result.Skipped++
		}
		result.Results = append(result.Results, newStatusUpdateResult(commission, outcome))
	}

	if result.Updated > 0 {
		srv.persistLocked(ctx)
		for range result.Updated {
			srv.metrics.CommissionStatusChanged(string(status))
		}
	}

	result.Message = fmt.Sprintf("%d updated, %d unchanged, %d skipped, %d not found",
		result.Updated, result.Unchanged, result.Skipped, result.NotFound)

	srv.log(ctx).Info("Bulk commission update",
		slog.String("status", string(status)),
		slog.Int("requested", len(ids)),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("not_found", result.NotFound),
	)

	return result, nil
}

func (srv *commissionService) ExportCSV(ctx context.Context, filter *usecase.CommissionFilter, w io.Writer) error {
	list, err := srv.ListCommissions(ctx, filter)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(commissionCSVHeader); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, c := range list {
		record := []string{
			c.ID,
			c.AffiliateUsername,
			c.CustomerUsername,
			c.ProductName,
			util.FormatAmount(c.Amount),
			string(c.Status),
			util.FormatDate(c.Date, srv.location),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv record")
		}
	}
	writer.Flush()

	return errors.Wrap(writer.Error(), "failed to flush csv")
}

func (srv *commissionService) TotalsForAffiliate(ctx context.Context, username string) (float64, float64, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	total, pending := decimal.Zero, decimal.Zero
	for _, c := range srv.commissions {
		if c.AffiliateUsername != username {
			continue
		}
		amount := decimal.NewFromFloat(c.Amount)
		switch c.Status {
		case entity.CommissionStatusPending:
			pending = pending.Add(amount)
			total = total.Add(amount)
		case entity.CommissionStatusPaid:
			total = total.Add(amount)
		}
	}

	return total.InexactFloat64(), pending.InexactFloat64(), nil
}

// applyLocked moves commission to status when allowed and reports what happened.
func (srv *commissionService) applyLocked(commission *entity.Commission, status entity.CommissionStatus, override bool) usecase.UpdateOutcome {
	if commission.Status == status {
		return usecase.OutcomeUnchanged
	}
	if !override && !commission.Status.CanTransitionTo(status) {
		return usecase.OutcomeSkipped
	}

	commission.Status = status
	commission.Version++

	return usecase.OutcomeUpdated
}

func (srv *commissionService) findLocked(id string) *entity.Commission {
	for _, c := range srv.commissions {
		if c.ID == id {
			return c
		}
	}

	return nil
}

func (srv *commissionService) filterLocked(filter *usecase.CommissionFilter) []*entity.Commission {
	if filter == nil {
		filter = &usecase.CommissionFilter{}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	since, bounded := srv.rangeStart(filter.DateRange)

	list := make([]*entity.Commission, 0, len(srv.commissions))
	for _, c := range srv.commissions {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if bounded && c.Date.Before(since) {
			continue
		}
		if search != "" && !matchesCommission(c, search) {
			continue
		}
		list = append(list, copyCommission(c))
	}

	slices.SortStableFunc(list, func(a, b *entity.Commission) int {
		return b.Date.Compare(a.Date)
	})

	return list
}

// rangeStart returns the earliest date selected by r. Today starts at local midnight.
func (srv *commissionService) rangeStart(r usecase.DateRange) (time.Time, bool) {
	now := srv.now().In(srv.location)

	switch r {
	case usecase.DateRangeToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, srv.location), true
	case usecase.DateRangeLast7Days:
		return now.AddDate(0, 0, -7), true
	case usecase.DateRangeLast30Days:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// ensureLoadedLocked hydrates the ledger on first use. Unreadable data starts an empty ledger.
func (srv *commissionService) ensureLoadedLocked(ctx context.Context) {
	if srv.loaded {
		return
	}
	srv.loaded = true

	commissions, err := srv.commissionRepo.LoadCommissions(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load commission history, starting empty", slog.Any("error", err))
		commissions = []*entity.Commission{}
	}
	srv.commissions = commissions
}

func (srv *commissionService) persistLocked(ctx context.Context) {
	if err := srv.commissionRepo.SaveCommissions(ctx, srv.commissions); err != nil {
		srv.log(ctx).Error("Failed to persist commission history", slog.Any("error", err))
		srv.metrics.StoreWriteFailed(constants.KeyCommissionHistory)
	}
}

func matchesCommission(c *entity.Commission, search string) bool {
	for _, field := range []string{c.AffiliateUsername, c.CustomerUsername, c.ProductName, c.ID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return false
}

func newStatusUpdateResult(c *entity.Commission, outcome usecase.UpdateOutcome) *usecase.StatusUpdateResult {
	result := &usecase.StatusUpdateResult{
		ID:      c.ID,
		Success: outcome != usecase.OutcomeSkipped,
		Outcome: outcome,
		Status:  c.Status,
		Version: c.Version,
	}

	switch outcome {
	case usecase.OutcomeUpdated:
		result.Message = fmt.Sprintf("Commission marked as %s", c.Status)
	case usecase.OutcomeUnchanged:
		result.Message = fmt.Sprintf("Commission already %s", c.Status)
	case usecase.OutcomeSkipped:
		result.Message = fmt.Sprintf("Commission is %s and cannot change", c.Status)
	}

	return result
}

func copyCommission(c *entity.Commission) *entity.Commission {
	clone := *c

	return &clone
}

// normalizeCommissionInput trims the text fields and runs the validate tags on the result.
func normalizeCommissionInput(input *usecase.CommissionInput) (*usecase.CommissionInput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("commission is required")
	}

	normalized := *input
	normalized.AffiliateUsername = strings.TrimSpace(input.AffiliateUsername)
	normalized.CustomerUsername = strings.TrimSpace(input.CustomerUsername)
	normalized.ProductName = strings.TrimSpace(input.ProductName)
	if err := validateStruct(&normalized); err != nil {
		return nil, err
	}

	return &normalized, nil
}

func validateCommissionFilter(filter *usecase.CommissionFilter) error {
	if filter == nil {
		return nil
	}

	fields := domainerrors.FieldErrors{}
	if filter.Status != "" && !filter.Status.IsValid() {
		fields["status"] = "must be one of pending, paid, cancelled"
	}
	if !filter.DateRange.IsValid() {
		fields["dateRange"] = "must be one of all, today, last7days, last30days"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

// loadLocation resolves siteSettings.timeZone, falling back to UTC.
func loadLocation(cfg *config.Config, logger *slog.Logger) *time.Location {
	if cfg == nil || cfg.SiteSettings == nil || cfg.SiteSettings.TimeZone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(cfg.SiteSettings.TimeZone)
	if err != nil {
		logger.Warn("Unknown time zone, using UTC",
			slog.String("time_zone", cfg.SiteSettings.TimeZone),
			slog.Any("error", err),
		)

		return time.UTC
	}

	return loc
}
