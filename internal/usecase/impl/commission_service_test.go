package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	mockRepo "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commissionServiceFixtures holds all test dependencies for commission service tests.
type commissionServiceFixtures struct {
	service *commissionService
	clock   *fixedClock
}

func createTestCommissionService(t *testing.T) commissionServiceFixtures {
	clock := &fixedClock{t: time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)}
	svc := NewCommissionService(CommissionServiceParams{
		CommissionRepo: document.NewCommissionRepository(memory.NewKeyValueStore()),
		Metrics:        newLenientMetrics(t),
		Config:         newServiceTestConfig(),
		Logger:         newTestLogger(),
	}).(*commissionService)
	svc.now = clock.now

	return commissionServiceFixtures{service: svc, clock: clock}
}

func recordTestCommission(t *testing.T, svc usecase.CommissionUsecase, affiliate string, amount float64, date time.Time) *entity.Commission {
	t.Helper()

	commission, err := svc.RecordCommission(context.Background(), &usecase.CommissionInput{
		AffiliateUsername: affiliate,
		CustomerUsername:  "customer-" + affiliate,
		ProductName:       "VIP Membership",
		Amount:            amount,
		Date:              &date,
	})
	require.NoError(t, err)

	return commission
}

func TestCommissionService_RecordCommission(t *testing.T) {
	fx := createTestCommissionService(t)

	commission, err := fx.service.RecordCommission(context.Background(), &usecase.CommissionInput{
		AffiliateUsername: "ana",
		CustomerUsername:  "bob",
		ProductName:       "Bootcamp",
		Amount:            29.7,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, commission.ID)
	assert.Equal(t, entity.CommissionStatusPending, commission.Status)
	assert.Equal(t, 1, commission.Version)
	assert.Equal(t, fx.clock.now(), commission.Date)

	_, err = fx.service.RecordCommission(context.Background(), &usecase.CommissionInput{Amount: -1})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCommissionService_RecordCommission_Validation(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.CommissionInput
		wantFields map[string]string
	}{
		{
			name:  "missing names",
			input: &usecase.CommissionInput{Amount: 10},
			wantFields: map[string]string{
				"affiliateUsername": "required",
				"customerUsername":  "required",
				"productName":       "required",
			},
		},
		{
			name:       "blank names are trimmed before checking",
			input:      &usecase.CommissionInput{AffiliateUsername: "  ", CustomerUsername: "bob", ProductName: "Bootcamp", Amount: 10},
			wantFields: map[string]string{"affiliateUsername": "required"},
		},
		{
			name:       "negative amount",
			input:      &usecase.CommissionInput{AffiliateUsername: "ana", CustomerUsername: "bob", ProductName: "Bootcamp", Amount: -1},
			wantFields: map[string]string{"amount": "must be at least 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommissionService(t)

			_, err := fx.service.RecordCommission(context.Background(), tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, domainerrors.FieldErrors(tt.wantFields), validationErr.Fields())
		})
	}
}

func TestCommissionService_RecordCommission_TrimsNames(t *testing.T) {
	fx := createTestCommissionService(t)

	commission, err := fx.service.RecordCommission(context.Background(), &usecase.CommissionInput{
		AffiliateUsername: " ana ",
		CustomerUsername:  "bob",
		ProductName:       "Bootcamp ",
		Amount:            5,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", commission.AffiliateUsername)
	assert.Equal(t, "Bootcamp", commission.ProductName)
}

func TestCommissionService_UpdateCommissionStatus(t *testing.T) {
	fx := createTestCommissionService(t)
	ctx := context.Background()
	commission := recordTestCommission(t, fx.service, "ana", 10, fx.clock.now())

	paid, err := fx.service.UpdateCommissionStatus(ctx, commission.ID, entity.CommissionStatusPaid, 0, false)
	require.NoError(t, err)
	assert.True(t, paid.Success)
	assert.Equal(t, usecase.OutcomeUpdated, paid.Outcome)
	assert.Equal(t, 2, paid.Version)

	again, err := fx.service.UpdateCommissionStatus(ctx, commission.ID, entity.CommissionStatusPaid, 0, false)
	require.NoError(t, err)
	assert.True(t, again.Success)
	assert.Equal(t, usecase.OutcomeUnchanged, again.Outcome)
	assert.Equal(t, 2, again.Version, "an idempotent update does not bump the version")

	_, err = fx.service.UpdateCommissionStatus(ctx, commission.ID, entity.CommissionStatusPending, 0, false)
	require.ErrorIs(t, err, domainerrors.ErrIllegalCommissionTransition)

	reopened, err := fx.service.UpdateCommissionStatus(ctx, commission.ID, entity.CommissionStatusPending, 0, true)
	require.NoError(t, err)
	assert.Equal(t, entity.CommissionStatusPending, reopened.Status)
	assert.Equal(t, 3, reopened.Version)
}

func TestCommissionService_UpdateCommissionStatus_Errors(t *testing.T) {
	fx := createTestCommissionService(t)
	ctx := context.Background()
	commission := recordTestCommission(t, fx.service, "ana", 10, fx.clock.now())

	tests := []struct {
		name            string
		id              string
		status          entity.CommissionStatus
		expectedVersion int
		wantErr         error
	}{
		{name: "unknown id", id: "missing", status: entity.CommissionStatusPaid, wantErr: domainerrors.ErrCommissionNotFound},
		{name: "stale version", id: commission.ID, status: entity.CommissionStatusPaid, expectedVersion: 7, wantErr: domainerrors.ErrVersionConflict},
		{name: "invalid status", id: commission.ID, status: "refunded", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.UpdateCommissionStatus(ctx, tt.id, tt.status, tt.expectedVersion, false)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	matching, err := fx.service.UpdateCommissionStatus(ctx, commission.ID, entity.CommissionStatusCancelled, 1, false)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeUpdated, matching.Outcome)
}

func TestCommissionService_BulkUpdateCommissions_ReportsEveryID(t *testing.T) {
	date := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)
	stored := []*entity.Commission{
		{ID: "c1", AffiliateUsername: "ana", Amount: 10, Status: entity.CommissionStatusPending, Date: date, Version: 1},
		{ID: "c2", AffiliateUsername: "ana", Amount: 20, Status: entity.CommissionStatusPaid, Date: date, Version: 2},
		{ID: "c3", AffiliateUsername: "rui", Amount: 30, Status: entity.CommissionStatusCancelled, Date: date, Version: 2},
	}

	commissionRepo := mockRepo.NewMockCommissionRepository(t)
	commissionRepo.EXPECT().LoadCommissions(mock.Anything).Return(stored, nil).Once()
	commissionRepo.EXPECT().SaveCommissions(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewCommissionService(CommissionServiceParams{
		CommissionRepo: commissionRepo,
		Metrics:        newLenientMetrics(t),
		Config:         newServiceTestConfig(),
		Logger:         newTestLogger(),
	})

	ids := []string{"c1", "c2", "c3", "ghost"}
	result, err := svc.BulkUpdateCommissions(context.Background(), ids, entity.CommissionStatusPaid, false)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.NotFound)
	assert.Equal(t, "1 updated, 1 unchanged, 1 skipped, 1 not found", result.Message)

	require.Len(t, result.Results, len(ids))
	outcomes := map[string]usecase.UpdateOutcome{}
	for _, r := range result.Results {
		outcomes[r.ID] = r.Outcome
	}
	assert.Equal(t, map[string]usecase.UpdateOutcome{
		"c1":    usecase.OutcomeUpdated,
		"c2":    usecase.OutcomeUnchanged,
		"c3":    usecase.OutcomeSkipped,
		"ghost": usecase.OutcomeNotFound,
	}, outcomes)
}

func TestCommissionService_BulkUpdateCommissions_Override(t *testing.T) {
	fx := createTestCommissionService(t)
	ctx := context.Background()
	first := recordTestCommission(t, fx.service, "ana", 10, fx.clock.now())
	second := recordTestCommission(t, fx.service, "ana", 20, fx.clock.now())

	_, err := fx.service.BulkUpdateCommissions(ctx, []string{first.ID, second.ID}, entity.CommissionStatusCancelled, false)
	require.NoError(t, err)

	result, err := fx.service.BulkUpdateCommissions(ctx, []string{first.ID, second.ID}, entity.CommissionStatusPending, true)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)

	_, err = fx.service.BulkUpdateCommissions(ctx, nil, entity.CommissionStatusPaid, false)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCommissionService_ListCommissions_Filters(t *testing.T) {
	fx := createTestCommissionService(t)
	ctx := context.Background()
	now := fx.clock.now()

	recent := recordTestCommission(t, fx.service, "ana", 10, now.Add(-time.Hour))
	older := recordTestCommission(t, fx.service, "Rui", 20, now.AddDate(0, 0, -5))
	oldest := recordTestCommission(t, fx.service, "ana", 30, now.AddDate(0, 0, -20))
	_, err := fx.service.UpdateCommissionStatus(ctx, older.ID, entity.CommissionStatusPaid, 0, false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		filter  *usecase.CommissionFilter
		wantIDs []string
	}{
		{name: "nil filter newest first", filter: nil, wantIDs: []string{recent.ID, older.ID, oldest.ID}},
		{name: "search is case-insensitive", filter: &usecase.CommissionFilter{Search: "RUI"}, wantIDs: []string{older.ID}},
		{name: "search by id", filter: &usecase.CommissionFilter{Search: oldest.ID}, wantIDs: []string{oldest.ID}},
		{name: "status", filter: &usecase.CommissionFilter{Status: entity.CommissionStatusPending}, wantIDs: []string{recent.ID, oldest.ID}},
		{name: "today", filter: &usecase.CommissionFilter{DateRange: usecase.DateRangeToday}, wantIDs: []string{recent.ID}},
		{name: "last 7 days", filter: &usecase.CommissionFilter{DateRange: usecase.DateRangeLast7Days}, wantIDs: []string{recent.ID, older.ID}},
		{name: "last 30 days", filter: &usecase.CommissionFilter{DateRange: usecase.DateRangeLast30Days}, wantIDs: []string{recent.ID, older.ID, oldest.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := fx.service.ListCommissions(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(list))
			for _, c := range list {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	_, err = fx.service.ListCommissions(ctx, &usecase.CommissionFilter{DateRange: "yesterday"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCommissionService_GetStats(t *testing.T) {
	fx := createTestCommissionService(t)
	ctx := context.Background()
	now := fx.clock.now()

	a := recordTestCommission(t, fx.service, "ana", 10.1, now)
	b := recordTestCommission(t, fx.service, "ana", 20.2, now)
	recordTestCommission(t, fx.service, "ana", 0.3, now)
	_, err := fx.service.UpdateCommissionStatus(ctx, a.ID, entity.CommissionStatusPaid, 0, false)
	require.NoError(t, err)
	_, err = fx.service.UpdateCommissionStatus(ctx, b.ID, entity.CommissionStatusCancelled, 0, false)
	require.NoError(t, err)

	stats, err := fx.service.GetStats(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAggregate{Count: 3, Amount: 30.6}, stats.Total)
	assert.Equal(t, entity.StatusAggregate{Count: 1, Amount: 0.3}, stats.Pending)
	assert.Equal(t, entity.StatusAggregate{Count: 1, Amount: 10.1}, stats.Paid)
	assert.Equal(t, entity.StatusAggregate{Count: 1, Amount: 20.2}, stats.Cancelled)

	total, pending, err := fx.service.TotalsForAffiliate(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 10.4, total)
	assert.Equal(t, 0.3, pending)
}

func TestCommissionService_ExportCSV(t *testing.T) {
	fx := createTestCommissionService(t)

	// 23:30 UTC on the 1st is already the 2nd in Lisbon summer time
	commission := recordTestCommission(t, fx.service, "ana", 5, time.Date(2024, time.July, 1, 23, 30, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, fx.service.ExportCSV(context.Background(), nil, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Afiliado,Cliente,Produto,Valor,Status,Data", lines[0])
	assert.Equal(t, commission.ID+",ana,customer-ana,VIP Membership,€5.00,pending,02/07/2024", lines[1])
}

func TestCommissionService_CorruptLedgerStartsEmpty(t *testing.T) {
	store := memory.NewKeyValueStore()
	require.NoError(t, store.Set(context.Background(), "commissionHistory", []byte(`{"oops":`)))

	svc := NewCommissionService(CommissionServiceParams{
		CommissionRepo: document.NewCommissionRepository(store),
		Metrics:        newLenientMetrics(t),
		Config:         newServiceTestConfig(),
		Logger:         newTestLogger(),
	})

	list, err := svc.ListCommissions(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}
