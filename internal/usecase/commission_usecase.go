package usecase

import (
	"context"
	"io"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// DateRange selects commissions by age relative to now
type DateRange string

const (
	DateRangeAll        DateRange = "all"
	DateRangeToday      DateRange = "today"
	DateRangeLast7Days  DateRange = "last7days"
	DateRangeLast30Days DateRange = "last30days"
)

// IsValid checks if the DateRange is a known value; empty means all.
func (r DateRange) IsValid() bool {
	switch r {
	case "", DateRangeAll, DateRangeToday, DateRangeLast7Days, DateRangeLast30Days:
		return true
	default:
		return false
	}
}

// CommissionFilter narrows the ledger. Zero values select everything.
type CommissionFilter struct {
	Search    string                  `query:"search"`
	Status    entity.CommissionStatus `query:"status"`
	DateRange DateRange               `query:"dateRange"`
}

// CommissionInput creates a ledger entry
type CommissionInput struct {
	AffiliateUsername string     `json:"affiliateUsername" validate:"required"`
	CustomerUsername  string     `json:"customerUsername" validate:"required"`
	ProductName       string     `json:"productName" validate:"required"`
	Amount            float64    `json:"amount" validate:"gte=0"`
	Date              *time.Time `json:"date,omitempty"`
}

// UpdateOutcome describes what a status update did to one record
type UpdateOutcome string

const (
	OutcomeUpdated   UpdateOutcome = "updated"
	OutcomeUnchanged UpdateOutcome = "unchanged"
	OutcomeSkipped   UpdateOutcome = "skipped"
	OutcomeNotFound  UpdateOutcome = "not_found"
)

// StatusUpdateResult is the result of one status update
type StatusUpdateResult struct {
	ID      string                  `json:"id"`
	Success bool                    `json:"success"`
	Outcome UpdateOutcome           `json:"outcome"`
	Status  entity.CommissionStatus `json:"status,omitempty"`
	Version int                     `json:"version,omitempty"`
	Message string                  `json:"message"`
}

// BulkUpdateResult reports every id of a bulk update plus an aggregate message
type BulkUpdateResult struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message"`
	Updated   int                   `json:"updated"`
	Unchanged int                   `json:"unchanged"`
	Skipped   int                   `json:"skipped"`
	NotFound  int                   `json:"notFound"`
	Results   []*StatusUpdateResult `json:"results"`
}

// CommissionUsecase manages the affiliate commission ledger
type CommissionUsecase interface {
	// RecordCommission adds a pending commission
	RecordCommission(ctx context.Context, input *CommissionInput) (*entity.Commission, error)

	// ListCommissions returns the filtered ledger, newest first
	ListCommissions(ctx context.Context, filter *CommissionFilter) ([]*entity.Commission, error)

	// GetStats aggregates the filtered ledger by status
	GetStats(ctx context.Context, filter *CommissionFilter) (*entity.CommissionStats, error)

	// UpdateCommissionStatus moves one commission to status. expectedVersion 0 skips the version check.
	UpdateCommissionStatus(ctx context.Context, id string, status entity.CommissionStatus, expectedVersion int, override bool) (*StatusUpdateResult, error)

	// BulkUpdateCommissions applies status to every id and persists once
	BulkUpdateCommissions(ctx context.Context, ids []string, status entity.CommissionStatus, override bool) (*BulkUpdateResult, error)

	// ExportCSV writes the filtered ledger as CSV
	ExportCSV(ctx context.Context, filter *CommissionFilter, w io.Writer) error

	// TotalsForAffiliate returns the non-cancelled and pending sums of an affiliate
	TotalsForAffiliate(ctx context.Context, username string) (total, pending float64, err error)
}
