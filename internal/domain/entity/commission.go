// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus is the payout state of a commission.
type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

// IsValid checks if the CommissionStatus is a known value.
func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusPaid, CommissionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no regular transition leaves the status.
func (s CommissionStatus) IsTerminal() bool {
	return s == CommissionStatusPaid || s == CommissionStatusCancelled
}

// CanTransitionTo reports whether an admin may move a commission from s to next
// without the override path. Only pending records move, and only forward.
func (s CommissionStatus) CanTransitionTo(next CommissionStatus) bool {
	return s == CommissionStatusPending && (next == CommissionStatusPaid || next == CommissionStatusCancelled)
}

// Commission is one entry of the affiliate ledger.
type Commission struct {
	ID                string           `json:"id"`
	AffiliateUsername string           `json:"affiliateUsername"`
	CustomerUsername  string           `json:"customerUsername"`
	ProductName       string           `json:"productName"`
	Amount            float64          `json:"amount"`
	Status            CommissionStatus `json:"status"`
	Date              time.Time        `json:"date"`
	Version           int              `json:"version,omitempty"`
}

// StatusAggregate is the count and amount sum of a group of commissions.
type StatusAggregate struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// CommissionStats are the ledger aggregates. They are always derived, never stored.
type CommissionStats struct {
	Total     StatusAggregate `json:"total"`
	Pending   StatusAggregate `json:"pending"`
	Paid      StatusAggregate `json:"paid"`
	Cancelled StatusAggregate `json:"cancelled"`
}

// ComputeCommissionStats scans the commissions once and sums counts and amounts per status.
func ComputeCommissionStats(commissions []*Commission) CommissionStats {
	sums := map[CommissionStatus]decimal.Decimal{}
	counts := map[CommissionStatus]int{}
	total := decimal.Zero

	for _, c := range commissions {
		amount := decimal.NewFromFloat(c.Amount)
		total = total.Add(amount)
		sums[c.Status] = sums[c.Status].Add(amount)
		counts[c.Status]++
	}

	aggregate := func(status CommissionStatus) StatusAggregate {
		return StatusAggregate{Count: counts[status], Amount: sums[status].InexactFloat64()}
	}

	return CommissionStats{
		Total:     StatusAggregate{Count: len(commissions), Amount: total.InexactFloat64()},
		Pending:   aggregate(CommissionStatusPending),
		Paid:      aggregate(CommissionStatusPaid),
		Cancelled: aggregate(CommissionStatusCancelled),
	}
}
