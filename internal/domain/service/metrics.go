package service

// Metrics records business counters. Implementations must be safe for concurrent use.
type Metrics interface {
	// OrderCompleted counts a confirmed order and its total.
	OrderCompleted(total float64)

	// PaymentFailed counts a refused charge.
	PaymentFailed()

	// CommissionRecorded counts a new ledger entry.
	CommissionRecorded()

	// CommissionStatusChanged counts an applied status transition.
	CommissionStatusChanged(status string)

	// SyncCompleted records the outcome of one copytrading sync pass.
	SyncCompleted(promoted, failed, opened, closed int, failedPass bool)

	// StoreWriteFailed counts a document that could not be persisted.
	StoreWriteFailed(key string)
}
