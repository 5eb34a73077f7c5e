// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Member is a registered user of the member platform.
type Member struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AffiliateUser is a member enrolled in the affiliate programme.
// TotalCommission and PendingCommission are derived from the ledger on every read.
type AffiliateUser struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              Role    `json:"role"`
	AffiliateCode     string  `json:"affiliateCode"`
	TotalCommission   float64 `json:"totalCommission"`
	PendingCommission float64 `json:"pendingCommission"`
}
