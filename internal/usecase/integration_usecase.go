package usecase

import (
	"context"
	"encoding/json"
	"time"
)

// IntegrationStatus is the health of one companion service
type IntegrationStatus struct {
	Name      string          `json:"name"`
	Path      string          `json:"path"`
	Healthy   bool            `json:"healthy"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Latency   time.Duration   `json:"latency"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// IntegrationUsecase reports on the companion HTTP services
type IntegrationUsecase interface {
	// CheckIntegrations probes every companion service; failures are reported, not returned
	CheckIntegrations(ctx context.Context) []IntegrationStatus
}
