package service

import (
	"context"
	"encoding/json"
)

// APIEnvelope is the response shape of the companion HTTP services.
type APIEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// IntegrationClient calls the companion HTTP services (health, telegram bot, product catalogue).
type IntegrationClient interface {
	// Get fetches path relative to the configured base URL and decodes the envelope.
	Get(ctx context.Context, path string) (*APIEnvelope, error)
}
