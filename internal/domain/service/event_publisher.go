package service

import (
	"context"
	"time"
)

// OrderCompletedEvent is published once a checkout reaches confirmation.
type OrderCompletedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string    `json:"order_id"`
	OwnerID       string    `json:"owner_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	AffiliateCode string    `json:"affiliate_code,omitempty"`
	ItemIDs       []string  `json:"item_ids"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	CompletedAt   time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCompleted publishes a completed order for downstream fulfilment
	PublishOrderCompleted(ctx context.Context, event *OrderCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
