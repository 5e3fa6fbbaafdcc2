package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

var (
	ErrNotFound       = errors.New("payment_not_found")
	ErrChargeDeclined = errors.New("charge_declined")
)

type Response struct {
	ID             string     `json:"id"`
	SubscriptionID string     `json:"subscription_id"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

// Service records every charge attempt as a payment row, settled completed
// or failed depending on the gateway outcome.
type Service interface {
	// Charge runs one charge attempt. The payment row is persisted in both
	// outcomes; ErrChargeDeclined is returned when the gateway refuses.
	Charge(ctx context.Context, subscriptionID shared.SubscriptionID, amount shared.Money) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	ListBySubscription(ctx context.Context, subscriptionID string) ([]Response, error)
}
