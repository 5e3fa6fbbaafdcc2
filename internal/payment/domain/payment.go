// Package domain contains the Payment entity: the record of a single charge
// attempt against a subscription. Payments start pending and settle exactly
// once, to completed or failed.
package domain

import (
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

// Status is the closed set of payment settlement states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusCompleted, StatusFailed:
		return Status(value), nil
	default:
		return "", shared.NewValidationError("status", "must be one of pending, completed, failed")
	}
}

// Payment is an immutable value; settlement operations return the next state.
// A failed payment can never complete and a completed payment can never fail.
type Payment struct {
	id             shared.PaymentID
	subscriptionID shared.SubscriptionID
	amount         shared.Money
	status         Status
	createdAt      time.Time
	processedAt    *time.Time
}

func New(id shared.PaymentID, subscriptionID shared.SubscriptionID, amount shared.Money, now time.Time) Payment {
	return Payment{
		id:             id,
		subscriptionID: subscriptionID,
		amount:         amount,
		status:         StatusPending,
		createdAt:      now,
	}
}

func (p Payment) ID() shared.PaymentID                  { return p.id }
func (p Payment) SubscriptionID() shared.SubscriptionID { return p.subscriptionID }
func (p Payment) Amount() shared.Money                  { return p.amount }
func (p Payment) Status() Status                        { return p.status }
func (p Payment) CreatedAt() time.Time                  { return p.createdAt }
func (p Payment) ProcessedAt() *time.Time               { return p.processedAt }

func (p Payment) IsPending() bool   { return p.status == StatusPending }
func (p Payment) IsCompleted() bool { return p.status == StatusCompleted }
func (p Payment) IsFailed() bool    { return p.status == StatusFailed }

// MarkCompleted settles the payment. Completing an already completed payment
// is a no-op and keeps the original processedAt.
func (p Payment) MarkCompleted(processedAt time.Time) (Payment, error) {
	if p.IsCompleted() {
		return p, nil
	}
	if p.IsFailed() {
		return Payment{}, shared.NewTransitionError("payment", string(p.status), "complete")
	}

	p.status = StatusCompleted
	p.processedAt = &processedAt
	return p, nil
}

// MarkFailed settles the payment as failed. Failing an already failed
// payment is a no-op.
func (p Payment) MarkFailed() (Payment, error) {
	if p.IsCompleted() {
		return Payment{}, shared.NewTransitionError("payment", string(p.status), "fail")
	}

	p.status = StatusFailed
	return p, nil
}
