package domain

import (
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

// Record is the flat primitive snapshot of a Payment.
type Record struct {
	ID             string     `gorm:"primaryKey"`
	SubscriptionID string     `gorm:"type:text;not null;index"`
	Amount         float64    `gorm:"type:numeric;not null"`
	Currency       string     `gorm:"type:text;not null"`
	Status         string     `gorm:"type:text;not null;index"`
	CreatedAt      time.Time  `gorm:"not null"`
	ProcessedAt    *time.Time
}

// TableName sets the database table name.
func (Record) TableName() string { return "payments" }

func (p Payment) Record() Record {
	rec := Record{
		ID:             p.id.String(),
		SubscriptionID: p.subscriptionID.String(),
		Amount:         p.amount.Amount(),
		Currency:       p.amount.Currency(),
		Status:         string(p.status),
		CreatedAt:      p.createdAt,
	}
	if p.processedAt != nil {
		processedAt := *p.processedAt
		rec.ProcessedAt = &processedAt
	}
	return rec
}

func FromRecord(rec Record) (Payment, error) {
	id, err := shared.NewPaymentID(rec.ID)
	if err != nil {
		return Payment{}, err
	}

	subscriptionID, err := shared.NewSubscriptionID(rec.SubscriptionID)
	if err != nil {
		return Payment{}, err
	}

	amount, err := shared.NewMoney(rec.Amount, rec.Currency)
	if err != nil {
		return Payment{}, err
	}

	status, err := ParseStatus(rec.Status)
	if err != nil {
		return Payment{}, err
	}

	payment := Payment{
		id:             id,
		subscriptionID: subscriptionID,
		amount:         amount,
		status:         status,
		createdAt:      rec.CreatedAt,
	}
	if rec.ProcessedAt != nil {
		processedAt := *rec.ProcessedAt
		payment.processedAt = &processedAt
	}
	return payment, nil
}
