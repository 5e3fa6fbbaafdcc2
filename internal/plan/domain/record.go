package domain

import (
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

// Record is the flat primitive snapshot of a Plan. FromRecord(p.Record())
// reconstructs the plan field-for-field.
type Record struct {
	ID            string    `gorm:"primaryKey"`
	Name          string    `gorm:"type:text;not null"`
	Description   *string   `gorm:"type:text"`
	Amount        float64   `gorm:"type:numeric;not null"`
	Currency      string    `gorm:"type:text;not null"`
	CycleUnit     string    `gorm:"type:text;not null"`
	CycleInterval int       `gorm:"not null;default:1"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "plans" }

func (p Plan) Record() Record {
	rec := Record{
		ID:            p.id.String(),
		Name:          p.name,
		Amount:        p.price.Amount(),
		Currency:      p.price.Currency(),
		CycleUnit:     string(p.billingCycle.Unit()),
		CycleInterval: p.billingCycle.Interval(),
		IsActive:      p.isActive,
		CreatedAt:     p.createdAt,
		UpdatedAt:     p.updatedAt,
	}
	if p.description != "" {
		description := p.description
		rec.Description = &description
	}
	return rec
}

func FromRecord(rec Record) (Plan, error) {
	id, err := shared.NewPlanID(rec.ID)
	if err != nil {
		return Plan{}, err
	}

	name, err := ensureName(rec.Name)
	if err != nil {
		return Plan{}, err
	}

	price, err := shared.NewMoney(rec.Amount, rec.Currency)
	if err != nil {
		return Plan{}, err
	}

	unit, err := shared.ParseCycleUnit(rec.CycleUnit)
	if err != nil {
		return Plan{}, err
	}
	cycle, err := shared.NewBillingCycle(unit, rec.CycleInterval)
	if err != nil {
		return Plan{}, err
	}

	var description string
	if rec.Description != nil {
		description = *rec.Description
	}

	return Plan{
		id:           id,
		name:         name,
		description:  description,
		price:        price,
		billingCycle: cycle,
		isActive:     rec.IsActive,
		createdAt:    rec.CreatedAt,
		updatedAt:    rec.UpdatedAt,
	}, nil
}
