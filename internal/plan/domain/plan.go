// Package domain contains the Plan entity: a priced offering with a billing
// cycle. A plan is copied by value into subscriptions at creation time, so
// later edits here never touch in-flight agreements.
package domain

import (
	"strings"
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

// Plan is an immutable value; every mutation returns a new validated state
// and refreshes updatedAt. No-op mutations return the receiver unchanged.
type Plan struct {
	id           shared.PlanID
	name         string
	description  string
	price        shared.Money
	billingCycle shared.BillingCycle
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func New(id shared.PlanID, name, description string, price shared.Money, cycle shared.BillingCycle, now time.Time) (Plan, error) {
	cleanName, err := ensureName(name)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		id:           id,
		name:         cleanName,
		description:  strings.TrimSpace(description),
		price:        price,
		billingCycle: cycle,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (p Plan) ID() shared.PlanID                 { return p.id }
func (p Plan) Name() string                      { return p.name }
func (p Plan) Description() string               { return p.description }
func (p Plan) Price() shared.Money               { return p.price }
func (p Plan) BillingCycle() shared.BillingCycle { return p.billingCycle }
func (p Plan) IsActive() bool                    { return p.isActive }
func (p Plan) CreatedAt() time.Time              { return p.createdAt }
func (p Plan) UpdatedAt() time.Time              { return p.updatedAt }

func (p Plan) Rename(name string, now time.Time) (Plan, error) {
	cleanName, err := ensureName(name)
	if err != nil {
		return Plan{}, err
	}

	p.name = cleanName
	p.updatedAt = now
	return p, nil
}

func (p Plan) UpdateDescription(description string, now time.Time) Plan {
	p.description = strings.TrimSpace(description)
	p.updatedAt = now
	return p
}

func (p Plan) UpdatePrice(price shared.Money, now time.Time) Plan {
	p.price = price
	p.updatedAt = now
	return p
}

// Activate is a no-op when the plan is already active; the timestamp is only
// bumped on a real state change.
func (p Plan) Activate(now time.Time) Plan {
	if p.isActive {
		return p
	}
	p.isActive = true
	p.updatedAt = now
	return p
}

func (p Plan) Deactivate(now time.Time) Plan {
	if !p.isActive {
		return p
	}
	p.isActive = false
	p.updatedAt = now
	return p
}

func ensureName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shared.NewValidationError("plan_name", "cannot be empty")
	}
	return trimmed, nil
}
