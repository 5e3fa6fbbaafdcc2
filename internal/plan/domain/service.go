package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("plan_not_found")
	ErrInactive = errors.New("plan_inactive")
)

type CreatePlanRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CycleUnit     string  `json:"billing_cycle_unit"`
	CycleInterval int     `json:"billing_cycle_interval,omitempty"`
}

type UpdatePlanDetailsRequest struct {
	PlanID      string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdatePlanPriceRequest struct {
	PlanID   string  `json:"-"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type TogglePlanStatusRequest struct {
	PlanID string `json:"-"`
	Active bool   `json:"active"`
}

type Response struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CycleUnit     string    `json:"billing_cycle_unit"`
	CycleInterval int       `json:"billing_cycle_interval"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Service interface {
	Create(context.Context, CreatePlanRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(context.Context) ([]Response, error)
	UpdateDetails(context.Context, UpdatePlanDetailsRequest) (Response, error)
	UpdatePrice(context.Context, UpdatePlanPriceRequest) (Response, error)
	ToggleStatus(context.Context, TogglePlanStatusRequest) (Response, error)
}
