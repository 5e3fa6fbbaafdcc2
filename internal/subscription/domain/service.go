package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("subscription_not_found")
	ErrNotActive = errors.New("subscription_not_active")
)

type CreateSubscriptionRequest struct {
	UserID    string     `json:"user_id"`
	PlanID    string     `json:"plan_id"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

type RenewSubscriptionRequest struct {
	SubscriptionID string     `json:"-"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
}

type CancelSubscriptionRequest struct {
	SubscriptionID string     `json:"-"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
}

type ChangePlanRequest struct {
	SubscriptionID string     `json:"-"`
	PlanID         string     `json:"plan_id"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
}

type ListSubscriptionsRequest struct {
	UserID string `form:"user_id"`
	Status string `form:"status"`
}

type Response struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlanID    string    `json:"plan_id"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service interface {
	Create(context.Context, CreateSubscriptionRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(context.Context, ListSubscriptionsRequest) ([]Response, error)
	Renew(context.Context, RenewSubscriptionRequest) (Response, error)
	Pause(ctx context.Context, id string) (Response, error)
	Resume(ctx context.Context, id string) (Response, error)
	Cancel(context.Context, CancelSubscriptionRequest) (Response, error)
	ChangePlan(context.Context, ChangePlanRequest) (Response, error)
}
