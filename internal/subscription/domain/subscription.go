// Package domain contains the Subscription lifecycle engine. A subscription
// snapshots its plan at creation time so later plan edits never move an
// existing billing window; only ChangePlan adopts a new snapshot.
package domain

import (
	"time"

	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"github.com/smallbiznis/subhub/internal/shared"
)

// Status is the closed set of subscription lifecycle states.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusActive, StatusPaused, StatusCancelled:
		return Status(value), nil
	default:
		return "", shared.NewValidationError("status", "must be one of active, paused, cancelled")
	}
}

// Subscription is an immutable value. Lifecycle operations return the next
// state or an error; the receiver is never mutated, so a rejected operation
// leaves the caller's copy untouched.
//
// cancelled is terminal. Pausing freezes the billing window without moving
// it; Renew reactivates a paused subscription as a side effect of opening
// the next period.
type Subscription struct {
	id        shared.SubscriptionID
	userID    shared.UserID
	plan      plandomain.Plan
	status    Status
	startDate time.Time
	endDate   time.Time
	createdAt time.Time
	updatedAt time.Time
}

// New opens the first billing window. A zero start means "starts now". The
// window end comes from the snapshotted plan's billing cycle.
func New(id shared.SubscriptionID, userID shared.UserID, plan plandomain.Plan, start, now time.Time) (Subscription, error) {
	if start.IsZero() {
		start = now
	}

	end := plan.BillingCycle().PeriodEnd(start)
	if err := ensureWindow(start, end); err != nil {
		return Subscription{}, err
	}

	return Subscription{
		id:        id,
		userID:    userID,
		plan:      plan,
		status:    StatusActive,
		startDate: start,
		endDate:   end,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (s Subscription) ID() shared.SubscriptionID { return s.id }
func (s Subscription) UserID() shared.UserID     { return s.userID }
func (s Subscription) Plan() plandomain.Plan     { return s.plan }
func (s Subscription) Status() Status            { return s.status }
func (s Subscription) StartDate() time.Time      { return s.startDate }
func (s Subscription) EndDate() time.Time        { return s.endDate }
func (s Subscription) CreatedAt() time.Time      { return s.createdAt }
func (s Subscription) UpdatedAt() time.Time      { return s.updatedAt }

func (s Subscription) IsActive() bool    { return s.status == StatusActive }
func (s Subscription) IsPaused() bool    { return s.status == StatusPaused }
func (s Subscription) IsCancelled() bool { return s.status == StatusCancelled }

// Renew rolls the window forward one billing period. A zero effective date
// renews from the current window end, keeping consecutive periods contiguous.
// The status is forced back to active.
func (s Subscription) Renew(effective, now time.Time) (Subscription, error) {
	if s.IsCancelled() {
		return Subscription{}, shared.NewTransitionError("subscription", string(s.status), "renew")
	}

	start := effective
	if start.IsZero() {
		start = s.endDate
	}
	if start.Before(s.startDate) {
		return Subscription{}, shared.NewValidationError("effective_date", "renewal date cannot be before the current start date")
	}

	end := s.plan.BillingCycle().PeriodEnd(start)
	if err := ensureWindow(start, end); err != nil {
		return Subscription{}, err
	}

	s.status = StatusActive
	s.startDate = start
	s.endDate = end
	s.updatedAt = now
	return s, nil
}

// Pause freezes the subscription without touching the billing window.
// Pausing a paused subscription is a no-op.
func (s Subscription) Pause(now time.Time) (Subscription, error) {
	if s.IsCancelled() {
		return Subscription{}, shared.NewTransitionError("subscription", string(s.status), "pause")
	}
	if s.IsPaused() {
		return s, nil
	}

	s.status = StatusPaused
	s.updatedAt = now
	return s, nil
}

// Resume reactivates a paused subscription. The billing window is untouched.
func (s Subscription) Resume(now time.Time) (Subscription, error) {
	if s.IsCancelled() {
		return Subscription{}, shared.NewTransitionError("subscription", string(s.status), "resume")
	}
	if s.IsActive() {
		return s, nil
	}

	s.status = StatusActive
	s.updatedAt = now
	return s, nil
}

// Cancel ends the subscription, truncating the window to the effective date.
// A zero effective date cancels immediately. Cancelling an already cancelled
// subscription is a no-op and keeps the original end date.
func (s Subscription) Cancel(effective, now time.Time) (Subscription, error) {
	if s.IsCancelled() {
		return s, nil
	}

	if effective.IsZero() {
		effective = now
	}
	if effective.Before(s.startDate) {
		return Subscription{}, shared.NewValidationError("effective_date", "cancellation date cannot be before the start date")
	}

	s.status = StatusCancelled
	s.endDate = effective
	s.updatedAt = now
	return s, nil
}

// ChangePlan adopts a new plan snapshot and reopens the window from the
// effective date under the new billing cycle. No proration. A zero effective
// date changes from the current start date.
func (s Subscription) ChangePlan(plan plandomain.Plan, effective, now time.Time) (Subscription, error) {
	if s.IsCancelled() {
		return Subscription{}, shared.NewTransitionError("subscription", string(s.status), "change plan on")
	}

	start := effective
	if start.IsZero() {
		start = s.startDate
	}
	if start.Before(s.startDate) {
		return Subscription{}, shared.NewValidationError("effective_date", "plan change date cannot be before the current start date")
	}

	end := plan.BillingCycle().PeriodEnd(start)
	if err := ensureWindow(start, end); err != nil {
		return Subscription{}, err
	}

	s.plan = plan
	s.startDate = start
	s.endDate = end
	s.updatedAt = now
	return s, nil
}

func ensureWindow(start, end time.Time) error {
	if !end.After(start) {
		return shared.NewValidationError("end_date", "must be after the start date")
	}
	return nil
}
