package shared

import "strings"

// Typed identifiers wrap opaque non-empty strings so a plan id can never be
// passed where a subscription id is expected. Equality is value equality.

type UserID struct{ value string }

func NewUserID(value string) (UserID, error) {
	v, err := trimID("user_id", value)
	if err != nil {
		return UserID{}, err
	}
	return UserID{value: v}, nil
}

func (id UserID) String() string { return id.value }
func (id UserID) IsZero() bool   { return id.value == "" }

type PlanID struct{ value string }

func NewPlanID(value string) (PlanID, error) {
	v, err := trimID("plan_id", value)
	if err != nil {
		return PlanID{}, err
	}
	return PlanID{value: v}, nil
}

func (id PlanID) String() string { return id.value }
func (id PlanID) IsZero() bool   { return id.value == "" }

type SubscriptionID struct{ value string }

func NewSubscriptionID(value string) (SubscriptionID, error) {
	v, err := trimID("subscription_id", value)
	if err != nil {
		return SubscriptionID{}, err
	}
	return SubscriptionID{value: v}, nil
}

func (id SubscriptionID) String() string { return id.value }
func (id SubscriptionID) IsZero() bool   { return id.value == "" }

type PaymentID struct{ value string }

func NewPaymentID(value string) (PaymentID, error) {
	v, err := trimID("payment_id", value)
	if err != nil {
		return PaymentID{}, err
	}
	return PaymentID{value: v}, nil
}

func (id PaymentID) String() string { return id.value }
func (id PaymentID) IsZero() bool   { return id.value == "" }

func trimID(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError(field, "cannot be empty")
	}
	return trimmed, nil
}
