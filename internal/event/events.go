// Package event defines the domain facts emitted by subscription lifecycle
// operations and the publisher they are handed to. Delivery order and
// durability are the publisher's concern; services only emit.
package event

import (
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

const (
	TypeSubscriptionCreated   = "subscription.created"
	TypeSubscriptionRenewed   = "subscription.renewed"
	TypeSubscriptionCancelled = "subscription.cancelled"
	TypeSubscriptionResumed   = "subscription.resumed"
)

// Event is a domain fact with the subscription it concerns and when it happened.
type Event interface {
	EventType() string
	Subscription() shared.SubscriptionID
	OccurredAt() time.Time
}

type base struct {
	subscriptionID shared.SubscriptionID
	occurredAt     time.Time
}

func (b base) Subscription() shared.SubscriptionID { return b.subscriptionID }
func (b base) OccurredAt() time.Time               { return b.occurredAt }

type SubscriptionCreated struct {
	base
	UserID shared.UserID
	PlanID shared.PlanID
}

func NewSubscriptionCreated(id shared.SubscriptionID, userID shared.UserID, planID shared.PlanID, at time.Time) SubscriptionCreated {
	return SubscriptionCreated{
		base:   base{subscriptionID: id, occurredAt: at},
		UserID: userID,
		PlanID: planID,
	}
}

func (SubscriptionCreated) EventType() string { return TypeSubscriptionCreated }

type SubscriptionRenewed struct {
	base
}

func NewSubscriptionRenewed(id shared.SubscriptionID, at time.Time) SubscriptionRenewed {
	return SubscriptionRenewed{base: base{subscriptionID: id, occurredAt: at}}
}

func (SubscriptionRenewed) EventType() string { return TypeSubscriptionRenewed }

type SubscriptionCancelled struct {
	base
	EffectiveDate time.Time
}

func NewSubscriptionCancelled(id shared.SubscriptionID, effective, at time.Time) SubscriptionCancelled {
	return SubscriptionCancelled{
		base:          base{subscriptionID: id, occurredAt: at},
		EffectiveDate: effective,
	}
}

func (SubscriptionCancelled) EventType() string { return TypeSubscriptionCancelled }

type SubscriptionResumed struct {
	base
}

func NewSubscriptionResumed(id shared.SubscriptionID, at time.Time) SubscriptionResumed {
	return SubscriptionResumed{base: base{subscriptionID: id, occurredAt: at}}
}

func (SubscriptionResumed) EventType() string { return TypeSubscriptionResumed }
