package shared

import "time"

// CycleUnit is the calendar unit a billing cycle repeats on.
type CycleUnit string

const (
	CycleUnitDay   CycleUnit = "day"
	CycleUnitWeek  CycleUnit = "week"
	CycleUnitMonth CycleUnit = "month"
	CycleUnitYear  CycleUnit = "year"
)

func ParseCycleUnit(value string) (CycleUnit, error) {
	switch CycleUnit(value) {
	case CycleUnitDay, CycleUnitWeek, CycleUnitMonth, CycleUnitYear:
		return CycleUnit(value), nil
	default:
		return "", NewValidationError("billing_cycle_unit", "must be one of day, week, month, year")
	}
}

// BillingCycle is the unit+interval pair that defines a subscription's period
// length, e.g. "1 month" or "2 weeks".
type BillingCycle struct {
	unit     CycleUnit
	interval int
}

func NewBillingCycle(unit CycleUnit, interval int) (BillingCycle, error) {
	if _, err := ParseCycleUnit(string(unit)); err != nil {
		return BillingCycle{}, err
	}
	if interval < 1 {
		return BillingCycle{}, NewValidationError("billing_cycle_interval", "must be a positive integer")
	}

	return BillingCycle{unit: unit, interval: interval}, nil
}

func (c BillingCycle) Unit() CycleUnit {
	return c.unit
}

func (c BillingCycle) Interval() int {
	return c.interval
}

func (c BillingCycle) Equals(other BillingCycle) bool {
	return c == other
}

// PeriodEnd derives the end of a billing period starting at start. Month and
// year arithmetic is calendar-aware with stdlib rollover semantics, so
// Jan 31 + 1 month normalizes past the end of February.
func (c BillingCycle) PeriodEnd(start time.Time) time.Time {
	switch c.unit {
	case CycleUnitDay:
		return start.AddDate(0, 0, c.interval)
	case CycleUnitWeek:
		return start.AddDate(0, 0, c.interval*7)
	case CycleUnitMonth:
		return start.AddDate(0, c.interval, 0)
	case CycleUnitYear:
		return start.AddDate(c.interval, 0, 0)
	default:
		return start
	}
}
