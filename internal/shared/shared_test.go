package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(19.99, "usd")
	require.NoError(t, err)
	assert.Equal(t, 19.99, m.Amount())
	assert.Equal(t, "USD", m.Currency())

	other, err := NewMoney(19.99, "USD")
	require.NoError(t, err)
	assert.True(t, m.Equals(other))

	for _, tc := range []struct {
		name     string
		amount   float64
		currency string
	}{
		{"zero amount", 0, "USD"},
		{"negative amount", -5, "USD"},
		{"short currency", 10, "US"},
		{"long currency", 10, "USDA"},
		{"digits in currency", 10, "U5D"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMoney(tc.amount, tc.currency)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewBillingCycle(t *testing.T) {
	cycle, err := NewBillingCycle(CycleUnitMonth, 1)
	require.NoError(t, err)
	assert.Equal(t, CycleUnitMonth, cycle.Unit())
	assert.Equal(t, 1, cycle.Interval())

	_, err = NewBillingCycle(CycleUnitMonth, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBillingCycle(CycleUnit("fortnight"), 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPeriodEnd(t *testing.T) {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		unit     CycleUnit
		interval int
		want     time.Time
	}{
		{CycleUnitDay, 1, time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)},
		{CycleUnitDay, 30, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)},
		{CycleUnitWeek, 2, time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC)},
		{CycleUnitMonth, 1, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)},
		{CycleUnitMonth, 12, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{CycleUnitYear, 1, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)},
	} {
		cycle, err := NewBillingCycle(tc.unit, tc.interval)
		require.NoError(t, err)
		assert.Equal(t, tc.want, cycle.PeriodEnd(start))
	}
}

func TestPeriodEndAlwaysAfterStart(t *testing.T) {
	starts := []time.Time{
		time.Date(2024, time.January, 31, 12, 30, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	units := []CycleUnit{CycleUnitDay, CycleUnitWeek, CycleUnitMonth, CycleUnitYear}

	for _, start := range starts {
		for _, unit := range units {
			for _, interval := range []int{1, 2, 7, 13} {
				cycle, err := NewBillingCycle(unit, interval)
				require.NoError(t, err)

				end := cycle.PeriodEnd(start)
				assert.True(t, end.After(start), "unit=%s interval=%d start=%s end=%s", unit, interval, start, end)
				assert.Equal(t, end, cycle.PeriodEnd(start), "PeriodEnd must be deterministic")
			}
		}
	}
}

func TestPeriodEndMonthRollover(t *testing.T) {
	cycle, err := NewBillingCycle(CycleUnitMonth, 1)
	require.NoError(t, err)

	// Jan 31 + 1 month normalizes past February's end.
	start := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC), cycle.PeriodEnd(start))
}

func TestNewEmailAddress(t *testing.T) {
	email, err := NewEmailAddress("  Jane.Doe@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", email.String())

	for _, raw := range []string{"", "nope", "a@b", "a b@c.d", "@example.com"} {
		_, err := NewEmailAddress(raw)
		assert.ErrorIs(t, err, ErrValidation, "raw=%q", raw)
	}
}

func TestNewPersonName(t *testing.T) {
	name, err := NewPersonName("  Ada Lovelace ")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name.String())

	_, err = NewPersonName(" ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPersonName("A")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIdentifiers(t *testing.T) {
	id, err := NewSubscriptionID(" sub-1 ")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", id.String())

	same, err := NewSubscriptionID("sub-1")
	require.NoError(t, err)
	assert.Equal(t, id, same)

	_, err = NewUserID("")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewPlanID("   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorTaxonomy(t *testing.T) {
	vErr := NewValidationError("amount", "must be a positive number")
	assert.ErrorIs(t, vErr, ErrValidation)
	assert.NotErrorIs(t, vErr, ErrInvalidTransition)

	tErr := NewTransitionError("subscription", "cancelled", "renew")
	assert.ErrorIs(t, tErr, ErrInvalidTransition)
	assert.NotErrorIs(t, tErr, ErrValidation)

	var typed *TransitionError
	require.True(t, errors.As(tErr, &typed))
	assert.Equal(t, "cancelled", typed.From)
}
