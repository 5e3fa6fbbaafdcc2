package domain

import (
	"testing"
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicPlan(t *testing.T) Plan {
	t.Helper()

	id, err := shared.NewPlanID("plan-1")
	require.NoError(t, err)
	price, err := shared.NewMoney(9.99, "USD")
	require.NoError(t, err)
	cycle, err := shared.NewBillingCycle(shared.CycleUnitMonth, 1)
	require.NoError(t, err)

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	plan, err := New(id, "  Starter  ", "  entry tier  ", price, cycle, now)
	require.NoError(t, err)
	return plan
}

func TestNewPlan(t *testing.T) {
	plan := basicPlan(t)

	assert.Equal(t, "Starter", plan.Name())
	assert.Equal(t, "entry tier", plan.Description())
	assert.True(t, plan.IsActive())
	assert.Equal(t, plan.CreatedAt(), plan.UpdatedAt())
}

func TestNewPlanEmptyName(t *testing.T) {
	id, _ := shared.NewPlanID("plan-1")
	price, _ := shared.NewMoney(9.99, "USD")
	cycle, _ := shared.NewBillingCycle(shared.CycleUnitMonth, 1)

	_, err := New(id, "   ", "", price, cycle, time.Now().UTC())
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestRename(t *testing.T) {
	plan := basicPlan(t)
	later := plan.UpdatedAt().Add(time.Hour)

	renamed, err := plan.Rename("Pro", later)
	require.NoError(t, err)
	assert.Equal(t, "Pro", renamed.Name())
	assert.Equal(t, later, renamed.UpdatedAt())
	assert.Equal(t, plan.CreatedAt(), renamed.CreatedAt())

	_, err = plan.Rename("  ", later)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateDescriptionEmptyBecomesAbsent(t *testing.T) {
	plan := basicPlan(t)
	later := plan.UpdatedAt().Add(time.Hour)

	updated := plan.UpdateDescription("   ", later)
	assert.Equal(t, "", updated.Description())
	assert.Nil(t, updated.Record().Description)
}

func TestActivateDeactivateNoOp(t *testing.T) {
	plan := basicPlan(t)
	later := plan.UpdatedAt().Add(time.Hour)

	// Already active: no state change, no timestamp bump.
	same := plan.Activate(later)
	assert.Equal(t, plan.UpdatedAt(), same.UpdatedAt())

	deactivated := plan.Deactivate(later)
	assert.False(t, deactivated.IsActive())
	assert.Equal(t, later, deactivated.UpdatedAt())

	again := deactivated.Deactivate(later.Add(time.Hour))
	assert.Equal(t, later, again.UpdatedAt())
}

func TestUpdatePrice(t *testing.T) {
	plan := basicPlan(t)
	later := plan.UpdatedAt().Add(time.Hour)

	price, err := shared.NewMoney(19.99, "eur")
	require.NoError(t, err)

	repriced := plan.UpdatePrice(price, later)
	assert.Equal(t, 19.99, repriced.Price().Amount())
	assert.Equal(t, "EUR", repriced.Price().Currency())
	assert.Equal(t, later, repriced.UpdatedAt())
}

func TestRecordRoundTrip(t *testing.T) {
	plan := basicPlan(t)

	restored, err := FromRecord(plan.Record())
	require.NoError(t, err)
	assert.Equal(t, plan, restored)

	// Absent description survives the round trip too.
	bare := plan.UpdateDescription("", plan.UpdatedAt())
	restored, err = FromRecord(bare.Record())
	require.NoError(t, err)
	assert.Equal(t, bare, restored)
}

func TestFromRecordRejectsBadPrimitives(t *testing.T) {
	rec := basicPlan(t).Record()

	bad := rec
	bad.Amount = -1
	_, err := FromRecord(bad)
	assert.ErrorIs(t, err, shared.ErrValidation)

	bad = rec
	bad.CycleUnit = "quarter"
	_, err = FromRecord(bad)
	assert.ErrorIs(t, err, shared.ErrValidation)

	bad = rec
	bad.ID = ""
	_, err = FromRecord(bad)
	assert.ErrorIs(t, err, shared.ErrValidation)
}
