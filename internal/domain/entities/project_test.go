package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostBreakdown_TotalMatchesItemizedSum(t *testing.T) {
	b := CostBreakdown{
		Panels:      2400,
		Inverter:    850,
		Mounting:    500,
		Cabling:     250,
		Protections: 300,
		Labor:       1500,
		Design:      200,
		Permits:     350,
	}

	var sum int64
	for _, c := range CostCategories() {
		sum += b.Get(c)
	}
	assert.Equal(t, sum, b.Total())
	assert.Equal(t, int64(6350), b.Total())
}

func TestCostBreakdown_MapRoundTrip(t *testing.T) {
	b := CostBreakdown{Panels: 1, Inverter: 2, Mounting: 3, Cabling: 4, Protections: 5, Labor: 6, Design: 7, Permits: 8}
	assert.Equal(t, b, BreakdownFromMap(b.ToMap()))
	assert.Len(t, b.ToMap(), 8)
}

func TestProject_VarianceSignConvention(t *testing.T) {
	p := Project{PlannedCosts: CostBreakdown{Labor: 1000}}

	_, ok := p.Variance(CostCategoryLabor)
	assert.False(t, ok, "variance undefined before any actual is recorded")

	p.SetActual(CostCategoryLabor, 900)
	v, ok := p.Variance(CostCategoryLabor)
	require.True(t, ok)
	assert.Equal(t, int64(-100), v, "under budget is negative (favorable)")

	p.SetActual(CostCategoryLabor, 1200)
	v, ok = p.Variance(CostCategoryLabor)
	require.True(t, ok)
	assert.Equal(t, int64(200), v, "over budget is positive (unfavorable)")

	p.SetActual(CostCategoryLabor, 1000)
	v, ok = p.Variance(CostCategoryLabor)
	require.True(t, ok)
	assert.Equal(t, int64(0), v, "exactly on budget is zero, still defined")

	p.ClearActual(CostCategoryLabor)
	_, ok = p.Variance(CostCategoryLabor)
	assert.False(t, ok, "clearing returns the category to undefined")
}

func TestProject_ActualEntriesAreIndependent(t *testing.T) {
	p := Project{PlannedCosts: CostBreakdown{Panels: 100, Labor: 200}}

	p.SetActual(CostCategoryPanels, 90)
	p.SetActual(CostCategoryLabor, 250)
	p.ClearActual(CostCategoryPanels)

	_, ok := p.Variance(CostCategoryPanels)
	assert.False(t, ok)
	v, ok := p.Variance(CostCategoryLabor)
	require.True(t, ok)
	assert.Equal(t, int64(50), v)
}

func TestProject_HasAnyActualDistinguishesZeroFromUnset(t *testing.T) {
	p := Project{PlannedCosts: CostBreakdown{Permits: 350}}

	assert.False(t, p.HasAnyActual())
	assert.Equal(t, int64(0), p.TotalActual())
	_, ok := p.TotalVariance()
	assert.False(t, ok, "total variance undefined with nothing recorded")

	p.SetActual(CostCategoryPermits, 0)

	assert.True(t, p.HasAnyActual(), "a recorded zero still counts as recorded")
	assert.Equal(t, int64(0), p.TotalActual())
	v, ok := p.TotalVariance()
	require.True(t, ok)
	assert.Equal(t, int64(-350), v)
}

func TestProject_TotalVarianceUsesFullPlannedTotal(t *testing.T) {
	p := Project{PlannedCosts: CostBreakdown{Panels: 1000, Labor: 500}}
	p.SetActual(CostCategoryPanels, 1000)

	// Unset labor contributes zero actual but its planned amount still
	// counts against the total.
	v, ok := p.TotalVariance()
	require.True(t, ok)
	assert.Equal(t, int64(-500), v)
}

func TestProject_CloneDetachesActuals(t *testing.T) {
	p := Project{PlannedCosts: CostBreakdown{Labor: 100}}
	p.SetActual(CostCategoryLabor, 80)

	clone := p.Clone()
	clone.SetActual(CostCategoryLabor, 999)
	clone.SetActual(CostCategoryDesign, 1)

	v, ok := p.Variance(CostCategoryLabor)
	require.True(t, ok)
	assert.Equal(t, int64(-20), v)
	_, ok = p.Variance(CostCategoryDesign)
	assert.False(t, ok)
}

func TestEnums_Valid(t *testing.T) {
	for _, c := range CostCategories() {
		assert.True(t, c.Valid())
	}
	assert.False(t, CostCategory("shipping").Valid())

	for _, tier := range BudgetTiers() {
		assert.True(t, tier.Valid())
	}
	assert.False(t, BudgetTier("luxury").Valid())

	for _, s := range ProjectStatuses() {
		assert.True(t, s.Valid())
	}
	assert.False(t, ProjectStatus("archived").Valid())
}
