package catalog

import (
	"testing"

	"solari_planner/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendPanel_PicksHighestEfficiencyPerTier(t *testing.T) {
	cases := map[entities.BudgetTier]string{
		entities.BudgetTierEconomy:  "luxen-550",
		entities.BudgetTierStandard: "trina-550",
		entities.BudgetTierPremium:  "longi-580",
	}
	for tier, wantID := range cases {
		panel := RecommendPanel(tier)
		assert.Equal(t, wantID, panel.ID, "tier %s", tier)
		assert.Equal(t, tier, panel.Tier)
	}
}

func TestRecommendInverter_SmallestAdequateUnit(t *testing.T) {
	// 5 kWp with 15% undersizing headroom needs >= 4.25 kW.
	inv := RecommendInverter(entities.BudgetTierStandard, 5)
	assert.Equal(t, "solis-5k", inv.ID)

	// 10 kWp standard needs >= 8.5 kW: goodwe-8k is too small.
	inv = RecommendInverter(entities.BudgetTierStandard, 10)
	assert.Equal(t, "goodwe-15k", inv.ID)

	// Exactly at the headroom boundary still qualifies.
	inv = RecommendInverter(entities.BudgetTierEconomy, 3.0/0.85)
	assert.Equal(t, "growatt-3k", inv.ID)
}

func TestRecommendInverter_TieBrokenByCatalogOrder(t *testing.T) {
	// Premium has two 5 kW units; fronius-5k precedes huawei-5k in the
	// catalog and must win the tie.
	inv := RecommendInverter(entities.BudgetTierPremium, 5)
	assert.Equal(t, "fronius-5k", inv.ID)
}

func TestRecommendInverter_FallsBackToLargestOfTier(t *testing.T) {
	// Economy tops out at 10 kW; an oversized request gets the largest
	// unit rather than failing.
	inv := RecommendInverter(entities.BudgetTierEconomy, 100)
	assert.Equal(t, "growatt-10k", inv.ID)
}

func TestRecommendations_TotalOverValidDomain(t *testing.T) {
	for _, tier := range entities.BudgetTiers() {
		panel := RecommendPanel(tier)
		require.Greater(t, panel.Wattage, 0)
		require.GreaterOrEqual(t, panel.PriceUSD, 0.0)

		for _, size := range []float64{1, 2.5, 5, 50, 499.5, 500} {
			inv := RecommendInverter(tier, size)
			require.NotEmpty(t, inv.ID, "tier %s size %v", tier, size)
			require.GreaterOrEqual(t, inv.PriceUSD, 0.0)
		}
	}
}

func TestRatesFor_KnownTierValues(t *testing.T) {
	rates := RatesFor(entities.BudgetTierStandard)
	assert.Equal(t, 100.0, rates.MountingPerKwp)
	assert.Equal(t, 300.0, rates.LaborPerKwp)
	assert.Equal(t, int64(350), rates.PermitsFlatUSD)

	for _, tier := range entities.BudgetTiers() {
		rates := RatesFor(tier)
		assert.GreaterOrEqual(t, rates.MountingPerKwp, 0.0)
		assert.GreaterOrEqual(t, rates.CablingPerKwp, 0.0)
		assert.GreaterOrEqual(t, rates.ProtectionsPerKwp, 0.0)
		assert.GreaterOrEqual(t, rates.LaborPerKwp, 0.0)
		assert.GreaterOrEqual(t, rates.DesignPerKwp, 0.0)
		assert.GreaterOrEqual(t, rates.PermitsFlatUSD, int64(0))
	}
}

func TestProvinceByID(t *testing.T) {
	p, ok := ProvinceByID("cordoba")
	require.True(t, ok)
	assert.Equal(t, "Córdoba", p.Name)

	_, ok = ProvinceByID("atlantis")
	assert.False(t, ok)

	assert.NotEmpty(t, Provinces())
}
