package costing

import (
	"math"

	"solari_planner/internal/domain/catalog"
	"solari_planner/internal/domain/entities"
)

// Planned cost calculator. Pure: no I/O, no state, identical inputs give
// identical breakdowns. Callers validate the system size at the boundary;
// the calculator assumes systemSizeKwp > 0.

// PanelCount returns how many panels of the given wattage cover the
// requested size. Always rounds up, so the array may be sized by slightly
// more capacity than requested, never less.
func PanelCount(systemSizeKwp float64, panelWattage int) int {
	return int(math.Ceil(systemSizeKwp * 1000 / float64(panelWattage)))
}

// PlannedCosts derives the complete eight-category breakdown for a system
// size and budget tier:
//
//   - panels: recommended panel count × unit price
//   - inverter: recommended inverter unit price
//   - mounting/cabling/protections/labor/design: tier rate × size
//   - permits: flat tier fee, independent of size
//
// Every amount is rounded to whole USD.
func PlannedCosts(systemSizeKwp float64, tier entities.BudgetTier) entities.CostBreakdown {
	panel := catalog.RecommendPanel(tier)
	inverter := catalog.RecommendInverter(tier, systemSizeKwp)
	rates := catalog.RatesFor(tier)

	count := PanelCount(systemSizeKwp, panel.Wattage)

	return entities.CostBreakdown{
		Panels:      roundUSD(float64(count) * panel.PriceUSD),
		Inverter:    roundUSD(inverter.PriceUSD),
		Mounting:    roundUSD(rates.MountingPerKwp * systemSizeKwp),
		Cabling:     roundUSD(rates.CablingPerKwp * systemSizeKwp),
		Protections: roundUSD(rates.ProtectionsPerKwp * systemSizeKwp),
		Labor:       roundUSD(rates.LaborPerKwp * systemSizeKwp),
		Design:      roundUSD(rates.DesignPerKwp * systemSizeKwp),
		Permits:     rates.PermitsFlatUSD,
	}
}

func roundUSD(v float64) int64 {
	return int64(math.Round(v))
}
