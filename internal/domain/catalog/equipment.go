package catalog

import (
	"solari_planner/internal/domain/entities"
)

// Static solar equipment catalog for the Argentina market.
// Prices in USD, landed (import + logistics), IVA excluded.

// PanelSpec describes one catalog panel. One panel per tier is recommended
// for planning purposes; the rest are kept for quotation alternatives.
type PanelSpec struct {
	ID         string              `json:"id"`
	Brand      string              `json:"brand"`
	Model      string              `json:"model"`
	Wattage    int                 `json:"wattage"`
	Efficiency float64             `json:"efficiency"`
	Tier       entities.BudgetTier `json:"tier"`
	PriceUSD   float64             `json:"price_usd"`
}

// InverterSpec describes one catalog inverter.
type InverterSpec struct {
	ID       string              `json:"id"`
	Brand    string              `json:"brand"`
	Model    string              `json:"model"`
	PowerKw  float64             `json:"power_kw"`
	Phases   int                 `json:"phases"`
	Tier     entities.BudgetTier `json:"tier"`
	PriceUSD float64             `json:"price_usd"`
}

// InstallationRates holds the per-kWp balance-of-system rates and the flat
// permits fee for one budget tier.
type InstallationRates struct {
	MountingPerKwp    float64 `json:"mounting_per_kwp"`
	CablingPerKwp     float64 `json:"cabling_per_kwp"`
	ProtectionsPerKwp float64 `json:"protections_per_kwp"`
	LaborPerKwp       float64 `json:"labor_per_kwp"`
	DesignPerKwp      float64 `json:"design_per_kwp"`
	PermitsFlatUSD    int64   `json:"permits_flat_usd"`
}

var panels = []PanelSpec{
	{ID: "amerisolar-410", Brand: "Amerisolar", Model: "AS-7M144-HC 410W", Wattage: 410, Efficiency: 21.0, Tier: entities.BudgetTierEconomy, PriceUSD: 175},
	{ID: "luxen-550", Brand: "Luxen", Model: "LNVU-550M Mono", Wattage: 550, Efficiency: 21.3, Tier: entities.BudgetTierEconomy, PriceUSD: 229},
	{ID: "longi-505", Brand: "LONGi", Model: "Hi-MO 5m LR5-66HPH-505M", Wattage: 505, Efficiency: 21.7, Tier: entities.BudgetTierStandard, PriceUSD: 218},
	{ID: "trina-550", Brand: "Trina Solar", Model: "Vertex S+ TSM-NEG9R.28", Wattage: 550, Efficiency: 21.8, Tier: entities.BudgetTierStandard, PriceUSD: 240},
	{ID: "canadian-550", Brand: "Canadian Solar", Model: "HiKu7 CS7N-550MS", Wattage: 550, Efficiency: 21.6, Tier: entities.BudgetTierStandard, PriceUSD: 235},
	{ID: "longi-580", Brand: "LONGi", Model: "Hi-MO 6m LR5-72HTH-580M", Wattage: 580, Efficiency: 22.3, Tier: entities.BudgetTierPremium, PriceUSD: 253},
	{ID: "jinko-555", Brand: "JinkoSolar", Model: "Tiger Neo N-type JKM555N", Wattage: 555, Efficiency: 22.07, Tier: entities.BudgetTierPremium, PriceUSD: 260},
}

var inverters = []InverterSpec{
	{ID: "growatt-3k", Brand: "Growatt", Model: "MIN 3000TL-X", PowerKw: 3, Phases: 1, Tier: entities.BudgetTierEconomy, PriceUSD: 580},
	{ID: "growatt-5k", Brand: "Growatt", Model: "MIN 5000TL-X", PowerKw: 5, Phases: 1, Tier: entities.BudgetTierEconomy, PriceUSD: 750},
	{ID: "growatt-8k", Brand: "Growatt", Model: "MOD 8000TL3-X", PowerKw: 8, Phases: 3, Tier: entities.BudgetTierEconomy, PriceUSD: 1100},
	{ID: "growatt-10k", Brand: "Growatt", Model: "MOD 10000TL3-X", PowerKw: 10, Phases: 3, Tier: entities.BudgetTierEconomy, PriceUSD: 1350},
	{ID: "solis-5k", Brand: "Solis", Model: "S6-GR1P5K", PowerKw: 5, Phases: 1, Tier: entities.BudgetTierStandard, PriceUSD: 850},
	{ID: "goodwe-8k", Brand: "GoodWe", Model: "GW8K-DT", PowerKw: 8, Phases: 3, Tier: entities.BudgetTierStandard, PriceUSD: 1200},
	{ID: "goodwe-15k", Brand: "GoodWe", Model: "GW15KT-DT", PowerKw: 15, Phases: 3, Tier: entities.BudgetTierStandard, PriceUSD: 1950},
	{ID: "solis-25k", Brand: "Solis", Model: "S5-GR3P25K", PowerKw: 25, Phases: 3, Tier: entities.BudgetTierStandard, PriceUSD: 2800},
	{ID: "fronius-5k", Brand: "Fronius", Model: "Primo GEN24 5.0", PowerKw: 5, Phases: 1, Tier: entities.BudgetTierPremium, PriceUSD: 1450},
	{ID: "fronius-8k", Brand: "Fronius", Model: "Symo GEN24 8.0 Plus", PowerKw: 8, Phases: 3, Tier: entities.BudgetTierPremium, PriceUSD: 2400},
	{ID: "huawei-5k", Brand: "Huawei", Model: "SUN2000-5KTL-L1", PowerKw: 5, Phases: 1, Tier: entities.BudgetTierPremium, PriceUSD: 1200},
	{ID: "huawei-10k", Brand: "Huawei", Model: "SUN2000-10KTL-M1", PowerKw: 10, Phases: 3, Tier: entities.BudgetTierPremium, PriceUSD: 1900},
	{ID: "huawei-30k", Brand: "Huawei", Model: "SUN2000-30KTL-M3", PowerKw: 30, Phases: 3, Tier: entities.BudgetTierPremium, PriceUSD: 3200},
}

// Target all-in cost: economy ~$1,400/kWp, standard ~$1,500/kWp,
// premium ~$1,750/kWp.
var installationRates = map[entities.BudgetTier]InstallationRates{
	entities.BudgetTierEconomy: {
		MountingPerKwp:    80,
		CablingPerKwp:     40,
		ProtectionsPerKwp: 50,
		LaborPerKwp:       250,
		DesignPerKwp:      30,
		PermitsFlatUSD:    300,
	},
	entities.BudgetTierStandard: {
		MountingPerKwp:    100,
		CablingPerKwp:     50,
		ProtectionsPerKwp: 60,
		LaborPerKwp:       300,
		DesignPerKwp:      40,
		PermitsFlatUSD:    350,
	},
	entities.BudgetTierPremium: {
		MountingPerKwp:    130,
		CablingPerKwp:     60,
		ProtectionsPerKwp: 75,
		LaborPerKwp:       380,
		DesignPerKwp:      55,
		PermitsFlatUSD:    450,
	},
}

// An inverter may be undersized relative to the array by up to 15%
// (DC/AC oversizing headroom common for string inverters).
const inverterSizingHeadroom = 0.85

// PanelsForTier returns the catalog panels of one tier, in catalog order.
func PanelsForTier(tier entities.BudgetTier) []PanelSpec {
	var out []PanelSpec
	for _, p := range panels {
		if p.Tier == tier {
			out = append(out, p)
		}
	}
	return out
}

// InvertersForTier returns the catalog inverters of one tier, in catalog
// order (ascending rated power within each tier).
func InvertersForTier(tier entities.BudgetTier) []InverterSpec {
	var out []InverterSpec
	for _, i := range inverters {
		if i.Tier == tier {
			out = append(out, i)
		}
	}
	return out
}

// RecommendPanel returns the highest-efficiency panel of the tier. Total
// over valid tiers: every tier has at least one catalog panel.
func RecommendPanel(tier entities.BudgetTier) PanelSpec {
	tierPanels := PanelsForTier(tier)
	best := tierPanels[0]
	for _, p := range tierPanels[1:] {
		if p.Efficiency > best.Efficiency {
			best = p
		}
	}
	return best
}

// RecommendInverter returns the smallest inverter of the tier rated for at
// least 85% of the requested system size. When no single unit qualifies it
// falls back to the largest unit of the tier. Catalog order breaks rated
// power ties, so the selection is deterministic.
func RecommendInverter(tier entities.BudgetTier, systemSizeKwp float64) InverterSpec {
	tierInverters := InvertersForTier(tier)

	var best *InverterSpec
	for i := range tierInverters {
		inv := &tierInverters[i]
		if inv.PowerKw < systemSizeKwp*inverterSizingHeadroom {
			continue
		}
		if best == nil || inv.PowerKw < best.PowerKw {
			best = inv
		}
	}
	if best != nil {
		return *best
	}

	largest := tierInverters[0]
	for _, inv := range tierInverters[1:] {
		if inv.PowerKw > largest.PowerKw {
			largest = inv
		}
	}
	return largest
}

// RatesFor returns the installation rates for a tier.
func RatesFor(tier entities.BudgetTier) InstallationRates {
	return installationRates[tier]
}
