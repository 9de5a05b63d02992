package entities

import "time"

// CostCategory identifies one line of a project cost breakdown.
//
// The set is closed: every planned breakdown carries all eight categories,
// while actual spend is recorded per category as it happens. Order of the
// constants below is display order only.

type CostCategory string

const (
	CostCategoryPanels      CostCategory = "panels"
	CostCategoryInverter    CostCategory = "inverter"
	CostCategoryMounting    CostCategory = "mounting"
	CostCategoryCabling     CostCategory = "cabling"
	CostCategoryProtections CostCategory = "protections"
	CostCategoryLabor       CostCategory = "labor"
	CostCategoryDesign      CostCategory = "design"
	CostCategoryPermits     CostCategory = "permits"
)

// CostCategories returns all categories in display order.
func CostCategories() []CostCategory {
	return []CostCategory{
		CostCategoryPanels,
		CostCategoryInverter,
		CostCategoryMounting,
		CostCategoryCabling,
		CostCategoryProtections,
		CostCategoryLabor,
		CostCategoryDesign,
		CostCategoryPermits,
	}
}

func (c CostCategory) Valid() bool {
	switch c {
	case CostCategoryPanels, CostCategoryInverter, CostCategoryMounting,
		CostCategoryCabling, CostCategoryProtections, CostCategoryLabor,
		CostCategoryDesign, CostCategoryPermits:
		return true
	}
	return false
}

// BudgetTier drives both equipment selection and per-kWp cost rates.

type BudgetTier string

const (
	BudgetTierEconomy  BudgetTier = "economy"
	BudgetTierStandard BudgetTier = "standard"
	BudgetTierPremium  BudgetTier = "premium"
)

func BudgetTiers() []BudgetTier {
	return []BudgetTier{BudgetTierEconomy, BudgetTierStandard, BudgetTierPremium}
}

func (t BudgetTier) Valid() bool {
	switch t {
	case BudgetTierEconomy, BudgetTierStandard, BudgetTierPremium:
		return true
	}
	return false
}

// ProjectStatus labels a project's progress.
//
// This is a flat label, not a state machine: any status may be set from any
// other status. The UI offers all five at all times and the domain imposes
// no transition rules.

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusProposed   ProjectStatus = "proposed"
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusInstalling ProjectStatus = "installing"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusPlanning,
		ProjectStatusProposed,
		ProjectStatusApproved,
		ProjectStatusInstalling,
		ProjectStatusCompleted,
	}
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusProposed, ProjectStatusApproved,
		ProjectStatusInstalling, ProjectStatusCompleted:
		return true
	}
	return false
}

// CostBreakdown is a total mapping from every cost category to a whole-unit
// USD amount. Using a struct (rather than a map) makes totality structural:
// a breakdown cannot be missing a category.

type CostBreakdown struct {
	Panels      int64 `json:"panels"`
	Inverter    int64 `json:"inverter"`
	Mounting    int64 `json:"mounting"`
	Cabling     int64 `json:"cabling"`
	Protections int64 `json:"protections"`
	Labor       int64 `json:"labor"`
	Design      int64 `json:"design"`
	Permits     int64 `json:"permits"`
}

// Get returns the amount for a category; zero for an unknown category.
func (b CostBreakdown) Get(c CostCategory) int64 {
	switch c {
	case CostCategoryPanels:
		return b.Panels
	case CostCategoryInverter:
		return b.Inverter
	case CostCategoryMounting:
		return b.Mounting
	case CostCategoryCabling:
		return b.Cabling
	case CostCategoryProtections:
		return b.Protections
	case CostCategoryLabor:
		return b.Labor
	case CostCategoryDesign:
		return b.Design
	case CostCategoryPermits:
		return b.Permits
	}
	return 0
}

// Total sums all eight categories.
func (b CostBreakdown) Total() int64 {
	return b.Panels + b.Inverter + b.Mounting + b.Cabling +
		b.Protections + b.Labor + b.Design + b.Permits
}

// ToMap returns the breakdown keyed by category.
func (b CostBreakdown) ToMap() map[CostCategory]int64 {
	m := make(map[CostCategory]int64, 8)
	for _, c := range CostCategories() {
		m[c] = b.Get(c)
	}
	return m
}

// BreakdownFromMap rebuilds a CostBreakdown from a category map. Missing
// categories come back as zero; unknown keys are ignored.
func BreakdownFromMap(m map[CostCategory]int64) CostBreakdown {
	return CostBreakdown{
		Panels:      m[CostCategoryPanels],
		Inverter:    m[CostCategoryInverter],
		Mounting:    m[CostCategoryMounting],
		Cabling:     m[CostCategoryCabling],
		Protections: m[CostCategoryProtections],
		Labor:       m[CostCategoryLabor],
		Design:      m[CostCategoryDesign],
		Permits:     m[CostCategoryPermits],
	}
}

// ActualCosts is the sparse overlay of user-recorded spend. A category is
// present only once a value has been entered for it, so a recorded zero is
// distinguishable from "nothing recorded yet".

type ActualCosts map[CostCategory]int64

// Project is the planner aggregate.
//
// PlannedCosts is computed in full when the project is created or its size
// or tier changes, and is never touched by actual-cost edits. ActualCosts
// entries are independent of each other.

type Project struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	Province      string        `json:"province"`
	SystemSizeKwp float64       `json:"system_size_kwp"`
	BudgetTier    BudgetTier    `json:"budget_tier"`
	Status        ProjectStatus `json:"status"`
	PlannedCosts  CostBreakdown `json:"planned_costs"`
	ActualCosts   ActualCosts   `json:"actual_costs"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Clone returns a copy whose ActualCosts map does not alias the original.
func (p Project) Clone() Project {
	out := p
	out.ActualCosts = make(ActualCosts, len(p.ActualCosts))
	for c, v := range p.ActualCosts {
		out.ActualCosts[c] = v
	}
	return out
}

// SetActual records real spend for one category, replacing any previous
// value. Other categories and the planned breakdown are unaffected.
func (p *Project) SetActual(c CostCategory, amountUSD int64) {
	if p.ActualCosts == nil {
		p.ActualCosts = make(ActualCosts, 1)
	}
	p.ActualCosts[c] = amountUSD
}

// ClearActual removes the recorded spend for one category, returning it to
// the unset state.
func (p *Project) ClearActual(c CostCategory) {
	delete(p.ActualCosts, c)
}

// Variance reports actual minus planned for a category. The boolean is
// false when no actual has been recorded for that category. Non-positive
// variance means at or under budget (favorable).
func (p Project) Variance(c CostCategory) (int64, bool) {
	actual, ok := p.ActualCosts[c]
	if !ok {
		return 0, false
	}
	return actual - p.PlannedCosts.Get(c), true
}

// TotalActual sums the currently recorded actuals. Unset categories
// contribute zero; use HasAnyActual to tell an all-zero total from an
// empty overlay.
func (p Project) TotalActual() int64 {
	var total int64
	for _, v := range p.ActualCosts {
		total += v
	}
	return total
}

// HasAnyActual reports whether at least one category has recorded spend.
func (p Project) HasAnyActual() bool {
	return len(p.ActualCosts) > 0
}

// TotalVariance reports aggregate actual minus planned. The boolean is
// false until at least one actual has been recorded.
func (p Project) TotalVariance() (int64, bool) {
	if !p.HasAnyActual() {
		return 0, false
	}
	return p.TotalActual() - p.PlannedCosts.Total(), true
}
