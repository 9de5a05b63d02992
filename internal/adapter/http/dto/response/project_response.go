package response

import (
	"time"

	"solari_planner/internal/domain/catalog"
	"solari_planner/internal/domain/entities"
	"solari_planner/internal/usecase"
)

// CostLineResponse is one row of the planned-vs-actual table. ActualUSD and
// VarianceUSD are present only once spend has been recorded for the
// category; Favorable mirrors the display rule that non-positive variance
// is at-or-under budget.
type CostLineResponse struct {
	Category    string `json:"category"`
	PlannedUSD  int64  `json:"planned_usd"`
	ActualUSD   *int64 `json:"actual_usd,omitempty"`
	VarianceUSD *int64 `json:"variance_usd,omitempty"`
	Favorable   *bool  `json:"favorable,omitempty"`
}

type ProjectResponse struct {
	ID               string             `json:"id"`
	CustomerName     string             `json:"customer_name"`
	Province         string             `json:"province"`
	SystemSizeKwp    float64            `json:"system_size_kwp"`
	BudgetTier       string             `json:"budget_tier"`
	Status           string             `json:"status"`
	Costs            []CostLineResponse `json:"costs"`
	TotalPlannedUSD  int64              `json:"total_planned_usd"`
	TotalActualUSD   int64              `json:"total_actual_usd"`
	HasAnyActual     bool               `json:"has_any_actual"`
	TotalVarianceUSD *int64             `json:"total_variance_usd,omitempty"`
	Notes            string             `json:"notes"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	costs := make([]CostLineResponse, 0, 8)
	for _, c := range entities.CostCategories() {
		line := CostLineResponse{
			Category:   string(c),
			PlannedUSD: p.PlannedCosts.Get(c),
		}
		if actual, ok := p.ActualCosts[c]; ok {
			variance := actual - line.PlannedUSD
			favorable := variance <= 0
			line.ActualUSD = &actual
			line.VarianceUSD = &variance
			line.Favorable = &favorable
		}
		costs = append(costs, line)
	}

	res := ProjectResponse{
		ID:              p.ID,
		CustomerName:    p.CustomerName,
		Province:        p.Province,
		SystemSizeKwp:   p.SystemSizeKwp,
		BudgetTier:      string(p.BudgetTier),
		Status:          string(p.Status),
		Costs:           costs,
		TotalPlannedUSD: p.PlannedCosts.Total(),
		TotalActualUSD:  p.TotalActual(),
		HasAnyActual:    p.HasAnyActual(),
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if variance, ok := p.TotalVariance(); ok {
		res.TotalVarianceUSD = &variance
	}
	return res
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type SummaryResponse struct {
	ProjectCount    int            `json:"project_count"`
	StatusCounts    map[string]int `json:"status_counts"`
	TotalPlannedUSD int64          `json:"total_planned_usd"`
	TotalKwp        float64        `json:"total_kwp"`
}

func FromSummary(s usecase.PortfolioSummary) SummaryResponse {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, n := range s.StatusCounts {
		counts[string(status)] = n
	}
	return SummaryResponse{
		ProjectCount:    s.ProjectCount,
		StatusCounts:    counts,
		TotalPlannedUSD: s.TotalPlannedUSD,
		TotalKwp:        s.TotalKwp,
	}
}

// RecommendationResponse previews the equipment selection and planned
// breakdown for a size and tier without creating a project.
type RecommendationResponse struct {
	Panel           catalog.PanelSpec      `json:"panel"`
	PanelCount      int                    `json:"panel_count"`
	Inverter        catalog.InverterSpec   `json:"inverter"`
	PlannedCosts    entities.CostBreakdown `json:"planned_costs"`
	TotalPlannedUSD int64                  `json:"total_planned_usd"`
}
