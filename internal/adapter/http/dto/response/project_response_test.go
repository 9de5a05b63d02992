package response

import (
	"testing"
	"time"

	"solari_planner/internal/domain/entities"
)

func sampleProject() entities.Project {
	return entities.Project{
		ID:            "p-1",
		CustomerName:  "María González",
		Province:      "cordoba",
		SystemSizeKwp: 5,
		BudgetTier:    entities.BudgetTierStandard,
		Status:        entities.ProjectStatusPlanning,
		PlannedCosts: entities.CostBreakdown{
			Panels: 2400, Inverter: 850, Mounting: 500, Cabling: 250,
			Protections: 300, Labor: 1500, Design: 200, Permits: 350,
		},
		ActualCosts: entities.ActualCosts{},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestFromProject_NoActualsRecorded(t *testing.T) {
	res := FromProject(sampleProject())

	if len(res.Costs) != 8 {
		t.Fatalf("expected 8 cost lines, got %d", len(res.Costs))
	}
	for _, line := range res.Costs {
		if line.ActualUSD != nil || line.VarianceUSD != nil || line.Favorable != nil {
			t.Fatalf("category %s: expected no actual/variance before recording", line.Category)
		}
	}
	if res.HasAnyActual {
		t.Fatalf("expected hasAnyActual false")
	}
	if res.TotalVarianceUSD != nil {
		t.Fatalf("total variance must be omitted with nothing recorded")
	}
	if res.TotalPlannedUSD != 6350 {
		t.Fatalf("expected 6350 planned total, got %d", res.TotalPlannedUSD)
	}
}

func TestFromProject_VarianceRows(t *testing.T) {
	p := sampleProject()
	p.SetActual(entities.CostCategoryLabor, 1400)  // under budget
	p.SetActual(entities.CostCategoryPanels, 2600) // over budget

	res := FromProject(p)

	byCategory := make(map[string]CostLineResponse, len(res.Costs))
	for _, line := range res.Costs {
		byCategory[line.Category] = line
	}

	labor := byCategory["labor"]
	if labor.ActualUSD == nil || *labor.ActualUSD != 1400 {
		t.Fatalf("unexpected labor actual: %+v", labor)
	}
	if labor.VarianceUSD == nil || *labor.VarianceUSD != -100 || labor.Favorable == nil || !*labor.Favorable {
		t.Fatalf("under budget must be favorable: %+v", labor)
	}

	panels := byCategory["panels"]
	if panels.VarianceUSD == nil || *panels.VarianceUSD != 200 || panels.Favorable == nil || *panels.Favorable {
		t.Fatalf("over budget must be unfavorable: %+v", panels)
	}

	if !res.HasAnyActual {
		t.Fatalf("expected hasAnyActual true")
	}
	if res.TotalActualUSD != 4000 {
		t.Fatalf("expected 4000 actual total, got %d", res.TotalActualUSD)
	}
	if res.TotalVarianceUSD == nil || *res.TotalVarianceUSD != 4000-6350 {
		t.Fatalf("unexpected total variance: %v", res.TotalVarianceUSD)
	}
}

func TestFromProject_ZeroVarianceIsFavorable(t *testing.T) {
	p := sampleProject()
	p.SetActual(entities.CostCategoryDesign, 200)

	res := FromProject(p)
	for _, line := range res.Costs {
		if line.Category != "design" {
			continue
		}
		if line.VarianceUSD == nil || *line.VarianceUSD != 0 {
			t.Fatalf("expected zero variance, got %+v", line)
		}
		if line.Favorable == nil || !*line.Favorable {
			t.Fatalf("zero variance is favorable, not neutral: %+v", line)
		}
		return
	}
	t.Fatalf("design line missing")
}
