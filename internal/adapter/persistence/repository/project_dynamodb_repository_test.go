package repository

import (
	"testing"
	"time"

	"solari_planner/internal/domain/entities"
)

func TestProjectItem_RoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:            "p-1",
		CustomerName:  "María González",
		Province:      "mendoza",
		SystemSizeKwp: 7.5,
		BudgetTier:    entities.BudgetTierPremium,
		Status:        entities.ProjectStatusInstalling,
		PlannedCosts:  entities.CostBreakdown{Panels: 3542, Inverter: 1900, Mounting: 975, Cabling: 450, Protections: 563, Labor: 2850, Design: 413, Permits: 450},
		ActualCosts:   entities.ActualCosts{entities.CostCategoryLabor: 2700, entities.CostCategoryPermits: 0},
		Notes:         "north-facing roof",
		CreatedAt:     created,
		UpdatedAt:     created.Add(time.Hour),
	}

	got := fromProjectItem(toProjectItem(p))

	if got.ID != p.ID || got.CustomerName != p.CustomerName || got.Province != p.Province {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.SystemSizeKwp != p.SystemSizeKwp || got.BudgetTier != p.BudgetTier || got.Status != p.Status {
		t.Fatalf("form fields lost: %+v", got)
	}
	if got.PlannedCosts != p.PlannedCosts {
		t.Fatalf("planned breakdown lost: %+v", got.PlannedCosts)
	}
	if len(got.ActualCosts) != 2 {
		t.Fatalf("expected 2 actual entries, got %d", len(got.ActualCosts))
	}
	if v, ok := got.ActualCosts[entities.CostCategoryPermits]; !ok || v != 0 {
		t.Fatalf("recorded zero must survive the round trip: %+v", got.ActualCosts)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) || !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("timestamps lost: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestFromProjectItem_DropsUnknownActualCategories(t *testing.T) {
	it := toProjectItem(entities.Project{ID: "p-1"})
	it.ActualCosts = map[string]int64{"labor": 100, "shipping": 50}

	got := fromProjectItem(it)
	if len(got.ActualCosts) != 1 {
		t.Fatalf("unknown categories must be dropped: %+v", got.ActualCosts)
	}
	if v := got.ActualCosts[entities.CostCategoryLabor]; v != 100 {
		t.Fatalf("expected labor 100, got %d", v)
	}
}
