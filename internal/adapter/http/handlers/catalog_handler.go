package handlers

import (
	"net/http"
	"strconv"
	"strings"

	response "solari_planner/internal/adapter/http/dto/response"
	"solari_planner/internal/domain/catalog"
	"solari_planner/internal/domain/costing"
	"solari_planner/internal/domain/entities"
	"solari_planner/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static reference data: equipment
// recommendations and the province list. No use case behind it, the
// catalog is configuration.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetRecommendation previews the recommended panel, inverter and planned
// breakdown for ?tier= and ?size_kwp= without creating anything.
func (h *CatalogHandler) GetRecommendation(c *gin.Context) {
	tier := entities.BudgetTier(strings.TrimSpace(strings.ToLower(c.Query("tier"))))
	if !tier.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid budget tier", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	size, err := strconv.ParseFloat(c.Query("size_kwp"), 64)
	if err != nil || size < 1 || size > 500 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid system size", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	panel := catalog.RecommendPanel(tier)
	planned := costing.PlannedCosts(size, tier)

	c.JSON(http.StatusOK, response.RecommendationResponse{
		Panel:           panel,
		PanelCount:      costing.PanelCount(size, panel.Wattage),
		Inverter:        catalog.RecommendInverter(tier, size),
		PlannedCosts:    planned,
		TotalPlannedUSD: planned.Total(),
	})
}

// ListProvinces returns the fixed province reference list.
func (h *CatalogHandler) ListProvinces(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Provinces())
}
