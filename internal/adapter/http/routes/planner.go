package routes

import (
	"solari_planner/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathSummary   = "/summary"
	PathCatalog   = "/catalog"
	PathProvinces = "/provinces"
)

func addPlannerRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, catalogHandler *handlers.CatalogHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.PATCH("/:id/status", projectHandler.UpdateStatus)
		projects.PUT("/:id/actuals/:category", projectHandler.SetActualCost)
		projects.DELETE("/:id/actuals/:category", projectHandler.ClearActualCost)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/recommendation", catalogHandler.GetRecommendation)
	}

	// gin cannot mix a static segment with the :id wildcard under
	// /projects, so the portfolio summary lives at the group root.
	rg.GET(PathSummary, projectHandler.GetSummary)

	rg.GET(PathProvinces, catalogHandler.ListProvinces)
}
