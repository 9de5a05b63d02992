package handlers

import (
	"errors"
	"net/http"

	request "solari_planner/internal/adapter/http/dto/request"
	response "solari_planner/internal/adapter/http/dto/response"
	"solari_planner/internal/domain/entities"
	"solari_planner/internal/usecase"
	"solari_planner/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for planner projects.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject validates the form payload and creates a project with its
// planned breakdown computed from size and tier.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	in, ok := h.bindProjectInput(c)
	if !ok {
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// UpdateProject replaces the form fields and recomputes the planned
// breakdown; status and recorded actuals are untouched.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	in, ok := h.bindProjectInput(c)
	if !ok {
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(summary))
}

// UpdateStatus relabels a project's progress. All five labels are valid
// targets from any current label.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// SetActualCost records real spend for the category in the path.
func (h *ProjectHandler) SetActualCost(c *gin.Context) {
	var payload request.ActualCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	category := entities.CostCategory(c.Param("category"))
	project, err := h.usecase.SetActualCost(c.Request.Context(), c.Param("id"), category, amount)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// ClearActualCost returns the category in the path to the unset state.
func (h *ProjectHandler) ClearActualCost(c *gin.Context) {
	category := entities.CostCategory(c.Param("category"))
	project, err := h.usecase.ClearActualCost(c.Request.Context(), c.Param("id"), category)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) bindProjectInput(c *gin.Context) (usecase.ProjectInput, bool) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return usecase.ProjectInput{}, false
	}

	size, err := payload.ResolveSystemSize()
	if err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return usecase.ProjectInput{}, false
	}

	tier, err := payload.ResolveBudgetTier()
	if err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return usecase.ProjectInput{}, false
	}

	return usecase.ProjectInput{
		CustomerName:  payload.ResolveCustomerName(),
		Province:      payload.ResolveProvince(),
		SystemSizeKwp: size,
		BudgetTier:    tier,
		Notes:         payload.Notes,
	}, true
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidProvince),
		errors.Is(err, usecase.ErrInvalidSystemSize),
		errors.Is(err, usecase.ErrInvalidBudgetTier),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidCostCategory),
		errors.Is(err, usecase.ErrInvalidActualAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
