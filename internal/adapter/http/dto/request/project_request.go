package request

import (
	"errors"
	"strings"

	"solari_planner/internal/domain/entities"
)

var (
	ErrInvalidSystemSize   = errors.New("system size must be between 1 and 500 kWp")
	ErrInvalidBudgetTier   = errors.New("invalid budget tier")
	ErrInvalidStatus       = errors.New("invalid project status")
	ErrMissingActualAmount = errors.New("missing actual cost amount")
	ErrNegativeActual      = errors.New("actual cost amount must not be negative")
)

// ProjectRequest is the create/edit form payload. The UI restricts size to
// [1, 500] with a 0.5 step; the server re-checks the range but not the
// granularity.
type ProjectRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	Province      string  `json:"province" binding:"required"`
	SystemSizeKwp float64 `json:"system_size_kwp" binding:"required,gt=0"`
	BudgetTier    string  `json:"budget_tier" binding:"required"`
	Notes         string  `json:"notes"`
}

func (r ProjectRequest) ResolveCustomerName() string {
	return strings.TrimSpace(r.CustomerName)
}

func (r ProjectRequest) ResolveProvince() string {
	return strings.TrimSpace(r.Province)
}

func (r ProjectRequest) ResolveSystemSize() (float64, error) {
	if r.SystemSizeKwp < 1 || r.SystemSizeKwp > 500 {
		return 0, ErrInvalidSystemSize
	}
	return r.SystemSizeKwp, nil
}

func (r ProjectRequest) ResolveBudgetTier() (entities.BudgetTier, error) {
	tier := entities.BudgetTier(strings.TrimSpace(strings.ToLower(r.BudgetTier)))
	if !tier.Valid() {
		return "", ErrInvalidBudgetTier
	}
	return tier, nil
}

// StatusRequest carries a bare status label. Any of the five values is
// accepted regardless of the current one.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() (entities.ProjectStatus, error) {
	status := entities.ProjectStatus(strings.TrimSpace(strings.ToLower(r.Status)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ActualCostRequest records real spend for one category. The amount is a
// pointer so an explicit zero passes required-binding; zero spend is a valid
// recording, distinct from unset.
type ActualCostRequest struct {
	AmountUSD *int64 `json:"amount_usd" binding:"required"`
}

func (r ActualCostRequest) ResolveAmount() (int64, error) {
	if r.AmountUSD == nil {
		return 0, ErrMissingActualAmount
	}
	if *r.AmountUSD < 0 {
		return 0, ErrNegativeActual
	}
	return *r.AmountUSD, nil
}
