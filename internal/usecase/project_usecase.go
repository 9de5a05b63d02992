package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"solari_planner/internal/domain/catalog"
	"solari_planner/internal/domain/costing"
	"solari_planner/internal/domain/entities"
	"solari_planner/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidProvince     = errors.New("invalid province")
	ErrInvalidSystemSize   = errors.New("invalid system size")
	ErrInvalidBudgetTier   = errors.New("invalid budget tier")
	ErrInvalidStatus       = errors.New("invalid project status")
	ErrInvalidCostCategory = errors.New("invalid cost category")
	ErrInvalidActualAmount = errors.New("invalid actual cost amount")
)

// System size accepted at the form boundary, in kWp.
const (
	minSystemSizeKwp = 1
	maxSystemSizeKwp = 500
)

// ProjectInput carries the validated-form fields for creating or editing a
// project. Status, actuals and timestamps are never set through it.
type ProjectInput struct {
	CustomerName  string
	Province      string
	SystemSizeKwp float64
	BudgetTier    entities.BudgetTier
	Notes         string
}

// PortfolioSummary aggregates the session's projects for the dashboard.
type PortfolioSummary struct {
	ProjectCount    int
	StatusCounts    map[entities.ProjectStatus]int
	TotalPlannedUSD int64
	TotalKwp        float64
}

// IProjectUseCase exposes the planner engine operations.
//
//   - Create/Update compute the planned breakdown from size and tier.
//   - SetStatus relabels progress; any status from any status.
//   - SetActualCost/ClearActualCost edit the sparse actual overlay.
//   - Delete is hard: no soft-delete, no recovery.

type IProjectUseCase interface {
	Create(ctx context.Context, in ProjectInput) (entities.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error)
	SetStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	SetActualCost(ctx context.Context, id string, category entities.CostCategory, amountUSD int64) (entities.Project, error)
	ClearActualCost(ctx context.Context, id string, category entities.CostCategory) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Summary(ctx context.Context) (PortfolioSummary, error)
}

// ProjectUseCase owns the in-memory project collection for the session and
// mirrors every mutation to the repository. Persistence failures are logged
// and swallowed: the worst outcome is loss of durability, not a wrong
// in-memory computation.
type ProjectUseCase struct {
	mu       sync.Mutex
	repo     interfaces.IProjectRepository
	projects map[string]entities.Project
	log      zerolog.Logger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, log zerolog.Logger) *ProjectUseCase {
	return &ProjectUseCase{
		repo:     repo,
		projects: make(map[string]entities.Project),
		log:      log,
	}
}

// Restore loads the persisted collection into the session. Missing or
// unreadable data yields an empty collection rather than an error.
func (u *ProjectUseCase) Restore(ctx context.Context) {
	loaded, err := u.repo.LoadAll(ctx)
	if err != nil {
		u.log.Warn().Err(err).Msg("could not load persisted projects, starting empty")
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range loaded {
		u.projects[p.ID] = p.Clone()
	}
	u.log.Info().Int("projects", len(loaded)).Msg("restored planner session")
}

func (u *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (entities.Project, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:            uuid.NewString(),
		CustomerName:  in.CustomerName,
		Province:      in.Province,
		SystemSizeKwp: in.SystemSizeKwp,
		BudgetTier:    in.BudgetTier,
		Status:        entities.ProjectStatusPlanning,
		PlannedCosts:  costing.PlannedCosts(in.SystemSizeKwp, in.BudgetTier),
		ActualCosts:   entities.ActualCosts{},
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	u.mu.Lock()
	u.projects[p.ID] = p.Clone()
	u.mu.Unlock()

	u.persist(ctx, p)
	return p, nil
}

// Update replaces the form fields of an existing project and recomputes the
// planned breakdown in full. Status and recorded actuals carry over
// untouched.
func (u *ProjectUseCase) Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	in, err := normalizeInput(in)
	if err != nil {
		return entities.Project{}, err
	}

	p, err := u.mutate(id, func(p *entities.Project) error {
		p.CustomerName = in.CustomerName
		p.Province = in.Province
		p.SystemSizeKwp = in.SystemSizeKwp
		p.BudgetTier = in.BudgetTier
		p.Notes = in.Notes
		p.PlannedCosts = costing.PlannedCosts(in.SystemSizeKwp, in.BudgetTier)
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	u.persist(ctx, p)
	return p, nil
}

func (u *ProjectUseCase) SetStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !status.Valid() {
		return entities.Project{}, ErrInvalidStatus
	}

	p, err := u.mutate(id, func(p *entities.Project) error {
		p.Status = status
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	u.persist(ctx, p)
	return p, nil
}

func (u *ProjectUseCase) SetActualCost(ctx context.Context, id string, category entities.CostCategory, amountUSD int64) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !category.Valid() {
		return entities.Project{}, ErrInvalidCostCategory
	}
	if amountUSD < 0 {
		return entities.Project{}, ErrInvalidActualAmount
	}

	p, err := u.mutate(id, func(p *entities.Project) error {
		p.SetActual(category, amountUSD)
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	u.persist(ctx, p)
	return p, nil
}

func (u *ProjectUseCase) ClearActualCost(ctx context.Context, id string, category entities.CostCategory) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !category.Valid() {
		return entities.Project{}, ErrInvalidCostCategory
	}

	p, err := u.mutate(id, func(p *entities.Project) error {
		p.ClearActual(category)
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	u.persist(ctx, p)
	return p, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}

	u.mu.Lock()
	_, ok := u.projects[id]
	if ok {
		delete(u.projects, id)
	}
	u.mu.Unlock()

	if !ok {
		return ErrProjectNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Warn().Err(err).Str("project_id", id).Msg("could not delete persisted project, session state kept")
	}
	return nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.projects[id]
	if !ok {
		return entities.Project{}, ErrProjectNotFound
	}
	return p.Clone(), nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	u.mu.Lock()
	out := make([]entities.Project, 0, len(u.projects))
	for _, p := range u.projects {
		out = append(out, p.Clone())
	}
	u.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (u *ProjectUseCase) Summary(ctx context.Context) (PortfolioSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s := PortfolioSummary{
		ProjectCount: len(u.projects),
		StatusCounts: make(map[entities.ProjectStatus]int),
	}
	for _, p := range u.projects {
		s.StatusCounts[p.Status]++
		s.TotalPlannedUSD += p.PlannedCosts.Total()
		s.TotalKwp += p.SystemSizeKwp
	}
	return s, nil
}

// mutate applies fn to the stored project under the lock, refreshing
// UpdatedAt, and returns a detached copy of the result.
func (u *ProjectUseCase) mutate(id string, fn func(p *entities.Project) error) (entities.Project, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	p, ok := u.projects[id]
	if !ok {
		return entities.Project{}, ErrProjectNotFound
	}

	if err := fn(&p); err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	if !now.After(p.UpdatedAt) {
		// Clock did not advance between two mutations; keep UpdatedAt
		// strictly increasing anyway.
		now = p.UpdatedAt.Add(time.Nanosecond)
	}
	p.UpdatedAt = now

	u.projects[id] = p.Clone()
	return p, nil
}

func (u *ProjectUseCase) persist(ctx context.Context, p entities.Project) {
	if err := u.repo.Save(ctx, p); err != nil {
		u.log.Warn().Err(err).Str("project_id", p.ID).Msg("could not persist project, continuing with session state")
	}
}

func normalizeInput(in ProjectInput) (ProjectInput, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" {
		return ProjectInput{}, ErrInvalidCustomerName
	}
	if _, ok := catalog.ProvinceByID(strings.TrimSpace(in.Province)); !ok {
		return ProjectInput{}, ErrInvalidProvince
	}
	in.Province = strings.TrimSpace(in.Province)
	if in.SystemSizeKwp < minSystemSizeKwp || in.SystemSizeKwp > maxSystemSizeKwp {
		return ProjectInput{}, ErrInvalidSystemSize
	}
	if !in.BudgetTier.Valid() {
		return ProjectInput{}, ErrInvalidBudgetTier
	}
	in.Notes = strings.TrimSpace(in.Notes)
	return in, nil
}
