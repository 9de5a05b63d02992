package interfaces

import (
	"context"

	"solari_planner/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for planner projects.
//
// Durability is best effort by design: the session's in-memory collection is
// authoritative, the repository only mirrors it. Callers are expected to
// treat LoadAll errors as "no persisted data" and Save/Delete errors as a
// degradation to session-only durability, never as a failed computation.

type IProjectRepository interface {
	LoadAll(ctx context.Context) ([]entities.Project, error)
	Save(ctx context.Context, p entities.Project) error
	Delete(ctx context.Context, id string) error
}
