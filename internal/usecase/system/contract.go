package system

import (
	"context"

	"github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// Repository defines the storage contract for system documents.
// Get and Delete return an error wrapping domain.ErrNotFound for unknown IDs.
type Repository interface {
	Save(ctx context.Context, doc domsys.Document) error
	Get(ctx context.Context, projectID, id string) (domsys.Document, error)
	ListByProject(ctx context.Context, projectID string) ([]domsys.Document, error)
	Delete(ctx context.Context, projectID, id string) error
}

// ProjectReader checks that the owning project exists.
type ProjectReader interface {
	Get(ctx context.Context, id string) (project.Project, error)
}
