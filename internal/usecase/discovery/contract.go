package discovery

import (
	"context"
	"time"

	"github.com/kailas-cloud/sysdisco/internal/domain/project"
	"github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// ProjectReader resolves a project by ID.
// Unknown IDs must yield an error wrapping domain.ErrNotFound.
type ProjectReader interface {
	Get(ctx context.Context, id string) (project.Project, error)
}

// SystemLister lists all system documents of a project.
// A project without documents yields an empty slice, not an error.
type SystemLister interface {
	ListByProject(ctx context.Context, projectID string) ([]system.Document, error)
}

// Observer records the outcome of a discovery call.
type Observer interface {
	ObserveDiscovery(outcome Outcome, keywords, recommendations int, took time.Duration)
}
