package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
)

const (
	upsertProjectSQL = `
INSERT INTO projects (id, name, description, tech_stack, categories, default_references, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    tech_stack = EXCLUDED.tech_stack,
    categories = EXCLUDED.categories,
    default_references = EXCLUDED.default_references,
    updated_at = EXCLUDED.updated_at`

	getProjectSQL = `
SELECT id, name, description, tech_stack, categories, default_references, created_at, updated_at
FROM projects WHERE id = $1`
)

// ProjectRepo stores projects in the projects table.
type ProjectRepo struct {
	db querier
}

// NewProjectRepo creates a Postgres project repository.
func NewProjectRepo(db querier) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Save creates or overwrites a project.
func (r *ProjectRepo) Save(ctx context.Context, p domproj.Project) error {
	_, err := r.db.Exec(ctx, upsertProjectSQL,
		p.ID(), p.Name(), p.Description(),
		nonNil(p.TechStack()), nonNil(p.Categories()), nonNil(p.DefaultReferences()),
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("upsert project %s: %w", p.ID(), err)
	}
	return nil
}

// Get retrieves a project by ID. Unknown IDs yield domain.ErrNotFound.
func (r *ProjectRepo) Get(ctx context.Context, id string) (domproj.Project, error) {
	var (
		pid                  string
		attrs                domproj.Attrs
		createdAt, updatedAt int64
	)
	err := r.db.QueryRow(ctx, getProjectSQL, id).Scan(
		&pid, &attrs.Name, &attrs.Description,
		&attrs.TechStack, &attrs.Categories, &attrs.DefaultReferences,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domproj.Project{}, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return domproj.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	return domproj.Reconstruct(pid, attrs, createdAt, updatedAt), nil
}
