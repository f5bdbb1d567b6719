package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

const (
	systemColumns = `id, project_id, name, category, tags, content, dependencies, created_at, updated_at`

	upsertSystemSQL = `
INSERT INTO system_documents (` + systemColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (project_id, id) DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    tags = EXCLUDED.tags,
    content = EXCLUDED.content,
    dependencies = EXCLUDED.dependencies,
    updated_at = EXCLUDED.updated_at`

	getSystemSQL = `SELECT ` + systemColumns + ` FROM system_documents WHERE project_id = $1 AND id = $2`

	listSystemsSQL = `SELECT ` + systemColumns + ` FROM system_documents
WHERE project_id = $1 ORDER BY created_at DESC, id ASC`

	deleteSystemSQL = `DELETE FROM system_documents WHERE project_id = $1 AND id = $2`
)

// SystemRepo stores system documents in the system_documents table.
type SystemRepo struct {
	db querier
}

// NewSystemRepo creates a Postgres system document repository.
func NewSystemRepo(db querier) *SystemRepo {
	return &SystemRepo{db: db}
}

// Save creates or overwrites a system document.
func (r *SystemRepo) Save(ctx context.Context, d domsys.Document) error {
	_, err := r.db.Exec(ctx, upsertSystemSQL,
		d.ID(), d.ProjectID(), d.Name(), d.Category(),
		nonNil(d.Tags()), d.Content(), nonNil(d.Dependencies()),
		d.CreatedAt(), d.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("upsert system %s: %w", d.ID(), err)
	}
	return nil
}

// Get retrieves a system document. Unknown IDs yield domain.ErrNotFound.
func (r *SystemRepo) Get(ctx context.Context, projectID, id string) (domsys.Document, error) {
	d, err := scanSystem(r.db.QueryRow(ctx, getSystemSQL, projectID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domsys.Document{}, fmt.Errorf("system %s: %w", id, domain.ErrNotFound)
		}
		return domsys.Document{}, fmt.Errorf("get system %s: %w", id, err)
	}
	return d, nil
}

// ListByProject returns every system document of a project, newest first.
func (r *SystemRepo) ListByProject(ctx context.Context, projectID string) ([]domsys.Document, error) {
	rows, err := r.db.Query(ctx, listSystemsSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	defer rows.Close()

	docs := []domsys.Document{}
	for rows.Next() {
		d, err := scanSystem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan system: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate systems: %w", err)
	}
	return docs, nil
}

// Delete removes a system document. Unknown IDs yield domain.ErrNotFound.
func (r *SystemRepo) Delete(ctx context.Context, projectID, id string) error {
	tag, err := r.db.Exec(ctx, deleteSystemSQL, projectID, id)
	if err != nil {
		return fmt.Errorf("delete system %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("system %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanSystem(row pgx.Row) (domsys.Document, error) {
	var (
		id, projectID        string
		attrs                domsys.Attrs
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&id, &projectID, &attrs.Name, &attrs.Category,
		&attrs.Tags, &attrs.Content, &attrs.Dependencies,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domsys.Document{}, err
	}
	attrs.Tags = nonNil(attrs.Tags)
	attrs.Dependencies = nonNil(attrs.Dependencies)
	return domsys.Reconstruct(id, projectID, attrs, createdAt, updatedAt), nil
}
