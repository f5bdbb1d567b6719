package project

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
)

// store is the consumer interface for projects (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo stores projects as hashes under {prefix}project:{id}.
type Repo struct {
	store  store
	prefix string
}

// New creates a project repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save creates or overwrites a project.
func (r *Repo) Save(ctx context.Context, p domproj.Project) error {
	fields, err := projectToHash(&p)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, r.key(p.ID()), fields); err != nil {
		return fmt.Errorf("hset project %s: %w", p.ID(), err)
	}
	return nil
}

// Get retrieves a project by ID. Unknown IDs yield domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id string) (domproj.Project, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return domproj.Project{}, fmt.Errorf("hgetall project %s: %w", id, err)
	}
	if len(m) == 0 {
		return domproj.Project{}, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	p, err := projectFromHash(m)
	if err != nil {
		return domproj.Project{}, fmt.Errorf("parse project %s: %w", id, err)
	}
	return p, nil
}

func (r *Repo) key(id string) string {
	return fmt.Sprintf("%sproject:%s", r.prefix, id)
}
