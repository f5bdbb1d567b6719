package sysdisco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
)

// ProjectService manages projects.
type ProjectService struct {
	store projectStore
	obs   *observer
	now   func() time.Time
	newID func() string
}

// Create stores a new project. An empty in.ID gets a generated UUID;
// a taken in.ID fails with ErrAlreadyExists.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (_ Project, err error) {
	start := time.Now()
	defer func() { s.obs.observe("project.create", start, err) }()

	id := in.ID
	if id == "" {
		id = s.newID()
	} else {
		_, getErr := s.store.Get(ctx, id)
		switch {
		case getErr == nil:
			return Project{}, fmt.Errorf("create project %q: %w", id, domain.ErrAlreadyExists)
		case !errors.Is(getErr, domain.ErrNotFound):
			return Project{}, fmt.Errorf("create project: %w", getErr)
		}
	}

	return s.save(ctx, "create project", id, in)
}

// Ensure returns the project with in.ID, creating it when missing.
func (s *ProjectService) Ensure(ctx context.Context, in ProjectInput) (_ Project, err error) {
	start := time.Now()
	defer func() { s.obs.observe("project.ensure", start, err) }()

	if in.ID == "" {
		return Project{}, fmt.Errorf("ensure project: %w", domain.NewValidation("id", "project ID is required"))
	}

	existing, err := s.store.Get(ctx, in.ID)
	switch {
	case err == nil:
		return fromInternalProject(&existing), nil
	case !errors.Is(err, domain.ErrNotFound):
		return Project{}, fmt.Errorf("ensure project: %w", err)
	}

	return s.save(ctx, "ensure project", in.ID, in)
}

// Get returns a project. Unknown IDs fail with ErrProjectNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (_ Project, err error) {
	start := time.Now()
	defer func() { s.obs.observe("project.get", start, err) }()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Project{}, fmt.Errorf("get project %q: %w", id, domain.ErrProjectNotFound)
		}
		return Project{}, fmt.Errorf("get project: %w", err)
	}
	return fromInternalProject(&p), nil
}

func (s *ProjectService) save(ctx context.Context, op, id string, in ProjectInput) (Project, error) {
	p, err := domproj.New(id, domproj.Attrs{
		Name:              in.Name,
		Description:       in.Description,
		TechStack:         in.TechStack,
		Categories:        in.Categories,
		DefaultReferences: in.DefaultReferences,
	}, s.now().UnixMilli())
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", op, domain.NewValidation("project", err.Error()))
	}
	if err := s.store.Save(ctx, p); err != nil {
		return Project{}, fmt.Errorf("%s: %w", op, err)
	}
	return fromInternalProject(&p), nil
}
