package system

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// Service handles system document CRUD within a project.
type Service struct {
	repo     Repository
	projects ProjectReader
	now      func() time.Time
	newID    func() string
}

// New creates a system document service.
func New(repo Repository, projects ProjectReader) *Service {
	return &Service{repo: repo, projects: projects, now: time.Now, newID: uuid.NewString}
}

// Create validates attrs and stores a new system document under a fresh UUID.
func (s *Service) Create(ctx context.Context, projectID string, attrs domsys.Attrs) (domsys.Document, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return domsys.Document{}, err
	}

	doc, err := domsys.New(s.newID(), projectID, attrs, s.now().UnixMilli())
	if err != nil {
		return domsys.Document{}, validation(err)
	}

	if err := s.ensureUniqueName(ctx, projectID, doc.Name(), ""); err != nil {
		return domsys.Document{}, err
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return domsys.Document{}, fmt.Errorf("create system: %w", err)
	}
	return doc, nil
}

// Get returns a single system document.
func (s *Service) Get(ctx context.Context, projectID, id string) (domsys.Document, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return domsys.Document{}, err
	}
	doc, err := s.repo.Get(ctx, projectID, id)
	if err != nil {
		return domsys.Document{}, systemErr("get system", err)
	}
	return doc, nil
}

// List returns all system documents of a project, newest first.
func (s *Service) List(ctx context.Context, projectID string) ([]domsys.Document, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	docs, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	return docs, nil
}

// Update applies a partial update. Renaming to a name already used by
// another document of the same project fails with domain.ErrAlreadyExists.
func (s *Service) Update(ctx context.Context, projectID, id string, p domsys.Patch) (domsys.Document, error) {
	existing, err := s.Get(ctx, projectID, id)
	if err != nil {
		return domsys.Document{}, err
	}

	updated, err := existing.Apply(p, s.now().UnixMilli())
	if err != nil {
		return domsys.Document{}, validation(err)
	}

	if updated.Name() != existing.Name() {
		if err := s.ensureUniqueName(ctx, projectID, updated.Name(), id); err != nil {
			return domsys.Document{}, err
		}
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return domsys.Document{}, fmt.Errorf("update system: %w", err)
	}
	return updated, nil
}

// Delete removes a system document.
func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, projectID, id); err != nil {
		return systemErr("delete system", err)
	}
	return nil
}

// Categories returns the distinct categories of a project, sorted.
func (s *Service) Categories(ctx context.Context, projectID string) ([]string, error) {
	docs, err := s.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].Category())
	}
	return sortedUnique(out), nil
}

// Tags returns the distinct tags of a project, sorted.
func (s *Service) Tags(ctx context.Context, projectID string) ([]string, error) {
	docs, err := s.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var out []string
	for i := range docs {
		out = append(out, docs[i].Tags()...)
	}
	return sortedUnique(out), nil
}

func (s *Service) ensureProject(ctx context.Context, projectID string) error {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("get project: %w", err)
	}
	return nil
}

func (s *Service) ensureUniqueName(ctx context.Context, projectID, name, excludeID string) error {
	docs, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("check system name: %w", err)
	}
	for i := range docs {
		if docs[i].Name() == name && docs[i].ID() != excludeID {
			return fmt.Errorf("a system document named %q already exists: %w", name, domain.ErrAlreadyExists)
		}
	}
	return nil
}

func validation(err error) error {
	return &domain.ValidationError{Field: "system", Message: err.Error()}
}

func systemErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrSystemNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func sortedUnique(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		return []string{}
	}
	return out
}
