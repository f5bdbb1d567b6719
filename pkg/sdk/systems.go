package sysdisco

import (
	"context"
	"fmt"
	"time"

	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// SystemService manages the system documents of one project.
// Every call fails with ErrProjectNotFound for an unknown project.
type SystemService struct {
	projectID string
	svc       systemUseCase
	obs       *observer
}

// Create stores a new system document. Names are unique per project.
func (s *SystemService) Create(ctx context.Context, in SystemInput) (_ System, err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.create", start, err) }()

	doc, err := s.svc.Create(ctx, s.projectID, domsys.Attrs{
		Name:         in.Name,
		Category:     in.Category,
		Tags:         in.Tags,
		Content:      in.Content,
		Dependencies: in.Dependencies,
	})
	if err != nil {
		return System{}, fmt.Errorf("create system: %w", err)
	}
	return fromInternalSystem(&doc), nil
}

// Get returns a system document. Unknown IDs fail with ErrSystemNotFound.
func (s *SystemService) Get(ctx context.Context, id string) (_ System, err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.get", start, err) }()

	doc, err := s.svc.Get(ctx, s.projectID, id)
	if err != nil {
		return System{}, fmt.Errorf("get system: %w", err)
	}
	return fromInternalSystem(&doc), nil
}

// List returns all system documents, newest first.
func (s *SystemService) List(ctx context.Context) (_ []System, err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.list", start, err) }()

	docs, err := s.svc.List(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	out := make([]System, len(docs))
	for i := range docs {
		out[i] = fromInternalSystem(&docs[i])
	}
	return out, nil
}

// Update applies a partial update.
func (s *SystemService) Update(ctx context.Context, id string, p SystemPatch) (_ System, err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.update", start, err) }()

	doc, err := s.svc.Update(ctx, s.projectID, id, toInternalPatch(p))
	if err != nil {
		return System{}, fmt.Errorf("update system: %w", err)
	}
	return fromInternalSystem(&doc), nil
}

// Delete removes a system document.
func (s *SystemService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.delete", start, err) }()

	if err = s.svc.Delete(ctx, s.projectID, id); err != nil {
		return fmt.Errorf("delete system: %w", err)
	}
	return nil
}

// Categories returns the distinct categories, sorted.
func (s *SystemService) Categories(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.categories", start, err) }()

	cats, err := s.svc.Categories(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Tags returns the distinct tags, sorted.
func (s *SystemService) Tags(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("system.tags", start, err) }()

	tags, err := s.svc.Tags(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
