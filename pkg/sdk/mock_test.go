package sysdisco

import (
	"context"
	"slices"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
)

// --- Mocks ---

type mockDiscovery struct {
	discoverFn func(ctx context.Context, projectID string, featureText *string) (discoveryuc.Result, error)
}

func (m *mockDiscovery) Discover(ctx context.Context, projectID string, featureText *string) (discoveryuc.Result, error) {
	return m.discoverFn(ctx, projectID, featureText)
}

type mockProjectStore struct {
	saveFn func(ctx context.Context, p domproj.Project) error
	getFn  func(ctx context.Context, id string) (domproj.Project, error)
}

func (m *mockProjectStore) Save(ctx context.Context, p domproj.Project) error {
	if m.saveFn == nil {
		return nil
	}
	return m.saveFn(ctx, p)
}

func (m *mockProjectStore) Get(ctx context.Context, id string) (domproj.Project, error) {
	if m.getFn == nil {
		return domproj.Project{}, domain.ErrNotFound
	}
	return m.getFn(ctx, id)
}

type mockSystemUseCase struct {
	createFn     func(ctx context.Context, projectID string, attrs domsys.Attrs) (domsys.Document, error)
	getFn        func(ctx context.Context, projectID, id string) (domsys.Document, error)
	listFn       func(ctx context.Context, projectID string) ([]domsys.Document, error)
	updateFn     func(ctx context.Context, projectID, id string, p domsys.Patch) (domsys.Document, error)
	deleteFn     func(ctx context.Context, projectID, id string) error
	categoriesFn func(ctx context.Context, projectID string) ([]string, error)
	tagsFn       func(ctx context.Context, projectID string) ([]string, error)
}

func (m *mockSystemUseCase) Create(ctx context.Context, projectID string, attrs domsys.Attrs) (domsys.Document, error) {
	return m.createFn(ctx, projectID, attrs)
}

func (m *mockSystemUseCase) Get(ctx context.Context, projectID, id string) (domsys.Document, error) {
	return m.getFn(ctx, projectID, id)
}

func (m *mockSystemUseCase) List(ctx context.Context, projectID string) ([]domsys.Document, error) {
	return m.listFn(ctx, projectID)
}

func (m *mockSystemUseCase) Update(ctx context.Context, projectID, id string, p domsys.Patch) (domsys.Document, error) {
	return m.updateFn(ctx, projectID, id, p)
}

func (m *mockSystemUseCase) Delete(ctx context.Context, projectID, id string) error {
	return m.deleteFn(ctx, projectID, id)
}

func (m *mockSystemUseCase) Categories(ctx context.Context, projectID string) ([]string, error) {
	return m.categoriesFn(ctx, projectID)
}

func (m *mockSystemUseCase) Tags(ctx context.Context, projectID string) ([]string, error) {
	return m.tagsFn(ctx, projectID)
}

// memProjects and memSystems back a fully wired Client in tests.
type memProjects struct {
	items map[string]domproj.Project
}

func (m *memProjects) Save(_ context.Context, p domproj.Project) error {
	m.items[p.ID()] = p
	return nil
}

func (m *memProjects) Get(_ context.Context, id string) (domproj.Project, error) {
	p, ok := m.items[id]
	if !ok {
		return domproj.Project{}, domain.ErrNotFound
	}
	return p, nil
}

type memSystems struct {
	items []domsys.Document
}

func (m *memSystems) Save(_ context.Context, d domsys.Document) error {
	for i := range m.items {
		if m.items[i].ID() == d.ID() {
			m.items[i] = d
			return nil
		}
	}
	m.items = append(m.items, d)
	return nil
}

func (m *memSystems) Get(_ context.Context, projectID, id string) (domsys.Document, error) {
	for _, d := range m.items {
		if d.ProjectID() == projectID && d.ID() == id {
			return d, nil
		}
	}
	return domsys.Document{}, domain.ErrNotFound
}

func (m *memSystems) ListByProject(_ context.Context, projectID string) ([]domsys.Document, error) {
	out := []domsys.Document{}
	for _, d := range m.items {
		if d.ProjectID() == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memSystems) Delete(_ context.Context, projectID, id string) error {
	for i, d := range m.items {
		if d.ProjectID() == projectID && d.ID() == id {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}
