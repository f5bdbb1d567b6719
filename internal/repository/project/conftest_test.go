package project

import (
	"context"
	"testing"

	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
)

const testPrefix = "sysdisco:"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn    func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn func(ctx context.Context, key string) (map[string]string, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, testPrefix), ms
}

func testProject(t *testing.T) domproj.Project {
	t.Helper()
	return domproj.Reconstruct("proj-1", domproj.Attrs{
		Name:       "RPG",
		TechStack:  []string{"unity"},
		Categories: []string{"core"},
	}, 1700000000000, 1700000000500)
}
