package system

import (
	"context"
	"testing"

	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

const testPrefix = "sysdisco:"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) (bool, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
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

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) (bool, error) {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return true, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, testPrefix), ms
}

func testSystem(t *testing.T, id string, createdAt int64) domsys.Document {
	t.Helper()
	return domsys.Reconstruct(id, "proj-1", domsys.Attrs{
		Name:     "System " + id,
		Category: "core",
		Tags:     []string{"combat", "skill"},
		Content:  "# " + id,
	}, createdAt, createdAt)
}

func hashOf(t *testing.T, d domsys.Document) map[string]string {
	t.Helper()
	m, err := systemToHash(&d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}
