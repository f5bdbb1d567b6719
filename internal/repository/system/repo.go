package system

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// store is the consumer interface for system documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo stores system documents as hashes under {prefix}system:{projectID}:{id}.
type Repo struct {
	store  store
	prefix string
}

// New creates a system document repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save creates or overwrites a system document.
func (r *Repo) Save(ctx context.Context, d domsys.Document) error {
	fields, err := systemToHash(&d)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, r.key(d.ProjectID(), d.ID()), fields); err != nil {
		return fmt.Errorf("hset system %s: %w", d.ID(), err)
	}
	return nil
}

// Get retrieves a system document. Unknown IDs yield domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, projectID, id string) (domsys.Document, error) {
	m, err := r.store.HGetAll(ctx, r.key(projectID, id))
	if err != nil {
		return domsys.Document{}, fmt.Errorf("hgetall system %s: %w", id, err)
	}
	if len(m) == 0 {
		return domsys.Document{}, fmt.Errorf("system %s: %w", id, domain.ErrNotFound)
	}

	d, err := systemFromHash(m)
	if err != nil {
		return domsys.Document{}, fmt.Errorf("parse system %s: %w", id, err)
	}
	return d, nil
}

// ListByProject returns every system document of a project, newest first.
// A project without documents yields an empty slice.
func (r *Repo) ListByProject(ctx context.Context, projectID string) ([]domsys.Document, error) {
	keys, err := r.store.Scan(ctx, r.pattern(projectID))
	if err != nil {
		return nil, fmt.Errorf("scan systems: %w", err)
	}
	if len(keys) == 0 {
		return []domsys.Document{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi systems: %w", err)
	}

	docs := make([]domsys.Document, 0, len(results))
	for i, m := range results {
		// deleted between SCAN and HGETALL
		if len(m) == 0 {
			continue
		}
		d, err := systemFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse system %s: %w", keys[i], err)
		}
		// project IDs may contain ':', so the pattern also matches "<projectID>:<suffix>:*"
		if d.ProjectID() != projectID {
			continue
		}
		docs = append(docs, d)
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt() != docs[j].CreatedAt() {
			return docs[i].CreatedAt() > docs[j].CreatedAt()
		}
		return docs[i].ID() < docs[j].ID()
	})

	return docs, nil
}

// Delete removes a system document. Unknown IDs yield domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, projectID, id string) error {
	existed, err := r.store.Del(ctx, r.key(projectID, id))
	if err != nil {
		return fmt.Errorf("del system %s: %w", id, err)
	}
	if !existed {
		return fmt.Errorf("system %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Valkey key pattern: {prefix}system:{projectID}:{id}

func (r *Repo) key(projectID, id string) string {
	return fmt.Sprintf("%ssystem:%s:%s", r.prefix, projectID, id)
}

func (r *Repo) pattern(projectID string) string {
	return fmt.Sprintf("%ssystem:%s:*", globEscaper.Replace(r.prefix), globEscaper.Replace(projectID))
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
