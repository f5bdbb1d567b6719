package retrying

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	"github.com/kailas-cloud/sysdisco/internal/domain/project"
	"github.com/kailas-cloud/sysdisco/internal/domain/system"
	"github.com/kailas-cloud/sysdisco/internal/logger"
)

const (
	defaultAttempts = 3
	defaultDelay    = 100 * time.Millisecond
	defaultMaxDelay = 2 * time.Second
)

// Config controls the retry policy for storage lookups.
type Config struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

// DefaultConfig returns 3 attempts with 100ms..2s backoff.
func DefaultConfig() Config {
	return Config{Attempts: defaultAttempts, Delay: defaultDelay, MaxDelay: defaultMaxDelay}
}

func (c Config) options(ctx context.Context, op string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(c.Attempts),
		retry.Delay(c.Delay),
		retry.MaxDelay(c.MaxDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			logger.FromContext(ctx).Warn("Retrying storage lookup",
				zap.String("op", op),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	}
}

// retryable excludes answers that will not change on a second try.
func retryable(err error) bool {
	return !errors.Is(err, domain.ErrNotFound) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

type projectGetter interface {
	Get(ctx context.Context, id string) (project.Project, error)
}

// Projects retries transient project lookup failures.
type Projects struct {
	inner projectGetter
	cfg   Config
}

// NewProjects wraps a project reader with retries.
func NewProjects(inner projectGetter, cfg Config) *Projects {
	return &Projects{inner: inner, cfg: cfg}
}

// Get resolves a project, retrying transient errors.
func (p *Projects) Get(ctx context.Context, id string) (project.Project, error) {
	return retry.DoWithData(func() (project.Project, error) {
		return p.inner.Get(ctx, id)
	}, p.cfg.options(ctx, "get_project")...)
}

type systemLister interface {
	ListByProject(ctx context.Context, projectID string) ([]system.Document, error)
}

// Systems retries transient system listing failures.
type Systems struct {
	inner systemLister
	cfg   Config
}

// NewSystems wraps a system lister with retries.
func NewSystems(inner systemLister, cfg Config) *Systems {
	return &Systems{inner: inner, cfg: cfg}
}

// ListByProject lists a project's systems, retrying transient errors.
func (s *Systems) ListByProject(ctx context.Context, projectID string) ([]system.Document, error) {
	return retry.DoWithData(func() ([]system.Document, error) {
		return s.inner.ListByProject(ctx, projectID)
	}, s.cfg.options(ctx, "list_systems")...)
}
