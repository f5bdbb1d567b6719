// Package storage opens the configured backend and hands out the project
// and system repositories bound to it.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sysdisco/internal/db/postgres"
	"github.com/kailas-cloud/sysdisco/internal/db/redis"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	pgrepo "github.com/kailas-cloud/sysdisco/internal/repository/postgres"
	projectrepo "github.com/kailas-cloud/sysdisco/internal/repository/project"
	"github.com/kailas-cloud/sysdisco/internal/repository/retrying"
	systemrepo "github.com/kailas-cloud/sysdisco/internal/repository/system"
)

// Supported drivers.
const (
	DriverValkey   = "valkey"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config selects and parameterizes a backend.
type Config struct {
	Driver           string
	Addrs            []string // valkey, redis
	Password         string   // valkey, redis
	KeyPrefix        string   // valkey, redis
	URL              string   // postgres
	MaxConns         int32    // postgres
	MinConns         int32    // postgres
	ReadinessTimeout time.Duration
}

// Projects is the project repository contract shared by all backends.
type Projects interface {
	Save(ctx context.Context, p domproj.Project) error
	Get(ctx context.Context, id string) (domproj.Project, error)
}

// Systems is the system document repository contract shared by all backends.
type Systems interface {
	Save(ctx context.Context, d domsys.Document) error
	Get(ctx context.Context, projectID, id string) (domsys.Document, error)
	ListByProject(ctx context.Context, projectID string) ([]domsys.Document, error)
	Delete(ctx context.Context, projectID, id string) error
}

// Backend is an opened store with its repositories.
type Backend struct {
	name     string
	projects Projects
	systems  Systems
	ping     func(ctx context.Context) error
	close    func()
}

// Open connects to the backend named by cfg.Driver and waits until it answers.
// Postgres schemas are migrated before the pool is handed out.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.ReadinessTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	switch cfg.Driver {
	case DriverValkey, DriverRedis:
		store, err := redis.NewStore(redis.Config{Addrs: cfg.Addrs, Password: cfg.Password})
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
		}
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
		}
		logger.Info("Connected to database", zap.String("driver", cfg.Driver), zap.Strings("addrs", cfg.Addrs))
		return &Backend{
			name:     cfg.Driver,
			projects: projectrepo.New(store, cfg.KeyPrefix),
			systems:  systemrepo.New(store, cfg.KeyPrefix),
			ping:     store.Ping,
			close:    store.Close,
		}, nil

	case DriverPostgres:
		if err := pgrepo.RunMigrations(cfg.URL); err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		pool, err := postgres.NewPool(ctx, postgres.Config{
			URL:      cfg.URL,
			MaxConns: cfg.MaxConns,
			MinConns: cfg.MinConns,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pool.WaitForReady(ctx, timeout); err != nil {
			pool.Close()
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("Connected to database", zap.String("driver", cfg.Driver))
		return &Backend{
			name:     cfg.Driver,
			projects: pgrepo.NewProjectRepo(pool),
			systems:  pgrepo.NewSystemRepo(pool),
			ping:     pool.Ping,
			close:    pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// New assembles a Backend from already built repositories.
// ping and closeFn may be nil.
func New(name string, projects Projects, systems Systems, ping func(context.Context) error, closeFn func()) *Backend {
	return &Backend{name: name, projects: projects, systems: systems, ping: ping, close: closeFn}
}

// Name returns the driver name.
func (b *Backend) Name() string { return b.name }

// Projects returns the project repository.
func (b *Backend) Projects() Projects { return b.projects }

// Systems returns the system document repository.
func (b *Backend) Systems() Systems { return b.systems }

// Ping checks connectivity.
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

// Close releases the underlying connections.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Lookups wraps the read paths used by discovery with retries.
func (b *Backend) Lookups(rc retrying.Config) (*retrying.Projects, *retrying.Systems) {
	return retrying.NewProjects(b.projects, rc), retrying.NewSystems(b.systems, rc)
}
