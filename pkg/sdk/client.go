package sysdisco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	"github.com/kailas-cloud/sysdisco/internal/repository/retrying"
	"github.com/kailas-cloud/sysdisco/internal/storage"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/sysdisco/internal/usecase/health"
	systemuc "github.com/kailas-cloud/sysdisco/internal/usecase/system"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "sysdisco:"
)

// Internal interfaces, swapped for mocks in tests.
type discoveryUseCase interface {
	Discover(ctx context.Context, projectID string, featureText *string) (discoveryuc.Result, error)
}

type projectStore interface {
	Save(ctx context.Context, p domproj.Project) error
	Get(ctx context.Context, id string) (domproj.Project, error)
}

type systemUseCase interface {
	Create(ctx context.Context, projectID string, attrs domsys.Attrs) (domsys.Document, error)
	Get(ctx context.Context, projectID, id string) (domsys.Document, error)
	List(ctx context.Context, projectID string) ([]domsys.Document, error)
	Update(ctx context.Context, projectID, id string, p domsys.Patch) (domsys.Document, error)
	Delete(ctx context.Context, projectID, id string) error
	Categories(ctx context.Context, projectID string) ([]string, error)
	Tags(ctx context.Context, projectID string) ([]string, error)
}

// Client is the sysdisco SDK entry point.
type Client struct {
	backend      *storage.Backend
	discoverySvc discoveryUseCase
	projects     projectStore
	systemSvc    systemUseCase
	healthSvc    healthUseCase
	obs          *observer
}

// New creates a sysdisco Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:        defaultKeyPrefix,
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("sysdisco: storage required (use WithValkey, WithRedis or WithPostgres)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(ctx, storageConfig(cfg), nil)
	if err != nil {
		return nil, fmt.Errorf("sysdisco: %w", err)
	}

	return wireClient(backend, cfg, obs), nil
}

func storageConfig(cfg *clientConfig) storage.Config {
	return storage.Config{
		Driver:           cfg.driver,
		Addrs:            cfg.addrs,
		Password:         cfg.password,
		KeyPrefix:        cfg.keyPrefix,
		URL:              cfg.url,
		MaxConns:         cfg.maxConns,
		ReadinessTimeout: cfg.readinessTimeout,
	}
}

func retryConfig(cfg *clientConfig) retrying.Config {
	rc := retrying.DefaultConfig()
	if cfg.retryAttempts > 0 {
		rc.Attempts = cfg.retryAttempts
	}
	if cfg.retryDelay > 0 {
		rc.Delay = cfg.retryDelay
	}
	if cfg.retryMaxDelay > 0 {
		rc.MaxDelay = cfg.retryMaxDelay
	}
	return rc
}

func wireClient(backend *storage.Backend, cfg *clientConfig, obs *observer) *Client {
	projectLookup, systemLookup := backend.Lookups(retryConfig(cfg))

	dopts := []discoveryuc.Option{discoveryuc.WithObserver(obs)}
	if cfg.maxResults > 0 {
		dopts = append(dopts, discoveryuc.WithMaxResults(cfg.maxResults))
	}

	return &Client{
		backend:      backend,
		discoverySvc: discoveryuc.New(projectLookup, systemLookup, dopts...),
		projects:     backend.Projects(),
		systemSvc:    systemuc.New(backend.Systems(), projectLookup),
		healthSvc:    healthuc.New(backend, backend.Name()),
		obs:          obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.backend.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Discover recommends systems of projectID for featureText.
// featureText must be at least 100 characters; shorter input fails with
// a *ValidationError. Unknown projects fail with ErrProjectNotFound.
func (c *Client) Discover(ctx context.Context, projectID, featureText string) (_ Discovery, err error) {
	start := time.Now()
	defer func() { c.obs.observe("discover", start, err) }()

	res, err := c.discoverySvc.Discover(ctx, projectID, &featureText)
	if err != nil {
		return Discovery{}, fmt.Errorf("discover: %w", err)
	}
	return fromInternalDiscovery(res), nil
}

// Projects returns the project service.
func (c *Client) Projects() *ProjectService {
	return &ProjectService{store: c.projects, obs: c.obs, now: time.Now, newID: uuid.NewString}
}

// Systems returns the system document service for a given project.
func (c *Client) Systems(projectID string) *SystemService {
	return &SystemService{projectID: projectID, svc: c.systemSvc, obs: c.obs}
}
