// Command seed loads projects and system documents from a YAML fixture
// into the configured storage backend.
//
// Usage:
//
//	seed -fixture cmd/seed/testdata/rpg.yaml
//
// Storage settings come from config/<APP_ENV>.yaml, as for the API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sysdisco/internal/config"
	logpkg "github.com/kailas-cloud/sysdisco/internal/logger"
	"github.com/kailas-cloud/sysdisco/internal/version"
	sysdisco "github.com/kailas-cloud/sysdisco/pkg/sdk"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to the YAML fixture")
	flag.Parse()

	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := run(ctx, config.GetEnv(), *fixturePath); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, env, fixturePath string) error {
	if fixturePath == "" {
		return errors.New("-fixture is required")
	}

	cfg, err := config.Load(env)
	if err != nil {
		return err
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting seed",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.String("db_driver", cfg.Database.Driver),
	)

	f, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	opts, err := clientOptions(cfg)
	if err != nil {
		return err
	}
	client, err := sysdisco.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	s := &seeder{
		projects: client.Projects(),
		systems:  func(id string) systemCreator { return client.Systems(id) },
		logger:   logger,
	}
	start := time.Now()
	stats, err := s.Seed(ctx, f)
	if err != nil {
		return err
	}

	logger.Info("Seed finished",
		zap.String("fixture", fixturePath),
		zap.Int("projects", stats.Projects),
		zap.Int("created", stats.Created),
		zap.Int("skipped", stats.Skipped),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// clientOptions maps the server configuration onto SDK options.
func clientOptions(cfg config.Config) ([]sysdisco.Option, error) {
	var opts []sysdisco.Option
	db := cfg.Database
	switch db.Driver {
	case config.DriverValkey, config.DriverRedis:
		if len(db.Addrs) == 0 {
			return nil, fmt.Errorf("database.addrs is required for %s", db.Driver)
		}
		if db.Driver == config.DriverValkey {
			opts = append(opts, sysdisco.WithValkey(db.Addrs[0], db.Password))
		} else {
			opts = append(opts, sysdisco.WithRedis(db.Addrs[0], db.Password))
		}
		opts = append(opts, sysdisco.WithKeyPrefix(cfg.Storage.KeyPrefix))
	case config.DriverPostgres:
		opts = append(opts, sysdisco.WithPostgres(db.URL))
		if db.MaxConns > 0 {
			opts = append(opts, sysdisco.WithMaxConns(db.MaxConns))
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", db.Driver)
	}
	if db.ReadinessTimeout > 0 {
		opts = append(opts, sysdisco.WithReadinessTimeout(time.Duration(db.ReadinessTimeout)*time.Second))
	}
	return opts, nil
}
