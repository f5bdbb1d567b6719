package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	sysdisco "github.com/kailas-cloud/sysdisco/pkg/sdk"
)

// fixture is the YAML layout of a seed file.
type fixture struct {
	Projects []projectFixture `yaml:"projects"`
}

type projectFixture struct {
	ID                string          `yaml:"id"`
	Name              string          `yaml:"name"`
	Description       string          `yaml:"description"`
	TechStack         []string        `yaml:"tech_stack"`
	Categories        []string        `yaml:"categories"`
	DefaultReferences []string        `yaml:"default_references"`
	Systems           []systemFixture `yaml:"systems"`
}

type systemFixture struct {
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	Tags         []string `yaml:"tags"`
	Content      string   `yaml:"content"`
	Dependencies []string `yaml:"dependencies"`
}

func loadFixture(path string) (fixture, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return parseFixture(data)
}

func parseFixture(data []byte) (fixture, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Projects) == 0 {
		return fixture{}, errors.New("fixture has no projects")
	}
	seen := make(map[string]bool, len(f.Projects))
	for i, p := range f.Projects {
		if p.ID == "" {
			return fixture{}, fmt.Errorf("projects[%d]: id is required", i)
		}
		if seen[p.ID] {
			return fixture{}, fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}
	return f, nil
}

type projectEnsurer interface {
	Ensure(ctx context.Context, in sysdisco.ProjectInput) (sysdisco.Project, error)
}

type systemCreator interface {
	Create(ctx context.Context, in sysdisco.SystemInput) (sysdisco.System, error)
}

// seedStats counts what a seed run did.
type seedStats struct {
	Projects int
	Created  int
	Skipped  int
}

// seeder writes a fixture through the SDK. Existing projects are kept,
// and systems whose name is already taken are skipped.
type seeder struct {
	projects projectEnsurer
	systems  func(projectID string) systemCreator
	logger   *zap.Logger
}

func (s *seeder) Seed(ctx context.Context, f fixture) (seedStats, error) {
	var stats seedStats
	for _, pf := range f.Projects {
		p, err := s.projects.Ensure(ctx, sysdisco.ProjectInput{
			ID:                pf.ID,
			Name:              pf.Name,
			Description:       pf.Description,
			TechStack:         pf.TechStack,
			Categories:        pf.Categories,
			DefaultReferences: pf.DefaultReferences,
		})
		if err != nil {
			return stats, fmt.Errorf("project %s: %w", pf.ID, err)
		}
		stats.Projects++

		systems := s.systems(p.ID)
		for _, sf := range pf.Systems {
			doc, err := systems.Create(ctx, sysdisco.SystemInput{
				Name:         sf.Name,
				Category:     sf.Category,
				Tags:         sf.Tags,
				Content:      sf.Content,
				Dependencies: sf.Dependencies,
			})
			switch {
			case errors.Is(err, sysdisco.ErrAlreadyExists):
				stats.Skipped++
				s.logger.Debug("System exists, skipping",
					zap.String("project", p.ID), zap.String("system", sf.Name))
			case err != nil:
				return stats, fmt.Errorf("project %s: system %q: %w", p.ID, sf.Name, err)
			default:
				stats.Created++
				s.logger.Info("System created",
					zap.String("project", p.ID), zap.String("system", doc.Name), zap.String("id", doc.ID))
			}
		}
	}
	return stats, nil
}
