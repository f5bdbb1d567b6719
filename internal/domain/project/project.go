package project

import (
	"fmt"
	"slices"
	"strings"
)

// Project is the aggregate a set of system documents belongs to.
// Discovery only needs to know that it exists.
type Project struct {
	id                string
	name              string
	description       string
	techStack         []string
	categories        []string
	defaultReferences []string
	createdAt         int64 // unix millis
	updatedAt         int64 // unix millis
}

// Attrs are the user-editable fields of a project.
type Attrs struct {
	Name              string
	Description       string
	TechStack         []string
	Categories        []string
	DefaultReferences []string
}

// New validates and creates a Project stamped with now (unix millis).
func New(id string, attrs Attrs, now int64) (Project, error) {
	if id == "" {
		return Project{}, fmt.Errorf("project ID is required")
	}
	name := strings.TrimSpace(attrs.Name)
	if name == "" {
		return Project{}, fmt.Errorf("project name is required")
	}
	return Project{
		id:                id,
		name:              name,
		description:       attrs.Description,
		techStack:         clone(attrs.TechStack),
		categories:        clone(attrs.Categories),
		defaultReferences: clone(attrs.DefaultReferences),
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// Reconstruct creates a Project without validation (storage hydration).
func Reconstruct(id string, attrs Attrs, createdAt, updatedAt int64) Project {
	return Project{
		id:                id,
		name:              attrs.Name,
		description:       attrs.Description,
		techStack:         attrs.TechStack,
		categories:        attrs.Categories,
		defaultReferences: attrs.DefaultReferences,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *Project) ID() string                  { return p.id }
func (p *Project) Name() string                { return p.name }
func (p *Project) Description() string         { return p.description }
func (p *Project) TechStack() []string         { return p.techStack }
func (p *Project) Categories() []string        { return p.categories }
func (p *Project) DefaultReferences() []string { return p.defaultReferences }
func (p *Project) CreatedAt() int64            { return p.createdAt }
func (p *Project) UpdatedAt() int64            { return p.updatedAt }

func clone(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
