package system

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength is the maximum system name length in characters.
	MaxNameLength = 100
	// MaxCategoryLength is the maximum category length in characters.
	MaxCategoryLength = 50
)

// Attrs are the user-editable fields of a system document.
type Attrs struct {
	Name         string
	Category     string
	Tags         []string
	Content      string
	Dependencies []string
}

// Document is a named, tagged reference artifact belonging to a project.
type Document struct {
	id        string
	projectID string
	attrs     Attrs
	createdAt int64 // unix millis
	updatedAt int64 // unix millis
}

// New validates attrs and creates a Document stamped with now (unix millis).
// Name and category are trimmed; nil slices become empty.
func New(id, projectID string, attrs Attrs, now int64) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("system ID is required")
	}
	if projectID == "" {
		return Document{}, fmt.Errorf("project ID is required")
	}
	attrs = normalize(attrs)
	if err := ValidateName(attrs.Name); err != nil {
		return Document{}, err
	}
	if err := ValidateCategory(attrs.Category); err != nil {
		return Document{}, err
	}
	return Document{id: id, projectID: projectID, attrs: attrs, createdAt: now, updatedAt: now}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, projectID string, attrs Attrs, createdAt, updatedAt int64) Document {
	return Document{id: id, projectID: projectID, attrs: attrs, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// ProjectID returns the owning project identifier.
func (d *Document) ProjectID() string { return d.projectID }

// Name returns the display name, unique within a project.
func (d *Document) Name() string { return d.attrs.Name }

// Category returns the grouping category.
func (d *Document) Category() string { return d.attrs.Category }

// Tags returns the match tags as stored.
func (d *Document) Tags() []string { return d.attrs.Tags }

// Content returns the document body.
func (d *Document) Content() string { return d.attrs.Content }

// Dependencies returns the names of systems this one depends on.
func (d *Document) Dependencies() []string { return d.attrs.Dependencies }

// CreatedAt returns the creation time in unix millis.
func (d *Document) CreatedAt() int64 { return d.createdAt }

// UpdatedAt returns the last modification time in unix millis.
func (d *Document) UpdatedAt() int64 { return d.updatedAt }

// Attrs returns a copy of the editable fields.
func (d *Document) Attrs() Attrs {
	a := d.attrs
	a.Tags = slices.Clone(a.Tags)
	a.Dependencies = slices.Clone(a.Dependencies)
	return a
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name         *string
	Category     *string
	Tags         []string
	Content      *string
	Dependencies []string

	// set when the slice fields were present in the request, even if empty
	SetTags         bool
	SetDependencies bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Content == nil && !p.SetTags && !p.SetDependencies
}

// Apply validates p against d and returns the updated copy stamped with now.
func (d *Document) Apply(p Patch, now int64) (Document, error) {
	attrs := d.Attrs()
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if err := ValidateName(name); err != nil {
			return Document{}, err
		}
		attrs.Name = name
	}
	if p.Category != nil {
		cat := strings.TrimSpace(*p.Category)
		if err := ValidateCategory(cat); err != nil {
			return Document{}, err
		}
		attrs.Category = cat
	}
	if p.SetTags {
		attrs.Tags = nonNil(slices.Clone(p.Tags))
	}
	if p.Content != nil {
		attrs.Content = *p.Content
	}
	if p.SetDependencies {
		attrs.Dependencies = nonNil(slices.Clone(p.Dependencies))
	}
	return Document{id: d.id, projectID: d.projectID, attrs: attrs, createdAt: d.createdAt, updatedAt: now}, nil
}

// ValidateName checks a trimmed system name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("name must be %d characters or less", MaxNameLength)
	}
	return nil
}

// ValidateCategory checks a trimmed category.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is required")
	}
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return fmt.Errorf("category must be %d characters or less", MaxCategoryLength)
	}
	return nil
}

func normalize(a Attrs) Attrs {
	a.Name = strings.TrimSpace(a.Name)
	a.Category = strings.TrimSpace(a.Category)
	a.Tags = nonNil(slices.Clone(a.Tags))
	a.Dependencies = nonNil(slices.Clone(a.Dependencies))
	return a
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
