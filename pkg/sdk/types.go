package sysdisco

import (
	"time"

	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
)

// Discovery is the outcome of Client.Discover.
type Discovery struct {
	Recommendations  []Recommendation
	IsAIGenerated    bool
	AnalyzedKeywords []string
}

// Recommendation is a system whose tags matched the extracted keywords.
type Recommendation struct {
	SystemID       string
	SystemName     string
	RelevanceScore int // 1..100, share of keywords found in tags
	MatchedTags    []string
}

// Project groups system documents.
type Project struct {
	ID                string
	Name              string
	Description       string
	TechStack         []string
	Categories        []string
	DefaultReferences []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProjectInput creates a project. An empty ID gets a generated UUID.
type ProjectInput struct {
	ID                string
	Name              string
	Description       string
	TechStack         []string
	Categories        []string
	DefaultReferences []string
}

// System is a tagged system design document.
type System struct {
	ID           string
	ProjectID    string
	Name         string
	Category     string
	Tags         []string
	Content      string
	Dependencies []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SystemInput creates a system document.
type SystemInput struct {
	Name         string
	Category     string
	Tags         []string
	Content      string
	Dependencies []string
}

// SystemPatch is a partial update. Nil fields are unchanged;
// a non-nil pointer to an empty slice clears Tags or Dependencies.
type SystemPatch struct {
	Name         *string
	Category     *string
	Tags         *[]string
	Content      *string
	Dependencies *[]string
}

func fromInternalDiscovery(r discoveryuc.Result) Discovery {
	recs := make([]Recommendation, len(r.Recommendations))
	for i, m := range r.Recommendations {
		recs[i] = Recommendation{
			SystemID:       m.SystemID(),
			SystemName:     m.SystemName(),
			RelevanceScore: m.RelevanceScore(),
			MatchedTags:    m.MatchedTags(),
		}
	}
	return Discovery{
		Recommendations:  recs,
		IsAIGenerated:    r.IsAIGenerated,
		AnalyzedKeywords: r.AnalyzedKeywords,
	}
}

func fromInternalProject(p *domproj.Project) Project {
	return Project{
		ID:                p.ID(),
		Name:              p.Name(),
		Description:       p.Description(),
		TechStack:         p.TechStack(),
		Categories:        p.Categories(),
		DefaultReferences: p.DefaultReferences(),
		CreatedAt:         time.UnixMilli(p.CreatedAt()),
		UpdatedAt:         time.UnixMilli(p.UpdatedAt()),
	}
}

func fromInternalSystem(d *domsys.Document) System {
	return System{
		ID:           d.ID(),
		ProjectID:    d.ProjectID(),
		Name:         d.Name(),
		Category:     d.Category(),
		Tags:         d.Tags(),
		Content:      d.Content(),
		Dependencies: d.Dependencies(),
		CreatedAt:    time.UnixMilli(d.CreatedAt()),
		UpdatedAt:    time.UnixMilli(d.UpdatedAt()),
	}
}

func toInternalPatch(p SystemPatch) domsys.Patch {
	out := domsys.Patch{
		Name:     p.Name,
		Category: p.Category,
		Content:  p.Content,
	}
	if p.Tags != nil {
		out.Tags = *p.Tags
		out.SetTags = true
	}
	if p.Dependencies != nil {
		out.Dependencies = *p.Dependencies
		out.SetDependencies = true
	}
	return out
}
