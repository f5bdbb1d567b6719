package sysdisco

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	"github.com/kailas-cloud/sysdisco/internal/domain/match"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
)

func fixedNow() time.Time { return time.UnixMilli(5000) }

func newProjectService(store projectStore) *ProjectService {
	return &ProjectService{store: store, now: fixedNow, newID: func() string { return "gen-id" }}
}

// --- Discover ---

func TestClient_DiscoverConvertsResult(t *testing.T) {
	var gotText string
	c := &Client{discoverySvc: &mockDiscovery{
		discoverFn: func(_ context.Context, projectID string, featureText *string) (discoveryuc.Result, error) {
			if projectID != "rpg" {
				t.Errorf("projectID = %q", projectID)
			}
			gotText = *featureText
			return discoveryuc.Result{
				Recommendations:  []match.Result{match.NewResult("s1", "Combat", 67, []string{"combat", "skill"})},
				AnalyzedKeywords: []string{"combat", "skill", "boss"},
			}, nil
		},
	}}

	d, err := c.Discover(context.Background(), "rpg", "feature text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotText != "feature text" {
		t.Errorf("featureText = %q", gotText)
	}
	want := Recommendation{SystemID: "s1", SystemName: "Combat", RelevanceScore: 67, MatchedTags: []string{"combat", "skill"}}
	if len(d.Recommendations) != 1 || d.Recommendations[0].SystemID != want.SystemID ||
		d.Recommendations[0].RelevanceScore != want.RelevanceScore ||
		!slices.Equal(d.Recommendations[0].MatchedTags, want.MatchedTags) {
		t.Errorf("recommendations = %+v", d.Recommendations)
	}
	if len(d.AnalyzedKeywords) != 3 {
		t.Errorf("keywords = %v", d.AnalyzedKeywords)
	}
}

func TestClient_DiscoverWrapsError(t *testing.T) {
	c := &Client{discoverySvc: &mockDiscovery{
		discoverFn: func(context.Context, string, *string) (discoveryuc.Result, error) {
			return discoveryuc.Result{}, domain.NewInternal("failed to discover systems", errors.New("conn reset"))
		},
	}}

	_, err := c.Discover(context.Background(), "rpg", "x")
	var ie *InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("error = %v, want *InternalError", err)
	}
}

// --- Projects ---

func TestProjectService_CreateGeneratesID(t *testing.T) {
	var saved domproj.Project
	svc := newProjectService(&mockProjectStore{
		saveFn: func(_ context.Context, p domproj.Project) error { saved = p; return nil },
	})

	p, err := svc.Create(context.Background(), ProjectInput{Name: " RPG "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "gen-id" || saved.ID() != "gen-id" {
		t.Errorf("id = %q, saved = %q", p.ID, saved.ID())
	}
	if p.Name != "RPG" {
		t.Errorf("name = %q", p.Name)
	}
	if !p.CreatedAt.Equal(fixedNow()) {
		t.Errorf("createdAt = %v", p.CreatedAt)
	}
}

func TestProjectService_CreateDuplicate(t *testing.T) {
	svc := newProjectService(&mockProjectStore{
		getFn: func(_ context.Context, id string) (domproj.Project, error) {
			return domproj.Reconstruct(id, domproj.Attrs{Name: "x"}, 1, 1), nil
		},
	})

	_, err := svc.Create(context.Background(), ProjectInput{ID: "rpg", Name: "RPG"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("error = %v, want ErrAlreadyExists", err)
	}
}

func TestProjectService_CreateLookupFailure(t *testing.T) {
	saved := false
	svc := newProjectService(&mockProjectStore{
		getFn:  func(context.Context, string) (domproj.Project, error) { return domproj.Project{}, errors.New("down") },
		saveFn: func(context.Context, domproj.Project) error { saved = true; return nil },
	})

	if _, err := svc.Create(context.Background(), ProjectInput{ID: "rpg", Name: "RPG"}); err == nil {
		t.Fatal("expected error")
	}
	if saved {
		t.Error("project saved despite failed lookup")
	}
}

func TestProjectService_CreateInvalid(t *testing.T) {
	svc := newProjectService(&mockProjectStore{})

	_, err := svc.Create(context.Background(), ProjectInput{Name: "  "})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestProjectService_Ensure(t *testing.T) {
	existing := domproj.Reconstruct("rpg", domproj.Attrs{Name: "Old"}, 1, 1)
	saves := 0
	store := &mockProjectStore{
		getFn: func(_ context.Context, id string) (domproj.Project, error) {
			if id == "rpg" {
				return existing, nil
			}
			return domproj.Project{}, domain.ErrNotFound
		},
		saveFn: func(context.Context, domproj.Project) error { saves++; return nil },
	}
	svc := newProjectService(store)

	p, err := svc.Ensure(context.Background(), ProjectInput{ID: "rpg", Name: "New"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Old" || saves != 0 {
		t.Errorf("existing project overwritten: %+v, saves = %d", p, saves)
	}

	p, err = svc.Ensure(context.Background(), ProjectInput{ID: "idle", Name: "Idle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "idle" || saves != 1 {
		t.Errorf("project = %+v, saves = %d", p, saves)
	}

	if _, err := svc.Ensure(context.Background(), ProjectInput{Name: "x"}); !errors.Is(err, ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestProjectService_GetNotFound(t *testing.T) {
	svc := newProjectService(&mockProjectStore{})

	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("error = %v, want ErrProjectNotFound", err)
	}
}

// --- Systems ---

func TestSystemService_Create(t *testing.T) {
	svc := &SystemService{projectID: "rpg", svc: &mockSystemUseCase{
		createFn: func(_ context.Context, projectID string, attrs domsys.Attrs) (domsys.Document, error) {
			if projectID != "rpg" {
				t.Errorf("projectID = %q", projectID)
			}
			return domsys.Reconstruct("s1", projectID, attrs, 1000, 1000), nil
		},
	}}

	got, err := svc.Create(context.Background(), SystemInput{Name: "Combat", Category: "core", Tags: []string{"combat"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "s1" || got.ProjectID != "rpg" || got.Name != "Combat" {
		t.Errorf("system = %+v", got)
	}
	if !got.CreatedAt.Equal(time.UnixMilli(1000)) {
		t.Errorf("createdAt = %v", got.CreatedAt)
	}
}

func TestSystemService_UpdatePatch(t *testing.T) {
	var got domsys.Patch
	svc := &SystemService{projectID: "rpg", svc: &mockSystemUseCase{
		updateFn: func(_ context.Context, _, id string, p domsys.Patch) (domsys.Document, error) {
			got = p
			return domsys.Reconstruct(id, "rpg", domsys.Attrs{Name: "x"}, 1, 2), nil
		},
	}}

	name := "Growth"
	empty := []string{}
	if _, err := svc.Update(context.Background(), "s1", SystemPatch{Name: &name, Tags: &empty}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name == nil || *got.Name != "Growth" {
		t.Errorf("name = %v", got.Name)
	}
	if !got.SetTags || len(got.Tags) != 0 {
		t.Errorf("tags = %v, set = %v", got.Tags, got.SetTags)
	}
	if got.SetDependencies {
		t.Error("dependencies should be untouched")
	}
}

func TestSystemService_ErrorsPropagate(t *testing.T) {
	notFound := func() error { return domain.ErrSystemNotFound }
	svc := &SystemService{projectID: "rpg", svc: &mockSystemUseCase{
		getFn: func(context.Context, string, string) (domsys.Document, error) {
			return domsys.Document{}, notFound()
		},
		deleteFn:     func(context.Context, string, string) error { return notFound() },
		listFn:       func(context.Context, string) ([]domsys.Document, error) { return nil, domain.ErrProjectNotFound },
		categoriesFn: func(context.Context, string) ([]string, error) { return nil, domain.ErrProjectNotFound },
		tagsFn:       func(context.Context, string) ([]string, error) { return nil, domain.ErrProjectNotFound },
	}}
	ctx := context.Background()

	if _, err := svc.Get(ctx, "s1"); !errors.Is(err, ErrSystemNotFound) {
		t.Errorf("get error = %v", err)
	}
	if err := svc.Delete(ctx, "s1"); !errors.Is(err, ErrSystemNotFound) {
		t.Errorf("delete error = %v", err)
	}
	if _, err := svc.List(ctx); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("list error = %v", err)
	}
	if _, err := svc.Categories(ctx); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("categories error = %v", err)
	}
	if _, err := svc.Tags(ctx); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("tags error = %v", err)
	}
}

func TestSystemService_ListAndTags(t *testing.T) {
	svc := &SystemService{projectID: "rpg", svc: &mockSystemUseCase{
		listFn: func(context.Context, string) ([]domsys.Document, error) {
			return []domsys.Document{
				domsys.Reconstruct("b", "rpg", domsys.Attrs{Name: "B"}, 2, 2),
				domsys.Reconstruct("a", "rpg", domsys.Attrs{Name: "A"}, 1, 1),
			}, nil
		},
		tagsFn: func(context.Context, string) ([]string, error) { return []string{"combat", "item"}, nil },
	}}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "b" {
		t.Errorf("list = %+v", list)
	}
	tags, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(tags, []string{"combat", "item"}) {
		t.Errorf("tags = %v", tags)
	}
}
