package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	gochi "github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	gen "github.com/kailas-cloud/sysdisco/internal/transport/generated"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/sysdisco/internal/usecase/health"
	systemuc "github.com/kailas-cloud/sysdisco/internal/usecase/system"
)

// --- Mocks ---

type memProjects struct {
	items map[string]domproj.Project
}

func (m *memProjects) Get(_ context.Context, id string) (domproj.Project, error) {
	p, ok := m.items[id]
	if !ok {
		return domproj.Project{}, domain.ErrNotFound
	}
	return p, nil
}

type memSystems struct {
	items   []domsys.Document
	listErr error
}

func (m *memSystems) Save(_ context.Context, d domsys.Document) error {
	for i := range m.items {
		if m.items[i].ID() == d.ID() {
			m.items[i] = d
			return nil
		}
	}
	m.items = append(m.items, d)
	return nil
}

func (m *memSystems) Get(_ context.Context, projectID, id string) (domsys.Document, error) {
	for _, d := range m.items {
		if d.ProjectID() == projectID && d.ID() == id {
			return d, nil
		}
	}
	return domsys.Document{}, domain.ErrNotFound
}

func (m *memSystems) ListByProject(_ context.Context, projectID string) ([]domsys.Document, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []domsys.Document{}
	for _, d := range m.items {
		if d.ProjectID() == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memSystems) Delete(_ context.Context, projectID, id string) error {
	for i, d := range m.items {
		if d.ProjectID() == projectID && d.ID() == id {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// --- Helpers ---

type fixture struct {
	systems *memSystems
	pinger  *mockPinger
	router  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	projects := &memProjects{items: map[string]domproj.Project{
		"rpg": domproj.Reconstruct("rpg", domproj.Attrs{Name: "RPG"}, 1, 1),
	}}
	systems := &memSystems{items: []domsys.Document{
		domsys.Reconstruct("s-char", "rpg", domsys.Attrs{
			Name: "Character System", Category: "core", Tags: []string{"Character", "player"},
		}, 1000, 1000),
		domsys.Reconstruct("s-inv", "rpg", domsys.Attrs{
			Name: "Inventory", Category: "economy", Tags: []string{"inventory", "item"},
		}, 2000, 2000),
	}}
	pinger := &mockPinger{}

	srv := NewServer(
		discoveryuc.New(projects, systems),
		systemuc.New(systems, projects),
		healthuc.New(pinger, "memory"),
		nil,
	)
	r := gochi.NewRouter()
	gen.HandlerWithOptions(srv, gen.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: InvalidParamHandler})

	return &fixture{systems: systems, pinger: pinger, router: r}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return rr, resp
}

func featureBody(text string) string {
	b, _ := json.Marshal(map[string]string{"featureText": text})
	return string(b)
}

const characterText = "The character screen shows character stats. Players grow their character " +
	"through quests, and the character sheet records every choice made."

// --- Discovery ---

func TestDiscoverSystems_OK(t *testing.T) {
	f := newFixture(t)

	rr, resp := f.do(t, "POST", "/projects/rpg/discover", featureBody(characterText))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if resp["success"] != true || resp["error"] != nil {
		t.Errorf("envelope = %v", resp)
	}

	var out gen.DiscoverResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Data.IsAIGenerated {
		t.Error("isAIGenerated = true")
	}
	if len(out.Data.AnalyzedKeywords) == 0 || out.Data.AnalyzedKeywords[0] != "character" {
		t.Errorf("analyzedKeywords = %v", out.Data.AnalyzedKeywords)
	}
	if len(out.Data.Recommendations) != 1 {
		t.Fatalf("recommendations = %+v", out.Data.Recommendations)
	}
	rec := out.Data.Recommendations[0]
	if rec.SystemId != "s-char" || rec.SystemName != "Character System" {
		t.Errorf("recommendation = %+v", rec)
	}
	if !slices.Equal(rec.MatchedTags, []string{"character"}) {
		t.Errorf("matchedTags = %v", rec.MatchedTags)
	}
	if rec.RelevanceScore <= 0 || rec.RelevanceScore > 100 {
		t.Errorf("relevanceScore = %d", rec.RelevanceScore)
	}
}

func TestDiscoverSystems_NoMatchesIsEmptyList(t *testing.T) {
	f := newFixture(t)
	text := strings.Repeat("weather forecast rainfall ", 5)

	rr, _ := f.do(t, "POST", "/projects/rpg/discover", featureBody(text))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"recommendations":[]`) {
		t.Errorf("body = %s, want empty recommendations array", rr.Body.String())
	}
}

func TestDiscoverSystems_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode gen.ErrorCode
		wantMsg  string
	}{
		{"99 characters", featureBody(strings.Repeat("a", 99)), gen.ErrorCodeValidationFailed, "100"},
		{"99 hangul characters", featureBody(strings.Repeat("캐", 99)), gen.ErrorCodeValidationFailed, "100"},
		{"missing field", `{}`, gen.ErrorCodeValidationFailed, "featureText"},
		{"not a string", `{"featureText": 42}`, gen.ErrorCodeValidationFailed, "featureText"},
		{"null", `{"featureText": null}`, gen.ErrorCodeValidationFailed, "featureText"},
		{"empty body", ``, gen.ErrorCodeValidationFailed, "featureText"},
		{"malformed json", `{"featureText": `, gen.ErrorCodeBadRequest, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rr, resp := f.do(t, "POST", "/projects/rpg/discover", tt.body)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			if resp["success"] != false {
				t.Errorf("success = %v", resp["success"])
			}
			if resp["errorCode"] != string(tt.wantCode) {
				t.Errorf("errorCode = %v, want %s", resp["errorCode"], tt.wantCode)
			}
			msg, _ := resp["error"].(string)
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestDiscoverSystems_ProjectNotFound(t *testing.T) {
	f := newFixture(t)

	rr, resp := f.do(t, "POST", "/projects/missing/discover", featureBody(characterText))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if msg, _ := resp["error"].(string); !strings.Contains(msg, "Project") {
		t.Errorf("error = %q", msg)
	}
	if resp["errorCode"] != string(gen.ErrorCodeProjectNotFound) {
		t.Errorf("errorCode = %v", resp["errorCode"])
	}
}

func TestDiscoverSystems_StorageFailure(t *testing.T) {
	f := newFixture(t)
	f.systems.listErr = errors.New("connection reset by peer")

	rr, resp := f.do(t, "POST", "/projects/rpg/discover", featureBody(characterText))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	msg, _ := resp["error"].(string)
	if !strings.Contains(msg, "failed to discover systems") || !strings.Contains(msg, "connection reset by peer") {
		t.Errorf("error = %q, want underlying message", msg)
	}
}

// --- Systems ---

func TestCreateSystem(t *testing.T) {
	f := newFixture(t)

	rr, _ := f.do(t, "POST", "/projects/rpg/systems",
		`{"name":" Quest Log ","category":"progression","tags":["quest","journal"]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var out gen.SystemResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Data.Name != "Quest Log" || out.Data.ProjectId != "rpg" || out.Data.Id == "" {
		t.Errorf("created = %+v", out.Data)
	}
	if out.Data.Dependencies == nil {
		t.Error("dependencies should be [] not null")
	}
	if !strings.HasSuffix(out.Data.CreatedAt, "Z") {
		t.Errorf("createdAt = %q, want UTC timestamp", out.Data.CreatedAt)
	}
	if len(f.systems.items) != 3 {
		t.Errorf("stored %d systems, want 3", len(f.systems.items))
	}
}

func TestCreateSystem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   gen.ErrorCode
	}{
		{"missing name", "/projects/rpg/systems", `{"category":"core"}`, http.StatusBadRequest, gen.ErrorCodeValidationFailed},
		{"long category", "/projects/rpg/systems",
			`{"name":"x","category":"` + strings.Repeat("c", 51) + `"}`, http.StatusBadRequest, gen.ErrorCodeValidationFailed},
		{"duplicate name", "/projects/rpg/systems", `{"name":"Inventory","category":"core"}`,
			http.StatusConflict, gen.ErrorCodeAlreadyExists},
		{"unknown project", "/projects/nope/systems", `{"name":"x","category":"core"}`,
			http.StatusNotFound, gen.ErrorCodeProjectNotFound},
		{"bad json", "/projects/rpg/systems", `{`, http.StatusBadRequest, gen.ErrorCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rr, resp := f.do(t, "POST", tt.path, tt.body)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if resp["errorCode"] != string(tt.wantCode) {
				t.Errorf("errorCode = %v, want %s", resp["errorCode"], tt.wantCode)
			}
		})
	}
}

func TestListSystems_NewestFirst(t *testing.T) {
	f := newFixture(t)

	rr, _ := f.do(t, "GET", "/projects/rpg/systems", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var out gen.SystemListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Data) != 2 {
		t.Fatalf("len = %d", len(out.Data))
	}
}

func TestGetUpdateDeleteSystem(t *testing.T) {
	f := newFixture(t)

	rr, _ := f.do(t, "GET", "/projects/rpg/systems/s-char", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d", rr.Code)
	}

	rr, _ = f.do(t, "PUT", "/projects/rpg/systems/s-char", `{"tags":["hero"],"content":"# Hero"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var upd gen.SystemResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(upd.Data.Tags, []string{"hero"}) || upd.Data.Content != "# Hero" {
		t.Errorf("updated = %+v", upd.Data)
	}
	if upd.Data.Name != "Character System" {
		t.Errorf("name changed to %q", upd.Data.Name)
	}

	rr, _ = f.do(t, "PUT", "/projects/rpg/systems/s-char", `{"name":"Inventory"}`)
	if rr.Code != http.StatusConflict {
		t.Errorf("rename to taken name: status = %d, want 409", rr.Code)
	}

	rr, resp := f.do(t, "DELETE", "/projects/rpg/systems/s-char", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rr.Code)
	}
	data, _ := resp["data"].(map[string]any)
	if data["deleted"] != true {
		t.Errorf("delete data = %v", resp["data"])
	}

	rr, resp = f.do(t, "GET", "/projects/rpg/systems/s-char", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", rr.Code)
	}
	if resp["errorCode"] != string(gen.ErrorCodeSystemNotFound) {
		t.Errorf("errorCode = %v", resp["errorCode"])
	}
}

func TestListSystemCategoriesAndTags(t *testing.T) {
	f := newFixture(t)

	rr, _ := f.do(t, "GET", "/projects/rpg/systems/categories", "")
	var cats gen.StringListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &cats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cats.Data, []string{"core", "economy"}) {
		t.Errorf("categories = %v", cats.Data)
	}

	rr, _ = f.do(t, "GET", "/projects/rpg/systems/tags", "")
	var tags gen.StringListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(tags.Data, []string{"Character", "inventory", "item", "player"}) {
		t.Errorf("tags = %v", tags.Data)
	}
}

// --- Health ---

func TestHealthCheck(t *testing.T) {
	f := newFixture(t)

	rr, resp := f.do(t, "GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp["success"] != true {
		t.Errorf("success = %v", resp["success"])
	}

	f.pinger.err = errors.New("down")
	rr, resp = f.do(t, "GET", "/health", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	data, _ := resp["data"].(map[string]any)
	if data["status"] != "error" || data["backend"] != "memory" {
		t.Errorf("data = %v", data)
	}
}
