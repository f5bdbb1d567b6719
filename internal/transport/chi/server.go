package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	"github.com/kailas-cloud/sysdisco/internal/domain/match"
	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
	"github.com/kailas-cloud/sysdisco/internal/metrics"
	gen "github.com/kailas-cloud/sysdisco/internal/transport/generated"
	discoveryuc "github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/sysdisco/internal/usecase/health"
	systemuc "github.com/kailas-cloud/sysdisco/internal/usecase/system"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements generated.ServerInterface for the oapi-codegen chi router.
type Server struct {
	gen.Unimplemented
	discovery     *discoveryuc.Service
	systems       *systemuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	discovery *discoveryuc.Service,
	systems *systemuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		discovery: discovery,
		systems:   systems,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrProjectNotFound, http.StatusNotFound, gen.ErrorCodeProjectNotFound),
		sentinelHandler(domain.ErrSystemNotFound, http.StatusNotFound, gen.ErrorCodeSystemNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, gen.ErrorCodeAlreadyExists),
		s.internalHandler,
	}
	return s
}

// DiscoverSystems handles POST /projects/{projectId}/discover.
func (s *Server) DiscoverSystems(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId) {
	featureText, err := decodeFeatureText(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.discovery.Discover(r.Context(), projectID, featureText)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	recs := make([]gen.SystemMatchResult, len(res.Recommendations))
	for i, m := range res.Recommendations {
		recs[i] = matchToGen(m)
	}
	keywords := res.AnalyzedKeywords
	if keywords == nil {
		keywords = []string{}
	}

	writeJSON(w, http.StatusOK, gen.DiscoverResponse{
		Success: true,
		Data: gen.DiscoveryResult{
			Recommendations:  recs,
			IsAIGenerated:    res.IsAIGenerated,
			AnalyzedKeywords: keywords,
		},
	})
}

// decodeFeatureText reads {"featureText": ...}. A missing body, a missing
// field and a non-string value all yield nil so the use case reports them
// as a missing featureText. Malformed JSON is an error.
func decodeFeatureText(body io.Reader) (*string, error) {
	var req gen.DiscoverRequest
	err := json.NewDecoder(body).Decode(&req)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return req.FeatureText, nil
	case errors.Is(err, io.EOF):
		return nil, nil
	case errors.As(err, &typeErr) && typeErr.Field == "featureText":
		return nil, nil
	default:
		return nil, err
	}
}

// ListSystems handles GET /projects/{projectId}/systems.
func (s *Server) ListSystems(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId) {
	docs, err := s.systems.List(r.Context(), projectID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]gen.SystemDocument, len(docs))
	for i := range docs {
		items[i] = systemToGen(&docs[i])
	}
	writeJSON(w, http.StatusOK, gen.SystemListResponse{Success: true, Data: items})
}

// CreateSystem handles POST /projects/{projectId}/systems.
func (s *Server) CreateSystem(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId) {
	var req gen.CreateSystemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc, err := s.systems.Create(r.Context(), projectID, domsys.Attrs{
		Name:         req.Name,
		Category:     req.Category,
		Tags:         deref(req.Tags),
		Content:      derefString(req.Content),
		Dependencies: deref(req.Dependencies),
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, gen.SystemResponse{Success: true, Data: systemToGen(&doc)})
}

// ListSystemCategories handles GET /projects/{projectId}/systems/categories.
func (s *Server) ListSystemCategories(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId) {
	cats, err := s.systems.Categories(r.Context(), projectID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.StringListResponse{Success: true, Data: cats})
}

// ListSystemTags handles GET /projects/{projectId}/systems/tags.
func (s *Server) ListSystemTags(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId) {
	tags, err := s.systems.Tags(r.Context(), projectID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.StringListResponse{Success: true, Data: tags})
}

// GetSystem handles GET /projects/{projectId}/systems/{systemId}.
func (s *Server) GetSystem(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId, systemID gen.SystemId) {
	doc, err := s.systems.Get(r.Context(), projectID, systemID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.SystemResponse{Success: true, Data: systemToGen(&doc)})
}

// UpdateSystem handles PUT /projects/{projectId}/systems/{systemId}.
func (s *Server) UpdateSystem(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId, systemID gen.SystemId) {
	var req gen.UpdateSystemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc, err := s.systems.Update(r.Context(), projectID, systemID, patchFromGen(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.SystemResponse{Success: true, Data: systemToGen(&doc)})
}

// DeleteSystem handles DELETE /projects/{projectId}/systems/{systemId}.
func (s *Server) DeleteSystem(w http.ResponseWriter, r *http.Request, projectID gen.ProjectId, systemID gen.SystemId) {
	if err := s.systems.Delete(r.Context(), projectID, systemID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.DeleteResponse{Success: true, Data: gen.DeleteResult{Deleted: true}})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthReportChecks, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = gen.HealthReportChecks(v)
	}

	httpStatus := http.StatusOK
	var errMsg *string
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
		msg := "storage backend unavailable"
		errMsg = &msg
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Success: report.Status == healthuc.Healthy,
		Data: gen.HealthReport{
			Status:  gen.HealthReportStatus(report.Status),
			Backend: report.Backend,
			Checks:  checks,
		},
		Error: errMsg,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics.Handler().ServeHTTP(w, r)
}

// InvalidParamHandler renders parameter binding failures of the generated router.
func InvalidParamHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, gen.ErrorCodeBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: code,
	})
}

// validationHandler surfaces the violated constraint verbatim.
func validationHandler(w http.ResponseWriter, err error) bool {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	writeError(w, http.StatusBadRequest, gen.ErrorCodeValidationFailed, ve.Message)
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := sentinel.Error()
		if errors.Is(sentinel, domain.ErrAlreadyExists) {
			msg = err.Error()
		}
		writeError(w, status, code, msg)
		return true
	}
}

// internalHandler passes the collaborator message through for diagnosis.
func (s *Server) internalHandler(w http.ResponseWriter, err error) bool {
	var ie *domain.InternalError
	if !errors.As(err, &ie) {
		return false
	}
	s.logger.Error("internal error", zap.String("op", ie.Op), zap.Error(ie.Err))
	writeError(w, http.StatusInternalServerError, gen.ErrorCodeInternalError, ie.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorCodeInternalError, err.Error())
}

func matchToGen(m match.Result) gen.SystemMatchResult {
	tags := m.MatchedTags()
	if tags == nil {
		tags = []string{}
	}
	return gen.SystemMatchResult{
		SystemId:       m.SystemID(),
		SystemName:     m.SystemName(),
		RelevanceScore: m.RelevanceScore(),
		MatchedTags:    tags,
	}
}

func systemToGen(d *domsys.Document) gen.SystemDocument {
	return gen.SystemDocument{
		Id:           d.ID(),
		ProjectId:    d.ProjectID(),
		Name:         d.Name(),
		Category:     d.Category(),
		Tags:         nonNil(d.Tags()),
		Content:      d.Content(),
		Dependencies: nonNil(d.Dependencies()),
		CreatedAt:    formatMillis(d.CreatedAt()),
		UpdatedAt:    formatMillis(d.UpdatedAt()),
	}
}

func patchFromGen(req gen.UpdateSystemRequest) domsys.Patch {
	p := domsys.Patch{
		Name:     req.Name,
		Category: req.Category,
		Content:  req.Content,
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
		p.SetTags = true
	}
	if req.Dependencies != nil {
		p.Dependencies = *req.Dependencies
		p.SetDependencies = true
	}
	return p
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(timestampLayout)
}

func deref(p *[]string) []string {
	if p == nil {
		return nil
	}
	return *p
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
