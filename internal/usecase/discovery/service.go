package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sysdisco/internal/domain"
	"github.com/kailas-cloud/sysdisco/internal/domain/keyword"
	"github.com/kailas-cloud/sysdisco/internal/domain/match"
	"github.com/kailas-cloud/sysdisco/internal/logger"
)

// Outcome classifies a finished discovery call.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeValidation Outcome = "validation_error"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeInternal   Outcome = "internal_error"
)

// Result is the payload of a successful discovery.
type Result struct {
	Recommendations  []match.Result
	IsAIGenerated    bool
	AnalyzedKeywords []string
}

// Service recommends existing system documents for a feature description.
type Service struct {
	projects ProjectReader
	systems  SystemLister
	observer Observer
	maxRes   int
}

// Option configures a Service.
type Option func(*Service)

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithMaxResults overrides the recommendation cap.
func WithMaxResults(n int) Option {
	return func(s *Service) { s.maxRes = n }
}

// New creates a discovery service.
func New(projects ProjectReader, systems SystemLister, opts ...Option) *Service {
	s := &Service{projects: projects, systems: systems, maxRes: match.DefaultMaxResults}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Discover validates featureText, resolves the project and its systems,
// extracts keywords and matches them against system tags.
//
// A nil featureText means the field was absent or not a string.
// Errors: *domain.ValidationError (featureText), domain.ErrProjectNotFound,
// *domain.InternalError for any storage failure.
func (s *Service) Discover(ctx context.Context, projectID string, featureText *string) (Result, error) {
	start := time.Now()
	res, err := s.discover(ctx, projectID, featureText)
	s.observe(ctx, projectID, res, err, time.Since(start))
	return res, err
}

func (s *Service) discover(ctx context.Context, projectID string, featureText *string) (Result, error) {
	if featureText == nil || *featureText == "" {
		return Result{}, domain.NewValidation("featureText", "featureText is required")
	}
	if utf8.RuneCountInString(*featureText) < keyword.MinTextLength {
		return Result{}, domain.NewValidation("featureText",
			fmt.Sprintf("featureText must be at least %d characters", keyword.MinTextLength))
	}

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Result{}, domain.ErrProjectNotFound
		}
		return Result{}, domain.NewInternal("failed to discover systems", err)
	}

	systems, err := s.systems.ListByProject(ctx, projectID)
	if err != nil {
		return Result{}, domain.NewInternal("failed to discover systems", err)
	}

	keywords := keyword.Extract(*featureText)
	return Result{
		Recommendations:  match.Systems(keywords, systems, s.maxRes),
		IsAIGenerated:    false,
		AnalyzedKeywords: keyword.Strings(keywords),
	}, nil
}

func (s *Service) observe(ctx context.Context, projectID string, res Result, err error, took time.Duration) {
	outcome := classify(err)
	if s.observer != nil {
		s.observer.ObserveDiscovery(outcome, len(res.AnalyzedKeywords), len(res.Recommendations), took)
	}

	log := logger.FromContext(ctx).With(
		zap.String("project_id", projectID),
		zap.String("outcome", string(outcome)),
		zap.Duration("took", took),
	)
	if outcome == OutcomeInternal {
		log.Error("Discovery failed", zap.Error(err))
		return
	}
	log.Debug("Discovery completed",
		zap.Strings("keywords", res.AnalyzedKeywords),
		zap.Int("recommendations", len(res.Recommendations)),
	)
}

func classify(err error) Outcome {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &ve):
		return OutcomeValidation
	case errors.Is(err, domain.ErrProjectNotFound):
		return OutcomeNotFound
	default:
		return OutcomeInternal
	}
}
