// Package query implements the intent resolution and ranking pipeline:
// classify the text, issue exactly one catalog read, rank or truncate the
// records per intent, and assemble the answer.
package query

import (
	"context"
	"fmt"

	"github.com/faunadex/faunadex/internal/domain"
)

const defaultTopK = 3

// Service runs the query pipeline. It performs no internal concurrency and
// never retries: a failed catalog read is reported to the caller as-is.
type Service struct {
	repo Repository
	topK int
}

// New creates a query service.
func New(repo Repository) *Service {
	return &Service{repo: repo, topK: defaultTopK}
}

// WithTopK overrides the ranked-intent truncation bound.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// Process answers one query. Errors are typed: callers can match
// domain.ErrBackendUnavailable to degrade to an empty answer (see
// DegradedAnswer) and domain.ErrMissingScore to surface data corruption.
func (s *Service) Process(ctx context.Context, text string) (domain.Answer, error) {
	intent := Classify(text)

	animals, err := s.retrieve(ctx, intent)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("resolve %s: %w", intent.Label(), err)
	}

	switch intent {
	case domain.MostTrainable:
		animals = truncate(rankBy(animals, byTrainability, descending), s.topK)
	case domain.LeastTrainable:
		animals = truncate(rankBy(animals, byTrainability, ascending), s.topK)
	case domain.MostEndangered:
		animals = truncate(rankBy(animals, byEndangerment, descending), s.topK)
	case domain.LeastEndangered:
		animals = truncate(rankBy(animals, byEndangerment, ascending), s.topK)
	}

	return buildAnswer(intent, animals), nil
}

// retrieve issues the single backend call for the intent. Wild/tame
// filtering is delegated entirely to the repository's attribute filter.
func (s *Service) retrieve(ctx context.Context, intent domain.Intent) ([]domain.Animal, error) {
	switch intent {
	case domain.WildAnimals:
		return s.repo.FetchByWildness(ctx, domain.Wild)
	case domain.TameAnimals:
		return s.repo.FetchByWildness(ctx, domain.Tame)
	default:
		return s.repo.FetchAll(ctx)
	}
}

// DegradedAnswer is the empty-set answer for an intent, used when a caller
// chooses to mask a backend failure instead of surfacing it.
func DegradedAnswer(text string) domain.Answer {
	return buildAnswer(Classify(text), nil)
}
