package query

import (
	"context"

	"github.com/faunadex/faunadex/internal/domain"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	byWildness   map[domain.Wildness][]domain.Animal
	all          []domain.Animal
	err          error
	wildnessCall *domain.Wildness
	allCalled    bool
}

func (m *mockRepo) FetchByWildness(_ context.Context, w domain.Wildness) ([]domain.Animal, error) {
	m.wildnessCall = &w
	if m.err != nil {
		return nil, m.err
	}
	return m.byWildness[w], nil
}

func (m *mockRepo) FetchAll(_ context.Context) ([]domain.Animal, error) {
	m.allCalled = true
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}
