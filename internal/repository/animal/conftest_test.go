package animal

import (
	"context"

	"github.com/faunadex/faunadex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchListFn func(
		ctx context.Context, index, query string, offset, limit int, fields []string,
	) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) SearchList(
	ctx context.Context, index, query string, offset, limit int, fields []string,
) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, index, query, offset, limit, fields)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func entry(key string, fields map[string]string) db.SearchEntry {
	return db.SearchEntry{Key: key, Fields: fields}
}

func dogFields() map[string]string {
	return map[string]string{
		"creature":     "Dog",
		"is_wild":      "no",
		"trainability": "0.9",
		"endangerment": "0.1",
	}
}

func eagleFields() map[string]string {
	return map[string]string{
		"creature":     "Eagle",
		"is_wild":      "yes",
		"trainability": "0.7",
		"endangerment": "0.3",
	}
}
