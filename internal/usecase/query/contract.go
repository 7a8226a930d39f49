package query

import (
	"context"

	"github.com/faunadex/faunadex/internal/domain"
)

// Repository defines the catalog read contract the pipeline depends on.
// Both operations report backend failures as typed errors so callers can
// tell "backend down" apart from "zero matching records".
type Repository interface {
	// FetchByWildness returns animals matching the categorical attribute.
	FetchByWildness(ctx context.Context, w domain.Wildness) ([]domain.Animal, error)
	// FetchAll returns one page of the catalog. Ranked intents operate over
	// at most that page.
	FetchAll(ctx context.Context) ([]domain.Animal, error)
}
