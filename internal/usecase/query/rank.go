package query

import (
	"sort"

	"github.com/faunadex/faunadex/internal/domain"
)

// metric selects the numeric field a ranked intent sorts by.
type metric int

const (
	byTrainability metric = iota
	byEndangerment
)

// order selects the sort direction.
type order int

const (
	ascending order = iota
	descending
)

// rankBy returns a copy of animals stably sorted by the given metric.
// Ties preserve the backend-determined input order.
func rankBy(animals []domain.Animal, m metric, o order) []domain.Animal {
	ranked := make([]domain.Animal, len(animals))
	copy(ranked, animals)

	score := func(a domain.Animal) float64 {
		if m == byEndangerment {
			return a.Endangerment
		}
		return a.Trainability
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if o == descending {
			return score(ranked[i]) > score(ranked[j])
		}
		return score(ranked[i]) < score(ranked[j])
	})

	return ranked
}

// truncate bounds the ranked sequence to at most k records.
func truncate(animals []domain.Animal, k int) []domain.Animal {
	if len(animals) > k {
		return animals[:k]
	}
	return animals
}
