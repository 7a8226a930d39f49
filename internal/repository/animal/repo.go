// Package animal implements the catalog record repository over the FT-indexed
// hash store. It is the only layer that knows the backend field encoding,
// including the "yes"/"no" wildness literals.
package animal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/faunadex/faunadex/internal/db"
	"github.com/faunadex/faunadex/internal/domain"
)

// Backend hash field names. is_wild carries the literal strings "yes"/"no";
// that encoding is shared with the seeder and must not drift.
const (
	fieldCreature     = "creature"
	fieldIsWild       = "is_wild"
	fieldTrainability = "trainability"
	fieldEndangerment = "endangerment"
)

// store is the consumer interface for catalog reads (ISP).
type store interface {
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements usecase/query.Repository.
type Repo struct {
	store      store
	keyPrefix  string
	collection string
	pageSize   int
}

// New creates an animal repository. pageSize bounds FetchAll; ranking-based
// intents never see more than one page of the catalog.
func New(s store, keyPrefix, collection string, pageSize int) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, collection: collection, pageSize: pageSize}
}

var returnFields = []string{fieldCreature, fieldIsWild, fieldTrainability, fieldEndangerment}

// FetchByWildness returns animals whose wildness attribute equals w,
// filtered by the backend's TAG index rather than in-process.
func (r *Repo) FetchByWildness(ctx context.Context, w domain.Wildness) ([]domain.Animal, error) {
	query := fmt.Sprintf("@%s:{%s}", fieldIsWild, string(w))

	sr, err := r.store.SearchList(ctx, r.indexName(), query, 0, r.pageSize, returnFields)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch by wildness %q: %w", domain.ErrBackendUnavailable, w, err)
	}
	return r.parseEntries(sr)
}

// FetchAll returns one page of the full catalog.
func (r *Repo) FetchAll(ctx context.Context) ([]domain.Animal, error) {
	sr, err := r.store.SearchList(ctx, r.indexName(), "*", 0, r.pageSize, returnFields)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch all: %w", domain.ErrBackendUnavailable, err)
	}
	return r.parseEntries(sr)
}

// Count returns the catalog size.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("%w: count: %w", domain.ErrBackendUnavailable, err)
	}
	return n, nil
}

func (r *Repo) indexName() string {
	return fmt.Sprintf("%s%s:idx", r.keyPrefix, r.collection)
}

func (r *Repo) parseEntries(sr *db.SearchResult) ([]domain.Animal, error) {
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	animals := make([]domain.Animal, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		a, err := parseAnimal(entry.Fields)
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, nil
}

// parseAnimal converts hash fields into a domain record. A record without
// a numeric score fails the whole read: ranking over fabricated zeros would
// silently corrupt answers.
func parseAnimal(fields map[string]string) (domain.Animal, error) {
	creature := fields[fieldCreature]
	if creature == "" {
		return domain.Animal{}, fmt.Errorf("%w: record has no %s field", domain.ErrBackendUnavailable, fieldCreature)
	}

	trainability, err := parseScore(creature, fieldTrainability, fields)
	if err != nil {
		return domain.Animal{}, err
	}
	endangerment, err := parseScore(creature, fieldEndangerment, fields)
	if err != nil {
		return domain.Animal{}, err
	}

	return domain.Animal{
		Creature:     creature,
		Wildness:     domain.Wildness(fields[fieldIsWild]),
		Trainability: trainability,
		Endangerment: endangerment,
	}, nil
}

func parseScore(creature, field string, fields map[string]string) (float64, error) {
	raw, ok := fields[field]
	if !ok || raw == "" {
		return 0, domain.NewMissingScore(creature, field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s of %q: %w", field, creature, domain.NewMissingScore(creature, field))
	}
	return v, nil
}
