// Package seed creates the catalog index and loads the canonical animal
// records into the backing store.
package seed

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/faunadex/faunadex/internal/db"
	"github.com/faunadex/faunadex/internal/domain"
)

// Catalog is the canonical animal data set. The profile vector of each
// record is [trainability, endangerment]; the numeric hash fields mirror it.
var Catalog = []domain.Animal{
	{Creature: "Dog", Wildness: domain.Tame, Trainability: 0.9, Endangerment: 0.1},
	{Creature: "Elephant", Wildness: domain.Wild, Trainability: 0.7, Endangerment: 0.8},
	{Creature: "Eagle", Wildness: domain.Wild, Trainability: 0.7, Endangerment: 0.3},
	{Creature: "Shark", Wildness: domain.Wild, Trainability: 0.1, Endangerment: 0.6},
	{Creature: "Kangaroo", Wildness: domain.Wild, Trainability: 0.3, Endangerment: 0.1},
	{Creature: "Cat", Wildness: domain.Tame, Trainability: 0.3, Endangerment: 0.1},
	{Creature: "Pachyderm", Wildness: domain.Wild, Trainability: 0.4, Endangerment: 0.8},
	{Creature: "Mastadon", Wildness: domain.Wild, Trainability: 0.2, Endangerment: 0.9},
}

// store is the consumer interface for seeding (ISP).
type store interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
}

// Loader seeds the catalog into the store.
type Loader struct {
	store      store
	keyPrefix  string
	collection string
}

// New creates a Loader.
func New(s store, keyPrefix, collection string) *Loader {
	return &Loader{store: s, keyPrefix: keyPrefix, collection: collection}
}

// EnsureIndex creates the catalog FT index; an already existing index is not
// an error.
func (l *Loader) EnsureIndex(ctx context.Context) error {
	def, err := db.NewIndex(l.indexName()).
		Prefix(l.docPrefix()).
		Tag("is_wild").
		Tag("creature").
		Numeric("trainability").
		Numeric("endangerment").
		Vector("profile", 2, db.DistanceCosine).
		Build()
	if err != nil {
		return fmt.Errorf("build index definition: %w", err)
	}

	if err := l.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", def.Name, err)
	}
	return nil
}

// Load upserts the given animals in one pipelined round-trip.
func (l *Loader) Load(ctx context.Context, animals []domain.Animal) error {
	items := lo.Map(animals, func(a domain.Animal, i int) db.HashSetItem {
		return db.HashSetItem{
			Key:    fmt.Sprintf("%s%d", l.docPrefix(), i+1),
			Fields: recordFields(a),
		}
	})

	if err := l.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("load %d records: %w", len(items), err)
	}
	return nil
}

func (l *Loader) indexName() string {
	return fmt.Sprintf("%s%s:idx", l.keyPrefix, l.collection)
}

func (l *Loader) docPrefix() string {
	return fmt.Sprintf("%s%s:", l.keyPrefix, l.collection)
}

func recordFields(a domain.Animal) map[string]string {
	return map[string]string{
		"creature":     a.Creature,
		"is_wild":      string(a.Wildness),
		"trainability": strconv.FormatFloat(a.Trainability, 'g', -1, 64),
		"endangerment": strconv.FormatFloat(a.Endangerment, 'g', -1, 64),
		"profile":      profileBlob(a),
	}
}

// profileBlob encodes the [trainability, endangerment] vector as the
// little-endian FLOAT32 blob FT vector fields expect.
func profileBlob(a domain.Animal) string {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(float32(a.Trainability)))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(float32(a.Endangerment)))
	return string(buf)
}
