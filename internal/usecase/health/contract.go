package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks that the animal catalog index exists.
type CatalogChecker interface {
	IndexExists(ctx context.Context, name string) (bool, error)
}
