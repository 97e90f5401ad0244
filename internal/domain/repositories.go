package domain

import "context"

// CatalogRepository is the read-only external movie catalog.
// Each call issues exactly one request; no caching, no retries.
type CatalogRepository interface {
	// Search returns one page of results for query. page is 1-based.
	Search(ctx context.Context, query string, page int) (ResultPage, error)

	// FetchDetail returns the full record for a catalog id
	FetchDetail(ctx context.Context, id string) (MovieDetail, error)
}

// PrefsStore persists favorites and query history in the local key-value store
type PrefsStore interface {
	// GetFavorites returns stored favorites; false if absent or unparseable
	GetFavorites() ([]Record, bool)
	SaveFavorites(records []Record) error

	// GetHistory returns recent queries, most recent first
	GetHistory() ([]string, bool)
	SaveHistory(queries []string) error

	Close() error
}
