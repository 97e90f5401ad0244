package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source/omdb"
	"github.com/mmcdole/reel/internal/domain"
)

// NewCatalog creates the catalog client described by the catalog config
func NewCatalog(cfg *adapter.CatalogConfig, logger *slog.Logger) (domain.CatalogRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("catalog config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("catalog URL is required")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid catalog URL: %s", cfg.URL)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("catalog API key is required")
	}

	return omdb.NewClient(cfg.URL, cfg.APIKey, cfg.Timeout, logger), nil
}
