package service

import (
	"log/slog"

	"github.com/mmcdole/reel/internal/domain"
)

// FavoritesService persists the favorites set to the local store.
// Storage failures are logged and never returned to callers.
type FavoritesService struct {
	store  domain.PrefsStore
	logger *slog.Logger
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(store domain.PrefsStore, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesService{
		store:  store,
		logger: logger,
	}
}

// Load returns the stored favorites, or an empty set when nothing usable is stored
func (s *FavoritesService) Load() domain.Favorites {
	records, ok := s.store.GetFavorites()
	if !ok {
		s.logger.Debug("no stored favorites")
		return domain.Favorites{}
	}

	favs := domain.NewFavorites(records...)
	if favs.Len() != len(records) {
		s.logger.Warn("dropped duplicate or invalid stored favorites", "stored", len(records), "kept", favs.Len())
	}
	s.logger.Debug("favorites loaded", "count", favs.Len())
	return favs
}

// Save writes the full set. Called after every favorites mutation.
func (s *FavoritesService) Save(favs domain.Favorites) {
	if err := s.store.SaveFavorites(favs.Items()); err != nil {
		s.logger.Warn("failed to save favorites", "error", err, "count", favs.Len())
		return
	}
	s.logger.Debug("favorites saved", "count", favs.Len())
}
