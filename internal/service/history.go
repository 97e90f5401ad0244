package service

import (
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

const defaultHistorySize = 20

// HistoryService keeps the most recently submitted search queries
type HistoryService struct {
	store  domain.PrefsStore
	logger *slog.Logger
	limit  int

	queries []string // Most recent first
}

// NewHistoryService creates a history service and loads stored queries.
// limit <= 0 uses the default size.
func NewHistoryService(store domain.PrefsStore, limit int, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	if limit <= 0 {
		limit = defaultHistorySize
	}

	s := &HistoryService{
		store:  store,
		logger: logger,
		limit:  limit,
	}
	if queries, ok := store.GetHistory(); ok {
		s.queries = normalizeHistory(queries, limit)
	}
	return s
}

// Recent returns stored queries, most recent first
func (s *HistoryService) Recent() []string {
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

// Record moves query to the front of the history and persists it.
// Matching is case-insensitive; blank queries are ignored.
func (s *HistoryService) Record(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.queries = normalizeHistory(append([]string{query}, s.queries...), s.limit)
	if err := s.store.SaveHistory(s.queries); err != nil {
		s.logger.Warn("failed to save history", "error", err)
	}
}

// Clear forgets all stored queries
func (s *HistoryService) Clear() {
	s.queries = nil
	if err := s.store.SaveHistory(nil); err != nil {
		s.logger.Warn("failed to clear history", "error", err)
	}
}

// normalizeHistory drops blanks and case-insensitive duplicates, keeping the first, capped at limit
func normalizeHistory(queries []string, limit int) []string {
	seen := make(map[string]bool, len(queries))
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		key := strings.ToLower(q)
		if q == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out
}
