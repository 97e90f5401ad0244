package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/reel/internal/domain"
)

// FilterResult is a favorite that matched a filter query
type FilterResult struct {
	Record         domain.Record
	MatchedIndexes []int // Rune positions in the title that matched
	Score          int   // Higher is better
}

// FilterIndex implements sahilm/fuzzy.Source over favorite titles
type FilterIndex struct {
	records     []domain.Record
	lowerTitles []string // Pre-computed lowercase titles
}

// NewFilterIndex builds an index over records
func NewFilterIndex(records []domain.Record) *FilterIndex {
	idx := &FilterIndex{
		records:     records,
		lowerTitles: make([]string, len(records)),
	}
	for i, r := range records {
		idx.lowerTitles[i] = strings.ToLower(r.GetTitle())
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *FilterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of records (implements fuzzy.Source)
func (idx *FilterIndex) Len() int { return len(idx.records) }

// FilterFavorites fuzzy-matches query against favorite titles.
// An empty query returns every record in its original order.
func FilterFavorites(query string, records []domain.Record) []FilterResult {
	query = strings.TrimSpace(query)
	if query == "" {
		results := make([]FilterResult, len(records))
		for i, r := range records {
			results[i] = FilterResult{Record: r}
		}
		return results
	}

	idx := NewFilterIndex(records)
	matches := sfuzzy.FindFrom(strings.ToLower(query), idx)

	results := make([]FilterResult, len(matches))
	for i, match := range matches {
		results[i] = FilterResult{
			Record:         idx.records[match.Index],
			MatchedIndexes: runePositions(match.Str, match.MatchedIndexes),
			Score:          match.Score,
		}
	}
	return results
}

// runePositions converts byte offsets into s to rune positions. Lowercasing
// keeps the rune count but not always the byte length, so positions carry
// over to the original-case title.
func runePositions(s string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	want := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		want[o] = true
	}
	out := make([]int, 0, len(offsets))
	pos := 0
	for i := range s {
		if want[i] {
			out = append(out, pos)
		}
		pos++
	}
	return out
}

// Suggest returns up to limit history entries that fuzzy-match prefix,
// closest first. Entries equal to prefix are skipped.
func Suggest(prefix string, history []string, limit int) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || limit <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(prefix, history)
	sort.Stable(ranks)

	suggestions := make([]string, 0, limit)
	for _, rank := range ranks {
		if strings.EqualFold(rank.Target, prefix) {
			continue
		}
		suggestions = append(suggestions, rank.Target)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
