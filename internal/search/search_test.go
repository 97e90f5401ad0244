package search

import (
	"strings"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favorites() []domain.Record {
	return []domain.Record{
		domain.MovieSummary{ID: "tt0372784", Title: "Batman Begins"},
		domain.MovieDetail{MovieSummary: domain.MovieSummary{ID: "tt0468569", Title: "The Dark Knight"}},
		domain.MovieSummary{ID: "tt0078748", Title: "Alien"},
	}
}

func TestFilterFavoritesEmptyQueryKeepsOrder(t *testing.T) {
	results := FilterFavorites("  ", favorites())
	require.Len(t, results, 3)
	assert.Equal(t, "tt0372784", results[0].Record.GetID())
	assert.Equal(t, "tt0078748", results[2].Record.GetID())
	assert.Empty(t, results[0].MatchedIndexes)
}

func TestFilterFavoritesMatchesCaseInsensitively(t *testing.T) {
	results := FilterFavorites("KNIGHT", favorites())
	require.Len(t, results, 1)
	assert.Equal(t, "tt0468569", results[0].Record.GetID())
	assert.Len(t, results[0].MatchedIndexes, len("knight"))
}

func TestFilterFavoritesReportsRunePositions(t *testing.T) {
	title := "İstanbul Nights"
	results := FilterFavorites("nights", []domain.Record{domain.MovieSummary{ID: "tt1", Title: title}})
	require.Len(t, results, 1)

	runes := []rune(title)
	var picked strings.Builder
	for _, i := range results[0].MatchedIndexes {
		require.Less(t, i, len(runes))
		picked.WriteRune(runes[i])
	}
	assert.Equal(t, "nights", strings.ToLower(picked.String()))
}

func TestFilterFavoritesFuzzy(t *testing.T) {
	results := FilterFavorites("btmn", favorites())
	require.Len(t, results, 1)
	assert.Equal(t, "Batman Begins", results[0].Record.GetTitle())
}

func TestFilterFavoritesNoMatch(t *testing.T) {
	assert.Empty(t, FilterFavorites("zzz", favorites()))
}

func TestSuggest(t *testing.T) {
	history := []string{"batman", "Batman Returns", "alien", "the batman"}

	got := Suggest("batman", history, 5)
	assert.Equal(t, []string{"the batman", "Batman Returns"}, got)

	assert.Equal(t, []string{"the batman"}, Suggest("batman", history, 1))
	assert.Nil(t, Suggest("", history, 5))
	assert.Empty(t, Suggest("zzz", history, 5))
}
