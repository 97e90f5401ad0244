package tui

import (
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func batmanPage(page int) domain.ResultPage {
	return domain.ResultPage{
		Query: "batman",
		Items: []domain.MovieSummary{
			{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Poster: "https://img/begins.jpg"},
			{ID: "tt0096895", Title: "Batman", Year: "1989", Poster: "N/A"},
		},
		PageNumber:   page,
		TotalResults: 23,
	}
}

func TestProjectEmpty(t *testing.T) {
	scr := Project(session.State{}, UIState{Focus: FocusSearch})

	assert.Equal(t, ModeEmpty, scr.Mode)
	assert.False(t, scr.Pager.Visible)
	assert.Empty(t, scr.Results)
	assert.Nil(t, scr.Detail)
	assert.True(t, scr.Search.Focused)
	assert.Equal(t, 0, scr.Favorites.Total)
}

func TestProjectListFirstPage(t *testing.T) {
	st := session.State{
		Query:     "batman",
		Results:   batmanPage(1),
		Favorites: domain.NewFavorites(domain.MovieSummary{ID: "tt0096895", Title: "Batman"}),
	}
	scr := Project(st, UIState{Focus: FocusResults, ResultCursor: 1})

	require.Equal(t, ModeList, scr.Mode)
	require.Len(t, scr.Results, 2)

	assert.Equal(t, "Batman Begins (2005)", scr.Results[0].Title)
	assert.Equal(t, "https://img/begins.jpg", scr.Results[0].Poster)
	assert.False(t, scr.Results[0].Favorite)
	assert.False(t, scr.Results[0].Cursor)

	assert.Equal(t, domain.PlaceholderPosterURL, scr.Results[1].Poster)
	assert.True(t, scr.Results[1].Favorite)
	assert.True(t, scr.Results[1].Cursor)

	p := scr.Pager
	assert.True(t, p.Visible)
	assert.Equal(t, "Page 1 of 3", p.Label)
	assert.False(t, p.First.Enabled)
	assert.False(t, p.Prev.Enabled)
	assert.True(t, p.Next.Enabled)
	assert.True(t, p.Last.Enabled)
	assert.Equal(t, 2, p.Next.Page)
	assert.Equal(t, 3, p.Last.Page)
}

func TestProjectListLastPage(t *testing.T) {
	scr := Project(session.State{Results: batmanPage(3)}, UIState{})

	assert.Equal(t, "Page 3 of 3", scr.Pager.Label)
	assert.True(t, scr.Pager.First.Enabled)
	assert.True(t, scr.Pager.Prev.Enabled)
	assert.Equal(t, 2, scr.Pager.Prev.Page)
	assert.False(t, scr.Pager.Next.Enabled)
	assert.False(t, scr.Pager.Last.Enabled)
}

func TestProjectCursorHiddenWithoutFocus(t *testing.T) {
	scr := Project(session.State{Results: batmanPage(1)}, UIState{Focus: FocusSearch})

	for _, c := range scr.Results {
		assert.False(t, c.Cursor)
	}
}

func TestProjectDetail(t *testing.T) {
	detail := domain.MovieDetail{
		MovieSummary: domain.MovieSummary{ID: "tt0468569", Title: "The Dark Knight", Year: "2008", Poster: "N/A"},
		Director:     "Christopher Nolan",
		Actors:       "Christian Bale, Heath Ledger",
		Runtime:      "N/A",
		Rating:       "9.0",
		Plot:         "Batman faces the Joker.",
	}
	st := session.State{
		Results:   batmanPage(1),
		Selected:  &detail,
		Favorites: domain.NewFavorites(detail),
	}
	scr := Project(st, UIState{Focus: FocusResults})

	require.Equal(t, ModeDetail, scr.Mode)
	require.NotNil(t, scr.Detail)
	assert.Equal(t, "The Dark Knight (2008)", scr.Detail.Title)
	assert.Equal(t, domain.PlaceholderPosterURL, scr.Detail.Poster)
	assert.True(t, scr.Detail.Favorite)
	assert.Equal(t, "Batman faces the Joker.", scr.Detail.Plot)
	assert.Equal(t, []DetailField{
		{"Director", "Christopher Nolan"},
		{"Actors", "Christian Bale, Heath Ledger"},
		{"Rating", "9.0"},
	}, scr.Detail.Fields)

	// Results stay projected behind the detail panel
	assert.Len(t, scr.Results, 2)
}

func TestProjectFavoritesFilter(t *testing.T) {
	favs := domain.NewFavorites(
		domain.MovieSummary{ID: "tt1", Title: "The Dark Knight", Year: "2008"},
		domain.MovieSummary{ID: "tt2", Title: "Inception", Year: "2010"},
		domain.MovieDetail{MovieSummary: domain.MovieSummary{ID: "tt3", Title: "Dark City", Year: "1998"}},
	)

	scr := Project(session.State{Favorites: favs}, UIState{Focus: FocusFavorites, Filter: "dark"})

	grid := scr.Favorites
	assert.Equal(t, 3, grid.Total)
	assert.True(t, grid.Focused)
	require.Len(t, grid.Cards, 2)
	ids := []string{grid.Cards[0].ID, grid.Cards[1].ID}
	assert.ElementsMatch(t, []string{"tt1", "tt3"}, ids)
	for _, c := range grid.Cards {
		assert.True(t, c.Favorite)
		assert.Len(t, c.MatchedIndexes, len("dark"))
	}
	assert.True(t, grid.Cards[0].Cursor)
}

func TestProjectFavoritesUnfilteredKeepsOrder(t *testing.T) {
	favs := domain.NewFavorites(
		domain.MovieSummary{ID: "tt2", Title: "Inception"},
		domain.MovieSummary{ID: "tt1", Title: "Memento"},
	)
	scr := Project(session.State{Favorites: favs}, UIState{})

	require.Len(t, scr.Favorites.Cards, 2)
	assert.Equal(t, "tt2", scr.Favorites.Cards[0].ID)
	assert.Equal(t, "tt1", scr.Favorites.Cards[1].ID)
	assert.False(t, scr.Favorites.Cards[0].Cursor)
}

func TestProjectSuggestionsOnlyWhileTyping(t *testing.T) {
	st := session.State{Query: "dark"}
	history := []string{"the dark knight", "inception", "dark city"}

	focused := Project(st, UIState{Focus: FocusSearch, History: history})
	assert.ElementsMatch(t, []string{"the dark knight", "dark city"}, focused.Search.Suggestions)

	blurred := Project(st, UIState{Focus: FocusResults, History: history})
	assert.Empty(t, blurred.Search.Suggestions)
}

func TestProjectStatus(t *testing.T) {
	st := session.State{Status: domain.OperationStatus{Error: "Movie not found!"}}
	scr := Project(st, UIState{})

	assert.Equal(t, ModeEmpty, scr.Mode)
	assert.Equal(t, StatusLine{Error: "Movie not found!"}, scr.Status)
}

func TestPagerButtonsStayInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 300).Draw(t, "total")
		pages := (total + domain.PageSize - 1) / domain.PageSize
		page := rapid.IntRange(1, pages).Draw(t, "page")

		p := projectPager(domain.ResultPage{Query: "q", PageNumber: page, TotalResults: total})

		require.True(t, p.Visible)
		require.Equal(t, page > 1, p.First.Enabled)
		require.Equal(t, page > 1, p.Prev.Enabled)
		require.Equal(t, page < pages, p.Next.Enabled)
		require.Equal(t, page < pages, p.Last.Enabled)
		for _, b := range p.Buttons() {
			if b.Enabled {
				require.GreaterOrEqual(t, b.Page, 1)
				require.LessOrEqual(t, b.Page, pages)
				require.NotEqual(t, page, b.Page)
			}
		}
	})
}
