package tui

import (
	"fmt"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/search"
	"github.com/mmcdole/reel/internal/session"
)

const maxSuggestions = 5

// Focus identifies the pane receiving keyboard input
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusFavorites
)

// Mode is what the main pane shows
type Mode int

const (
	ModeEmpty Mode = iota
	ModeList
	ModeDetail
)

// UIState is the presentation state that does not belong to the session:
// focus, cursors, the favorites filter and the query history.
type UIState struct {
	Focus          Focus
	ResultCursor   int
	FavoriteCursor int
	Filter         string
	Filtering      bool // Filter input has focus
	History        []string
}

// Screen is everything the view renders. It is derived from state only.
type Screen struct {
	Search    SearchForm
	Status    StatusLine
	Mode      Mode
	Results   []Card
	Pager     Pager
	Detail    *DetailPanel
	Favorites FavoritesGrid
}

// SearchForm is the query box and its history suggestions
type SearchForm struct {
	Query       string
	Focused     bool
	Suggestions []string
}

// StatusLine reflects the last async operation
type StatusLine struct {
	Loading bool
	Error   string
}

// Card is one movie tile in the result or favorites grid
type Card struct {
	ID             string
	Title          string // "Title (Year)"
	Poster         string // Placeholder substituted when unavailable
	Favorite       bool
	Cursor         bool
	MatchedIndexes []int
}

// Button is a pagination control
type Button struct {
	Label   string
	Page    int
	Enabled bool
}

// Pager holds the four pagination controls and the page label
type Pager struct {
	Visible bool
	Label   string // "Page X of Y"
	First   Button
	Prev    Button
	Next    Button
	Last    Button
}

// Buttons returns the controls in display order
func (p Pager) Buttons() []Button {
	return []Button{p.First, p.Prev, p.Next, p.Last}
}

// DetailPanel is the full record of the selected movie
type DetailPanel struct {
	ID       string
	Title    string
	Poster   string
	Favorite bool
	Fields   []DetailField
	Plot     string
}

// DetailField is one labelled line of the detail panel
type DetailField struct {
	Label string
	Value string
}

// FavoritesGrid is the favorites pane
type FavoritesGrid struct {
	Filter    string
	Filtering bool
	Focused   bool
	Cards     []Card
	Total     int // Favorites before filtering
}

// Project derives the screen from the session state and UI state
func Project(st session.State, ui UIState) Screen {
	scr := Screen{
		Search: SearchForm{
			Query:   st.Query,
			Focused: ui.Focus == FocusSearch,
		},
		Status: StatusLine{
			Loading: st.Status.Loading,
			Error:   st.Status.Error,
		},
		Pager: projectPager(st.Results),
	}
	if scr.Search.Focused {
		scr.Search.Suggestions = search.Suggest(st.Query, ui.History, maxSuggestions)
	}

	switch {
	case st.DetailMode():
		scr.Mode = ModeDetail
		scr.Detail = projectDetail(*st.Selected, st.Favorites)
	case !st.Results.IsEmpty():
		scr.Mode = ModeList
	default:
		scr.Mode = ModeEmpty
	}

	for i, item := range st.Results.Items {
		scr.Results = append(scr.Results, Card{
			ID:       item.ID,
			Title:    item.DisplayTitle(),
			Poster:   item.PosterURL(),
			Favorite: st.Favorites.Contains(item.ID),
			Cursor:   ui.Focus == FocusResults && i == ui.ResultCursor,
		})
	}

	scr.Favorites = projectFavorites(st.Favorites, ui)
	return scr
}

func projectPager(page domain.ResultPage) Pager {
	total := page.TotalPages()
	if total == 0 {
		return Pager{}
	}
	return Pager{
		Visible: true,
		Label:   fmt.Sprintf("Page %d of %d", page.PageNumber, total),
		First:   Button{Label: "«", Page: 1, Enabled: page.HasPrev()},
		Prev:    Button{Label: "‹", Page: page.PageNumber - 1, Enabled: page.HasPrev()},
		Next:    Button{Label: "›", Page: page.PageNumber + 1, Enabled: page.HasNext()},
		Last:    Button{Label: "»", Page: total, Enabled: page.HasNext()},
	}
}

func projectDetail(d domain.MovieDetail, favs domain.Favorites) *DetailPanel {
	panel := &DetailPanel{
		ID:       d.ID,
		Title:    d.DisplayTitle(),
		Poster:   d.PosterURL(),
		Favorite: favs.Contains(d.ID),
		Plot:     d.Plot,
	}
	for _, f := range []DetailField{
		{"Director", d.Director},
		{"Actors", d.Actors},
		{"Genre", d.Genre},
		{"Runtime", d.Runtime},
		{"Rating", d.Rating},
	} {
		if f.Value != "" && f.Value != domain.PosterUnavailable {
			panel.Fields = append(panel.Fields, f)
		}
	}
	return panel
}

func projectFavorites(favs domain.Favorites, ui UIState) FavoritesGrid {
	grid := FavoritesGrid{
		Filter:    ui.Filter,
		Filtering: ui.Filtering,
		Focused:   ui.Focus == FocusFavorites,
		Total:     favs.Len(),
	}
	for i, res := range search.FilterFavorites(ui.Filter, favs.Items()) {
		summary := domain.SummaryOf(res.Record)
		grid.Cards = append(grid.Cards, Card{
			ID:             summary.ID,
			Title:          summary.DisplayTitle(),
			Poster:         summary.PosterURL(),
			Favorite:       true,
			Cursor:         grid.Focused && i == ui.FavoriteCursor,
			MatchedIndexes: res.MatchedIndexes,
		})
	}
	return grid
}
