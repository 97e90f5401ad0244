package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	// Text inputs take every other key while focused
	if m.ui.Focus == FocusSearch {
		return m.handleSearchKey(msg)
	}
	if m.ui.Filtering {
		return m.handleFilterKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.focusPane(FocusSearch)
		return m, textinput.Blink

	case key.Matches(msg, Keys.NextFocus):
		m.cycleFocus()
		return m, nil
	}

	if m.ui.Focus == FocusFavorites {
		return m.handleFavoritesKey(msg)
	}
	return m.handleResultsKey(msg)
}

// handleSearchKey handles keys while the query box has focus
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Enter):
		m.machine.SetQuery(m.queryInput.Value())
		cmd := m.startSearch()
		if cmd != nil {
			m.focusPane(FocusResults)
		}
		return m, cmd

	case key.Matches(msg, Keys.Complete):
		if suggestions := m.screen().Search.Suggestions; len(suggestions) > 0 {
			m.queryInput.SetValue(suggestions[0])
			m.queryInput.CursorEnd()
			m.machine.SetQuery(suggestions[0])
			return m, nil
		}
		m.focusPane(FocusResults)
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.focusPane(FocusResults)
		return m, nil
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	m.machine.SetQuery(m.queryInput.Value())
	return m, cmd
}

// handleFilterKey handles keys while the favorites filter has focus
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Enter):
		m.ui.Filtering = false
		m.filterInput.Blur()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.clearFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.ui.Filter = m.filterInput.Value()
	m.ui.FavoriteCursor = 0
	return m, cmd
}

// handleResultsKey handles keys for the main pane
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.machine.State()

	if st.DetailMode() {
		switch {
		case key.Matches(msg, Keys.Back):
			m.machine.ClearSelection()
		case key.Matches(msg, Keys.Favorite):
			return m, m.toggleFavorite(*st.Selected)
		case key.Matches(msg, Keys.Poster, Keys.IMDb):
			return m, m.openFor(msg, st.Selected.Summary())
		}
		return m, nil
	}

	items := st.Results.Items
	pager := m.screen().Pager

	switch {
	case key.Matches(msg, Keys.Up):
		m.ui.ResultCursor = clamp(m.ui.ResultCursor-1, len(items))

	case key.Matches(msg, Keys.Down):
		m.ui.ResultCursor = clamp(m.ui.ResultCursor+1, len(items))

	case key.Matches(msg, Keys.Enter):
		if len(items) > 0 {
			return m, m.selectID(items[m.ui.ResultCursor].ID)
		}

	case key.Matches(msg, Keys.Favorite):
		if len(items) > 0 {
			return m, m.toggleFavorite(items[m.ui.ResultCursor])
		}

	case key.Matches(msg, Keys.Poster, Keys.IMDb):
		if len(items) > 0 {
			return m, m.openFor(msg, items[m.ui.ResultCursor])
		}

	case key.Matches(msg, Keys.FirstPage):
		return m, m.pressPager(pager.First)

	case key.Matches(msg, Keys.PrevPage):
		return m, m.pressPager(pager.Prev)

	case key.Matches(msg, Keys.NextPage):
		return m, m.pressPager(pager.Next)

	case key.Matches(msg, Keys.LastPage):
		return m, m.pressPager(pager.Last)

	case key.Matches(msg, Keys.Back):
		m.focusPane(FocusSearch)
		return m, textinput.Blink
	}
	return m, nil
}

// handleFavoritesKey handles keys for the favorites pane
func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.machine.State()
	cards := m.screen().Favorites.Cards

	switch {
	case key.Matches(msg, Keys.Up):
		m.ui.FavoriteCursor = clamp(m.ui.FavoriteCursor-1, len(cards))

	case key.Matches(msg, Keys.Down):
		m.ui.FavoriteCursor = clamp(m.ui.FavoriteCursor+1, len(cards))

	case key.Matches(msg, Keys.Enter):
		if len(cards) > 0 {
			return m, m.selectID(cards[m.ui.FavoriteCursor].ID)
		}

	case key.Matches(msg, Keys.Favorite):
		if len(cards) > 0 {
			if rec, ok := st.Favorites.Get(cards[m.ui.FavoriteCursor].ID); ok {
				return m, m.toggleFavorite(rec)
			}
		}

	case key.Matches(msg, Keys.Poster, Keys.IMDb):
		if len(cards) > 0 {
			if rec, ok := st.Favorites.Get(cards[m.ui.FavoriteCursor].ID); ok {
				return m, m.openFor(msg, domain.SummaryOf(rec))
			}
		}

	case key.Matches(msg, Keys.Filter):
		m.ui.Filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, Keys.Back):
		if m.ui.Filter != "" {
			m.clearFilter()
		} else {
			m.machine.ClearSelection()
		}
	}
	return m, nil
}

// openFor opens the poster or the IMDb page of movie, depending on the key
func (m *Model) openFor(msg tea.KeyMsg, movie domain.MovieSummary) tea.Cmd {
	if key.Matches(msg, Keys.IMDb) {
		return m.open(adapter.IMDbTitleURL(movie.ID))
	}
	if !movie.HasPoster() {
		m.notice = "No poster available"
		return ClearStatusCmd(3 * time.Second)
	}
	return m.open(movie.Poster)
}

// pressPager activates a pagination control; disabled controls do nothing
func (m *Model) pressPager(b Button) tea.Cmd {
	if !b.Enabled {
		return nil
	}
	return m.goToPage(b.Page)
}

func (m *Model) clearFilter() {
	m.ui.Filtering = false
	m.ui.Filter = ""
	m.ui.FavoriteCursor = 0
	m.filterInput.SetValue("")
	m.filterInput.Blur()
}
