package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/session"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// QueryHistory records submitted queries for suggestions
type QueryHistory interface {
	Recent() []string
	Record(query string)
}

// URLOpener opens web URLs outside the terminal
type URLOpener interface {
	Open(url string) error
}

// Model is the main Bubble Tea model for the application
type Model struct {
	machine *session.Machine
	history QueryHistory // nil disables suggestions
	opener  URLOpener    // nil disables open actions

	// UI Components
	queryInput  textinput.Model
	filterInput textinput.Model
	spinner     spinner.Model
	spinning    bool // A spinner tick is in flight

	ui UIState

	// Dimensions
	Width  int
	Height int
	Ready  bool

	ShowHelp bool
	notice   string // Transient footer message
}

// NewModel creates a new application model
func NewModel(machine *session.Machine, history QueryHistory) Model {
	qi := textinput.New()
	qi.Placeholder = "Search movies..."
	qi.CharLimit = 100
	qi.Prompt = "> "
	qi.PromptStyle = styles.PromptStyle
	qi.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	qi.PlaceholderStyle = styles.DimStyle
	qi.SetValue(machine.State().Query)
	qi.Focus()

	fi := textinput.New()
	fi.Placeholder = "Filter..."
	fi.CharLimit = 60
	fi.Prompt = "/ "
	fi.PromptStyle = styles.PromptStyle
	fi.PlaceholderStyle = styles.DimStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		machine:     machine,
		history:     history,
		queryInput:  qi,
		filterInput: fi,
		spinner:     sp,
		ui:          UIState{Focus: FocusSearch},
	}
	if history != nil {
		m.ui.History = history.Recent()
	}
	return m
}

// WithOpener returns a copy of the model that opens posters and title pages with o
func (m Model) WithOpener(o URLOpener) Model {
	m.opener = o
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.queryInput.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case SearchCompletedMsg:
		if m.machine.ApplySearch(msg.Result) {
			m.ui.ResultCursor = 0
		}
		return m, nil

	case DetailCompletedMsg:
		m.machine.ApplySelect(msg.Result)
		return m, nil

	case spinner.TickMsg:
		if !m.machine.State().Status.Loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClearStatusMsg:
		m.notice = ""
		return m, nil

	case OpenedMsg:
		if msg.Err != nil {
			m.notice = "Could not open " + msg.URL
		} else {
			m.notice = "Opened " + msg.URL
		}
		return m, ClearStatusCmd(3 * time.Second)
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	switch {
	case m.ui.Focus == FocusSearch:
		m.queryInput, cmd = m.queryInput.Update(msg)
	case m.ui.Filtering:
		m.filterInput, cmd = m.filterInput.Update(msg)
	}
	return m, cmd
}

// State returns the session state snapshot
func (m Model) State() session.State {
	return m.machine.State()
}

// UI returns the presentation state
func (m Model) UI() UIState {
	return m.ui
}

func (m Model) screen() Screen {
	return Project(m.machine.State(), m.ui)
}

// === Transitions ===

func (m *Model) startSearch() tea.Cmd {
	req, ok := m.machine.BeginSearch()
	if !ok {
		return nil
	}
	if m.history != nil {
		m.history.Record(req.Query)
		m.ui.History = m.history.Recent()
	}
	return tea.Batch(SearchCmd(m.machine, req), m.startSpinner())
}

func (m *Model) goToPage(p int) tea.Cmd {
	req, ok := m.machine.BeginGoToPage(p)
	if !ok {
		return nil
	}
	return tea.Batch(SearchCmd(m.machine, req), m.startSpinner())
}

func (m *Model) selectID(id string) tea.Cmd {
	req, ok := m.machine.BeginSelect(id)
	if !ok {
		return nil
	}
	return tea.Batch(SelectCmd(m.machine, req), m.startSpinner())
}

func (m *Model) toggleFavorite(r domain.Record) tea.Cmd {
	if r == nil {
		return nil
	}
	if m.machine.ToggleFavorite(r) {
		m.notice = "Added to favorites: " + r.GetTitle()
	} else {
		m.notice = "Removed from favorites: " + r.GetTitle()
	}
	m.clampCursors()
	return ClearStatusCmd(3 * time.Second)
}

func (m *Model) open(url string) tea.Cmd {
	if m.opener == nil || url == "" {
		return nil
	}
	return OpenURLCmd(m.opener, url)
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) focusPane(f Focus) {
	m.ui.Focus = f
	if f == FocusSearch {
		m.queryInput.Focus()
		m.queryInput.CursorEnd()
	} else {
		m.queryInput.Blur()
	}
	m.clampCursors()
}

func (m *Model) cycleFocus() {
	switch m.ui.Focus {
	case FocusSearch:
		m.focusPane(FocusResults)
	case FocusResults:
		m.focusPane(FocusFavorites)
	default:
		m.focusPane(FocusSearch)
	}
}

func (m *Model) clampCursors() {
	scr := m.screen()
	m.ui.ResultCursor = clamp(m.ui.ResultCursor, len(scr.Results))
	m.ui.FavoriteCursor = clamp(m.ui.FavoriteCursor, len(scr.Favorites.Cards))
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	return min(cursor, n-1)
}

// === Rendering ===

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.ShowHelp {
		return m.renderHelp()
	}

	scr := m.screen()
	layout := m.calculateLayout(m.Width)
	contentHeight := max(m.Height-ChromeHeight, 1)

	var panes []string
	if layout.mainWidth > 0 {
		switch scr.Mode {
		case ModeDetail:
			panes = append(panes, renderDetail(scr.Detail, layout.mainWidth, contentHeight))
		case ModeList:
			panes = append(panes, renderResults(scr, m.ui.ResultCursor, layout.mainWidth, contentHeight))
		default:
			panes = append(panes, renderEmpty(scr.Status, layout.mainWidth, contentHeight))
		}
	}
	if layout.favoritesWidth > 0 {
		panes = append(panes, renderFavorites(scr.Favorites, m.filterInput.View(), m.ui.FavoriteCursor, layout.favoritesWidth, contentHeight))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderSearchForm(scr.Search, m.queryInput.View(), m.Width),
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		m.renderFooter(scr),
	)
}

// renderFooter renders status on the left and key hints on the right
func (m Model) renderFooter(scr Screen) string {
	left := renderStatus(scr.Status, m.spinner.View(), m.notice)

	right := styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")
	if scr.Search.Focused {
		right = styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" search  ") +
			styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" results")
	}

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
SEARCH                          RESULTS
  enter      Run search            j/k       Up/down
  tab        Complete from history enter     Details
  esc        Go to results         f/space   Toggle favorite
                                   [ h l ]   First/prev/next/last page
FAVORITES                       OTHER
  /          Filter                s         Focus search
  enter      Details               tab       Switch pane
  f/space    Remove                q         Quit
  esc        Clear filter / back   ?         This help
                                   o / i     Open poster / IMDb page

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
