package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// renderSearchForm renders the query box and the suggestion line
func renderSearchForm(form SearchForm, inputView string, width int) string {
	border := styles.InactiveBorder
	if form.Focused {
		border = styles.ActiveBorder
	}
	box := border.Width(max(width-2, 1)).Render(inputView)

	hint := " "
	if len(form.Suggestions) > 0 {
		text := styles.Truncate(strings.Join(form.Suggestions, " · "), max(width-4, 1))
		hint = styles.DimStyle.Render("tab ") + styles.SuggestionStyle.Render(text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, hint)
}

// renderCard renders one movie row
func renderCard(c Card, width int) string {
	style := styles.CardStyle
	if c.Cursor {
		style = styles.CardSelectedStyle
	}

	mark := styles.NotFavoriteMark
	if c.Favorite {
		mark = styles.FavoriteMark
	}

	title := styles.Truncate(c.Title, max(width-6, 1))
	title = styles.Highlight(title, c.MatchedIndexes, c.Cursor)

	return style.Width(width).Render(mark + " " + title)
}

// renderPager renders the four pagination controls with the page label
func renderPager(p Pager) string {
	if !p.Visible {
		return ""
	}

	var parts []string
	for i, b := range p.Buttons() {
		style := styles.PagerDisabledStyle
		if b.Enabled {
			style = styles.PagerEnabledStyle
		}
		parts = append(parts, style.Render(b.Label))
		if i == 1 {
			parts = append(parts, styles.SubtitleStyle.Render(p.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderResults renders the result list with the pager below it
func renderResults(scr Screen, cursor, width, height int) string {
	title := styles.TitleStyle.Render("Results")
	if scr.Pager.Visible {
		title += styles.DimStyle.Render(fmt.Sprintf("  %d on this page", len(scr.Results)))
	}

	lines := []string{title}
	start, end := scrollWindow(cursor, len(scr.Results), visibleRows(height))
	for _, c := range scr.Results[start:end] {
		lines = append(lines, renderCard(c, width))
	}
	lines = append(lines, "", renderPager(scr.Pager))

	return styles.MainPanelStyle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderDetail renders the detail panel
func renderDetail(d *DetailPanel, width, height int) string {
	mark := styles.NotFavoriteMark
	if d.Favorite {
		mark = styles.FavoriteMark
	}

	lines := []string{
		styles.TitleStyle.Render(d.Title) + " " + mark,
		styles.DimStyle.Render(styles.Truncate(d.Poster, max(width-4, 1))),
		"",
	}
	for _, f := range d.Fields {
		lines = append(lines, styles.LabelStyle.Render(f.Label)+f.Value)
	}
	if d.Plot != "" {
		lines = append(lines, "", wordWrap(d.Plot, width-4))
	}
	lines = append(lines, "", styles.DimStyle.Render("esc back · f favorite"))

	return styles.MainPanelStyle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderEmpty renders the main pane when there are no results to show
func renderEmpty(status StatusLine, width, height int) string {
	msg := styles.DimStyle.Render("Type a title and press enter to search.")
	if status.Error != "" && !status.Loading {
		msg = styles.ErrorStyle.Render(wordWrap(status.Error, width-4))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// renderFavorites renders the favorites pane with its filter line
func renderFavorites(grid FavoritesGrid, filterView string, cursor, width, height int) string {
	title := styles.TitleStyle.Render("Favorites")
	if grid.Focused {
		title = styles.AccentStyle.Bold(true).Render("Favorites")
	}
	if grid.Filter != "" {
		title += styles.DimStyle.Render(fmt.Sprintf("  %d/%d", len(grid.Cards), grid.Total))
	} else {
		title += styles.DimStyle.Render(fmt.Sprintf("  %d", grid.Total))
	}

	lines := []string{title}
	if grid.Filtering || grid.Filter != "" {
		lines = append(lines, filterView)
	}

	if grid.Total == 0 {
		lines = append(lines, styles.DimStyle.Render("No favorites yet."))
	}
	start, end := scrollWindow(cursor, len(grid.Cards), visibleRows(height))
	for _, c := range grid.Cards[start:end] {
		lines = append(lines, renderCard(c, width))
	}

	return styles.FavoritesPanelStyle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderStatus renders the left footer section
func renderStatus(status StatusLine, spinnerView, notice string) string {
	switch {
	case status.Loading:
		return spinnerView + " " + styles.DimStyle.Render("Loading...")
	case status.Error != "":
		return styles.ErrorStyle.Render(status.Error)
	case notice != "":
		return styles.DimStyle.Render(notice)
	}
	return ""
}

// wordWrap wraps text at word boundaries
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := lipgloss.Width(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
