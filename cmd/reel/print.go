package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/session"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		Headers(headers...)
}

// printResults writes the current result page as a table
func printResults(w io.Writer, st session.State) {
	page := st.Results
	fmt.Fprintf(w, "%q: %d results, page %d of %d\n", page.Query, page.TotalResults, page.PageNumber, page.TotalPages())

	t := newTable("", "ID", "TITLE", "POSTER")
	for _, item := range page.Items {
		mark := " "
		if st.Favorites.Contains(item.ID) {
			mark = "*"
		}
		t.Row(mark, item.ID, item.DisplayTitle(), item.PosterURL())
	}
	fmt.Fprintln(w, t.String())
}

// printFavorites writes every stored favorite, oldest first
func printFavorites(w io.Writer, favs domain.Favorites) {
	if favs.Len() == 0 {
		fmt.Fprintln(w, "No favorites yet.")
		return
	}

	t := newTable("ID", "TITLE", "KIND")
	for _, r := range favs.Items() {
		summary := domain.SummaryOf(r)
		t.Row(summary.ID, summary.DisplayTitle(), r.GetItemType())
	}
	fmt.Fprintln(w, t.String())
}
