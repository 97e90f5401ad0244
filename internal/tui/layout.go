package tui

// Layout proportions
const (
	MainPanelPercent = 65 // Results or detail
	MinPanelWidth    = 24

	// Bordered search box, suggestion line and footer
	ChromeHeight = 5
)

// paneLayout holds calculated pane widths for the View
type paneLayout struct {
	mainWidth      int
	favoritesWidth int // 0 if not shown
}

// calculateLayout splits the available width between the main pane and the
// favorites pane. Narrow terminals drop the favorites pane unless it has focus.
func (m Model) calculateLayout(availableWidth int) paneLayout {
	if availableWidth < 2*MinPanelWidth {
		if m.ui.Focus == FocusFavorites {
			return paneLayout{favoritesWidth: availableWidth}
		}
		return paneLayout{mainWidth: availableWidth}
	}

	layout := paneLayout{
		mainWidth: max(availableWidth*MainPanelPercent/100, MinPanelWidth),
	}
	layout.favoritesWidth = availableWidth - layout.mainWidth
	if layout.favoritesWidth < MinPanelWidth {
		layout.favoritesWidth = MinPanelWidth
		layout.mainWidth = availableWidth - MinPanelWidth
	}
	return layout
}

// visibleRows returns how many list rows fit in a pane of the given height,
// leaving room for the pane title and the pager.
func visibleRows(height int) int {
	return max(height-4, 1)
}

// scrollWindow returns the [start, end) slice that keeps cursor visible
func scrollWindow(cursor, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	start = max(start, 0)
	start = min(start, total-rows)
	return start, start + rows
}
