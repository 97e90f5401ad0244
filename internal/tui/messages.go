package tui

import "github.com/mmcdole/reel/internal/session"

// Message types for the TUI

// SearchCompletedMsg carries a finished search or page fetch
type SearchCompletedMsg struct {
	Result session.SearchResult
}

// DetailCompletedMsg carries a finished detail fetch
type DetailCompletedMsg struct {
	Result session.DetailResult
}

// ClearStatusMsg signals to clear the transient footer notice
type ClearStatusMsg struct{}

// OpenedMsg reports the outcome of launching an external viewer
type OpenedMsg struct {
	URL string
	Err error
}
