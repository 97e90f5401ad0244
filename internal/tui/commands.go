package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/session"
)

// Command factories for async operations. They only run the network part
// of a transition; Update applies the result on the event loop.

// SearchCmd fetches the page described by req
func SearchCmd(m *session.Machine, req session.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		return SearchCompletedMsg{Result: m.ExecuteSearch(context.Background(), req)}
	}
}

// SelectCmd fetches the detail record described by req
func SelectCmd(m *session.Machine, req session.DetailRequest) tea.Cmd {
	return func() tea.Msg {
		return DetailCompletedMsg{Result: m.ExecuteSelect(context.Background(), req)}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// OpenURLCmd launches the external viewer for url
func OpenURLCmd(o URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{URL: url, Err: o.Open(url)}
	}
}
