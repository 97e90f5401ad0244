// Package session owns the search, pagination, detail and favorites state
// of one interactive session and the transitions between them.
package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// FavoritesSaver receives the full favorites set after every mutation
type FavoritesSaver interface {
	Save(favs domain.Favorites)
}

// State is a snapshot of everything the session knows
type State struct {
	Query     string
	Results   domain.ResultPage
	Selected  *domain.MovieDetail // nil = list view
	Favorites domain.Favorites
	Status    domain.OperationStatus
}

// DetailMode returns true when a detail record is on screen
func (s State) DetailMode() bool {
	return s.Selected != nil
}

// SearchRequest is an issued search awaiting completion
type SearchRequest struct {
	Seq   uint64
	Query string
	Page  int
}

// SearchResult is the outcome of a SearchRequest
type SearchResult struct {
	Request SearchRequest
	Page    domain.ResultPage
	Err     error
}

// DetailRequest is an issued detail fetch awaiting completion
type DetailRequest struct {
	Seq uint64
	ID  string
}

// DetailResult is the outcome of a DetailRequest
type DetailResult struct {
	Request DetailRequest
	Detail  domain.MovieDetail
	Err     error
}

// Machine is the session state container. State changes only through its
// transition methods. It is not safe for concurrent use: one event loop owns it.
// Execute* methods do not touch state and may run on any goroutine.
type Machine struct {
	catalog  domain.CatalogRepository
	saver    FavoritesSaver
	messages Messages
	logger   *slog.Logger

	state State
	seq   uint64 // Sequence of the latest issued request
}

// NewMachine creates a machine seeded with previously stored favorites.
// saver may be nil when favorites are not persisted.
func NewMachine(catalog domain.CatalogRepository, favorites domain.Favorites, saver FavoritesSaver, messages Messages, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	if messages == (Messages{}) {
		messages = MessagesFor("")
	}
	return &Machine{
		catalog:  catalog,
		saver:    saver,
		messages: messages,
		logger:   logger,
		state:    State{Favorites: favorites},
	}
}

// State returns the current state snapshot
func (m *Machine) State() State {
	return m.state
}

// === Query ===

// SetQuery replaces the query text without searching
func (m *Machine) SetQuery(q string) {
	m.state.Query = q
}

// === Search & pagination ===

// BeginSearch starts a search for page 1 of the current query.
// Returns false (and changes nothing) when the query is blank.
func (m *Machine) BeginSearch() (SearchRequest, bool) {
	query := strings.TrimSpace(m.state.Query)
	if query == "" {
		return SearchRequest{}, false
	}
	return m.beginSearch(query, 1), true
}

// BeginGoToPage starts a search for page p of the displayed results' query.
// Returns false when p is outside [1, TotalPages] or already displayed.
func (m *Machine) BeginGoToPage(p int) (SearchRequest, bool) {
	if !m.CanGoToPage(p) {
		return SearchRequest{}, false
	}
	return m.beginSearch(m.state.Results.Query, p), true
}

// CanGoToPage reports whether page p is a legal navigation target
func (m *Machine) CanGoToPage(p int) bool {
	results := m.state.Results
	total := results.TotalPages()
	return total > 0 && results.Query != "" && p >= 1 && p <= total && p != results.PageNumber
}

func (m *Machine) beginSearch(query string, page int) SearchRequest {
	m.seq++
	m.state.Status = domain.OperationStatus{Loading: true}
	req := SearchRequest{Seq: m.seq, Query: query, Page: page}
	m.logger.Debug("search started", "seq", req.Seq, "query", query, "page", page)
	return req
}

// ExecuteSearch performs the network call for req
func (m *Machine) ExecuteSearch(ctx context.Context, req SearchRequest) SearchResult {
	page, err := m.catalog.Search(ctx, req.Query, req.Page)
	return SearchResult{Request: req, Page: page, Err: err}
}

// ApplySearch completes a search. Results of superseded requests are
// discarded; returns false in that case.
func (m *Machine) ApplySearch(res SearchResult) bool {
	if res.Request.Seq != m.seq {
		m.logger.Debug("discarding stale search result", "seq", res.Request.Seq, "latest", m.seq)
		return false
	}

	m.state.Status.Loading = false
	if res.Err != nil {
		m.state.Status.Error = m.errorText(res.Err, m.messages.SearchFailed)
		m.state.Results = domain.ResultPage{}
		return true
	}

	page := res.Page
	page.Query = res.Request.Query
	page.PageNumber = res.Request.Page
	m.state.Results = page
	m.state.Status.Error = ""
	m.logger.Debug("search applied", "seq", res.Request.Seq, "items", len(page.Items), "total", page.TotalResults)
	return true
}

// Search runs BeginSearch, ExecuteSearch and ApplySearch inline
func (m *Machine) Search(ctx context.Context) bool {
	req, ok := m.BeginSearch()
	if !ok {
		return false
	}
	return m.ApplySearch(m.ExecuteSearch(ctx, req))
}

// GoToPage runs BeginGoToPage, ExecuteSearch and ApplySearch inline
func (m *Machine) GoToPage(ctx context.Context, p int) bool {
	req, ok := m.BeginGoToPage(p)
	if !ok {
		return false
	}
	return m.ApplySearch(m.ExecuteSearch(ctx, req))
}

// === Detail ===

// BeginSelect starts a detail fetch for id. The id must belong to the
// displayed results or the favorites; returns false otherwise.
func (m *Machine) BeginSelect(id string) (DetailRequest, bool) {
	if id == "" {
		return DetailRequest{}, false
	}
	if _, ok := m.state.Results.Find(id); !ok && !m.state.Favorites.Contains(id) {
		m.logger.Debug("ignoring selection of unknown id", "id", id)
		return DetailRequest{}, false
	}

	m.seq++
	m.state.Status = domain.OperationStatus{Loading: true}
	req := DetailRequest{Seq: m.seq, ID: id}
	m.logger.Debug("detail started", "seq", req.Seq, "id", id)
	return req, true
}

// ExecuteSelect performs the network call for req
func (m *Machine) ExecuteSelect(ctx context.Context, req DetailRequest) DetailResult {
	detail, err := m.catalog.FetchDetail(ctx, req.ID)
	return DetailResult{Request: req, Detail: detail, Err: err}
}

// ApplySelect completes a detail fetch. On failure the current selection
// is left as it was. Stale results are discarded and return false.
func (m *Machine) ApplySelect(res DetailResult) bool {
	if res.Request.Seq != m.seq {
		m.logger.Debug("discarding stale detail result", "seq", res.Request.Seq, "latest", m.seq)
		return false
	}

	m.state.Status.Loading = false
	if res.Err != nil {
		m.state.Status.Error = m.errorText(res.Err, m.messages.DetailsFailed)
		return true
	}

	detail := res.Detail
	m.state.Selected = &detail
	m.state.Status.Error = ""
	return true
}

// Select runs BeginSelect, ExecuteSelect and ApplySelect inline
func (m *Machine) Select(ctx context.Context, id string) bool {
	req, ok := m.BeginSelect(id)
	if !ok {
		return false
	}
	return m.ApplySelect(m.ExecuteSelect(ctx, req))
}

// ClearSelection returns to the list view. Results are kept as they were.
func (m *Machine) ClearSelection() bool {
	if m.state.Selected == nil {
		return false
	}
	m.state.Selected = nil
	return true
}

// === Favorites ===

// ToggleFavorite removes r's id from the favorites if present, otherwise
// adds r, then hands the new set to the saver. Returns true when added.
// Records without an id are ignored and nothing is saved.
func (m *Machine) ToggleFavorite(r domain.Record) bool {
	if r == nil || r.GetID() == "" {
		return false
	}

	added := m.state.Favorites.Toggle(r)
	m.logger.Debug("favorite toggled", "id", r.GetID(), "added", added, "count", m.state.Favorites.Len())
	m.favoritesChanged()
	return added
}

func (m *Machine) favoritesChanged() {
	if m.saver != nil {
		m.saver.Save(m.state.Favorites)
	}
}

// errorText returns the provider's message, or fallback for transport failures
func (m *Machine) errorText(err error, fallback string) string {
	if msg, ok := domain.ProviderMessage(err); ok {
		return msg
	}
	m.logger.Error("catalog request failed", "error", err)
	return fallback
}
