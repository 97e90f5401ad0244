package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fakeCatalog serves generated pages for known queries
type fakeCatalog struct {
	totals     map[string]int // query -> totalResults
	details    map[string]domain.MovieDetail
	searchErr  error
	detailErr  error
	searches   []string
	detailHits int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		totals:  map[string]int{"batman": 23},
		details: map[string]domain.MovieDetail{},
	}
}

func pageItems(query string, page, total int) []domain.MovieSummary {
	start := (page - 1) * domain.PageSize
	var items []domain.MovieSummary
	for i := start; i < total && i < start+domain.PageSize; i++ {
		items = append(items, domain.MovieSummary{
			ID:    fmt.Sprintf("%s-%02d", query, i),
			Title: fmt.Sprintf("%s %d", query, i),
			Year:  "2005",
		})
	}
	return items
}

func (f *fakeCatalog) Search(_ context.Context, query string, page int) (domain.ResultPage, error) {
	f.searches = append(f.searches, fmt.Sprintf("%s#%d", query, page))
	if f.searchErr != nil {
		return domain.ResultPage{}, f.searchErr
	}
	total, ok := f.totals[query]
	if !ok {
		return domain.ResultPage{}, &domain.ProviderError{Message: "Movie not found!"}
	}
	return domain.ResultPage{
		Query:        query,
		Items:        pageItems(query, page, total),
		PageNumber:   page,
		TotalResults: total,
	}, nil
}

func (f *fakeCatalog) FetchDetail(_ context.Context, id string) (domain.MovieDetail, error) {
	f.detailHits++
	if f.detailErr != nil {
		return domain.MovieDetail{}, f.detailErr
	}
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return domain.MovieDetail{
		MovieSummary: domain.MovieSummary{ID: id, Title: "Title " + id},
		Director:     "Christopher Nolan",
	}, nil
}

// recordingSaver counts favorites writes
type recordingSaver struct {
	saves []domain.Favorites
}

func (r *recordingSaver) Save(favs domain.Favorites) {
	r.saves = append(r.saves, favs)
}

func newTestMachine(cat *fakeCatalog) (*Machine, *recordingSaver) {
	saver := &recordingSaver{}
	return NewMachine(cat, domain.Favorites{}, saver, MessagesFor("en"), nil), saver
}

func TestSetQueryDoesNotSearch(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")

	assert.Equal(t, "batman", m.State().Query)
	assert.Empty(t, cat.searches)
	assert.False(t, m.State().Status.Loading)
}

func TestSearchWithBlankQueryIsNoop(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("   ")
	_, ok := m.BeginSearch()

	assert.False(t, ok)
	assert.False(t, m.Search(context.Background()))
	assert.Empty(t, cat.searches)
	assert.Equal(t, domain.OperationStatus{}, m.State().Status)
}

func TestBeginSearchSetsLoadingAndClearsError(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("nothing")
	m.Search(context.Background())
	require.NotEmpty(t, m.State().Status.Error)

	m.SetQuery("batman")
	req, ok := m.BeginSearch()
	require.True(t, ok)

	assert.Equal(t, domain.OperationStatus{Loading: true}, m.State().Status)
	assert.Equal(t, SearchRequest{Seq: req.Seq, Query: "batman", Page: 1}, req)
}

func TestNotFoundSearch(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("zzzzzzzz")
	require.True(t, m.Search(context.Background()))

	st := m.State()
	assert.Empty(t, st.Results.Items)
	assert.Equal(t, "Movie not found!", st.Status.Error)
	assert.False(t, st.Status.Loading)
}

func TestTransportFailureUsesLocalizedMessage(t *testing.T) {
	cat := newFakeCatalog()
	cat.searchErr = fmt.Errorf("%w: dial tcp: connection refused", domain.ErrCatalogUnavailable)
	m := NewMachine(cat, domain.Favorites{}, nil, MessagesFor("pt-BR"), nil)

	m.SetQuery("batman")
	m.Search(context.Background())

	assert.Equal(t, "Erro ao buscar filmes.", m.State().Status.Error)
	assert.NotContains(t, m.State().Status.Error, "connection refused")
}

func TestFailedSearchClearsPreviousResults(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	m.Search(context.Background())
	require.Len(t, m.State().Results.Items, 10)

	cat.searchErr = errors.New("network down")
	m.SetQuery("batman")
	m.Search(context.Background())

	assert.Empty(t, m.State().Results.Items)
	assert.Equal(t, 0, m.State().Results.TotalPages())
	assert.Equal(t, "Failed to search movies.", m.State().Status.Error)
}

func TestTwoPageFlow(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	require.True(t, m.Search(context.Background()))

	st := m.State()
	require.Len(t, st.Results.Items, 10)
	assert.Equal(t, 23, st.Results.TotalResults)
	assert.Equal(t, 3, st.Results.TotalPages())
	assert.Equal(t, 1, st.Results.PageNumber)
	firstPage := st.Results.Items

	require.True(t, m.GoToPage(context.Background(), st.Results.PageNumber+1))

	st = m.State()
	assert.Equal(t, 2, st.Results.PageNumber)
	assert.Equal(t, 23, st.Results.TotalResults)
	require.Len(t, st.Results.Items, 10)
	assert.NotEqual(t, firstPage, st.Results.Items)

	require.True(t, m.GoToPage(context.Background(), 3))
	assert.Len(t, m.State().Results.Items, 3)
}

func TestGoToPageKeepsSearchedQuery(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	m.Search(context.Background())
	m.SetQuery("batm") // Edited but not submitted

	m.GoToPage(context.Background(), 2)

	assert.Equal(t, []string{"batman#1", "batman#2"}, cat.searches)
	assert.Equal(t, "batm", m.State().Query)
}

func TestGoToPageBoundariesAreNoops(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	// No results yet
	_, ok := m.BeginGoToPage(1)
	assert.False(t, ok)

	m.SetQuery("batman")
	m.Search(context.Background())
	before := m.State()

	for _, p := range []int{0, 1, 4, -1} {
		_, ok := m.BeginGoToPage(p)
		assert.False(t, ok, "page %d", p)
	}
	assert.Equal(t, before, m.State())

	m.GoToPage(context.Background(), 3)
	last := m.State()
	_, ok = m.BeginGoToPage(last.Results.TotalPages())
	assert.False(t, ok)
	assert.Equal(t, last, m.State())
	assert.Len(t, cat.searches, 2)
}

func TestGoToPageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		query := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "query")
		total := rapid.IntRange(1, 500).Draw(t, "total")

		cat := newFakeCatalog()
		cat.totals[query] = total
		m, _ := newTestMachine(cat)

		m.SetQuery(query)
		require.True(t, m.Search(context.Background()))
		pages := m.State().Results.TotalPages()

		p := rapid.IntRange(1, pages).Draw(t, "page")
		m.GoToPage(context.Background(), p)

		st := m.State()
		require.Equal(t, p, st.Results.PageNumber)
		require.Equal(t, pages, st.Results.TotalPages())
		require.Equal(t, (total+domain.PageSize-1)/domain.PageSize, st.Results.TotalPages())
	})
}

func TestStaleSearchResultIsDiscarded(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	m.Search(context.Background())

	older, ok := m.BeginGoToPage(2)
	require.True(t, ok)
	newer, ok := m.BeginGoToPage(3)
	require.True(t, ok)

	olderRes := m.ExecuteSearch(context.Background(), older)
	newerRes := m.ExecuteSearch(context.Background(), newer)

	// Newer completes first, then the older response arrives late
	assert.True(t, m.ApplySearch(newerRes))
	assert.False(t, m.ApplySearch(olderRes))

	assert.Equal(t, 3, m.State().Results.PageNumber)
	assert.False(t, m.State().Status.Loading)
}

func TestLoadingStaysWhileNewerRequestPending(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	first, _ := m.BeginSearch()
	_, _ = m.BeginSearch()

	assert.False(t, m.ApplySearch(m.ExecuteSearch(context.Background(), first)))
	assert.True(t, m.State().Status.Loading)
}

func TestDetailRoundTrip(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	m.Search(context.Background())
	results := m.State().Results
	id := results.Items[4].ID

	require.True(t, m.Select(context.Background(), id))
	st := m.State()
	require.True(t, st.DetailMode())
	assert.Equal(t, id, st.Selected.ID)
	assert.Equal(t, 1, cat.detailHits)

	require.True(t, m.ClearSelection())
	st = m.State()
	assert.False(t, st.DetailMode())
	assert.Equal(t, results, st.Results)
	assert.Len(t, cat.searches, 1, "results must not be re-fetched")
}

func TestSelectRequiresKnownID(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	_, ok := m.BeginSelect("tt-unknown")
	assert.False(t, ok)
	assert.Equal(t, 0, cat.detailHits)

	m.ToggleFavorite(domain.MovieSummary{ID: "tt-fav"})
	assert.True(t, m.Select(context.Background(), "tt-fav"))
	assert.Equal(t, "tt-fav", m.State().Selected.ID)
}

func TestFailedSelectKeepsSelection(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	m.Search(context.Background())
	first := m.State().Results.Items[0].ID
	m.Select(context.Background(), first)

	cat.detailErr = &domain.ProviderError{Message: "Incorrect IMDb ID."}
	m.Select(context.Background(), m.State().Results.Items[1].ID)

	st := m.State()
	require.NotNil(t, st.Selected)
	assert.Equal(t, first, st.Selected.ID)
	assert.Equal(t, "Incorrect IMDb ID.", st.Status.Error)
	assert.False(t, st.Status.Loading)

	cat.detailErr = errors.New("timeout")
	m.Select(context.Background(), first)
	assert.Equal(t, "Failed to load details.", m.State().Status.Error)
}

func TestSearchDoesNotLeaveDetailMode(t *testing.T) {
	cat := newFakeCatalog()
	m, _ := newTestMachine(cat)

	m.SetQuery("batman")
	m.Search(context.Background())
	m.Select(context.Background(), m.State().Results.Items[0].ID)

	m.GoToPage(context.Background(), 2)

	assert.True(t, m.State().DetailMode())
	assert.Equal(t, 2, m.State().Results.PageNumber)
}

func TestClearSelectionWithoutSelection(t *testing.T) {
	m, _ := newTestMachine(newFakeCatalog())
	assert.False(t, m.ClearSelection())
}

func TestToggleFavoriteSavesEveryMutation(t *testing.T) {
	m, saver := newTestMachine(newFakeCatalog())

	summary := domain.MovieSummary{ID: "tt0372784", Title: "Batman Begins"}
	assert.True(t, m.ToggleFavorite(summary))
	assert.True(t, m.State().Favorites.Contains("tt0372784"))
	assert.False(t, m.ToggleFavorite(domain.MovieDetail{MovieSummary: summary}))
	assert.False(t, m.State().Favorites.Contains("tt0372784"))

	assert.False(t, m.ToggleFavorite(domain.MovieSummary{}))

	require.Len(t, saver.saves, 2)
	assert.Equal(t, 1, saver.saves[0].Len())
	assert.Equal(t, 0, saver.saves[1].Len())
}

func TestToggleFavoriteDoesNotTouchStatus(t *testing.T) {
	m, _ := newTestMachine(newFakeCatalog())
	m.SetQuery("nope")
	m.Search(context.Background())
	status := m.State().Status

	m.ToggleFavorite(domain.MovieSummary{ID: "tt1"})
	assert.Equal(t, status, m.State().Status)
}

func TestToggleFavoriteTwiceRestoresSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfDistinct(rapid.StringMatching(`tt[0-9]{3}`), func(s string) string { return s }).Draw(t, "ids")
		var initial []domain.Record
		for _, id := range ids {
			initial = append(initial, domain.MovieSummary{ID: id})
		}
		m := NewMachine(newFakeCatalog(), domain.NewFavorites(initial...), nil, Messages{}, nil)
		before := m.State().Favorites.Items()

		r := domain.MovieSummary{ID: rapid.StringMatching(`tt9[0-9]{3}`).Draw(t, "new")}
		m.ToggleFavorite(r)
		m.ToggleFavorite(r)

		require.Equal(t, before, m.State().Favorites.Items())
	})
}
