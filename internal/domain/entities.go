package domain

import (
	"fmt"
	"strings"
)

// PageSize is the fixed number of results the catalog returns per search page
const PageSize = 10

// PosterUnavailable is the catalog's sentinel for a missing poster
const PosterUnavailable = "N/A"

// PlaceholderPosterURL is shown in place of a missing poster
const PlaceholderPosterURL = "https://via.placeholder.com/150"

// Item type identifiers returned by Record.GetItemType
const (
	ItemTypeMovie  = "movie"
	ItemTypeDetail = "detail"
)

// MovieSummary is one entry of a search result page
type MovieSummary struct {
	ID     string // Catalog-unique identifier (imdbID)
	Title  string
	Year   string // Free-form, e.g. "2008" or "2011–2019"
	Poster string // Poster URL or PosterUnavailable
}

func (m MovieSummary) GetID() string       { return m.ID }
func (m MovieSummary) GetTitle() string    { return m.Title }
func (m MovieSummary) GetYear() string     { return m.Year }
func (m MovieSummary) GetPoster() string   { return m.Poster }
func (m MovieSummary) GetItemType() string { return ItemTypeMovie }

// HasPoster reports whether the catalog supplied a poster image
func (m MovieSummary) HasPoster() bool {
	p := strings.TrimSpace(m.Poster)
	return p != "" && p != PosterUnavailable
}

// PosterURL returns the poster URL, or the placeholder when there is none
func (m MovieSummary) PosterURL() string {
	if m.HasPoster() {
		return m.Poster
	}
	return PlaceholderPosterURL
}

// DisplayTitle returns "Title (Year)", or just the title when the year is unknown
func (m MovieSummary) DisplayTitle() string {
	if m.Year == "" || m.Year == PosterUnavailable {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}

// MovieDetail is the full record returned by a detail fetch
type MovieDetail struct {
	MovieSummary

	Director string
	Actors   string
	Genre    string
	Runtime  string // As reported, e.g. "152 min"
	Rating   string // imdbRating, e.g. "9.0"
	Plot     string
}

func (m MovieDetail) GetItemType() string { return ItemTypeDetail }

// Summary returns the summary part of the detail record
func (m MovieDetail) Summary() MovieSummary {
	return m.MovieSummary
}

// ResultPage is one page of search results plus pagination metadata
type ResultPage struct {
	Query        string // Search term that produced this page
	Items        []MovieSummary
	PageNumber   int // 1-based
	TotalResults int
}

// TotalPages returns ceil(TotalResults / PageSize)
func (p ResultPage) TotalPages() int {
	if p.TotalResults <= 0 {
		return 0
	}
	return (p.TotalResults + PageSize - 1) / PageSize
}

// IsEmpty returns true when the page holds no items
func (p ResultPage) IsEmpty() bool {
	return len(p.Items) == 0
}

// HasPrev returns true if a previous page exists
func (p ResultPage) HasPrev() bool {
	return p.PageNumber > 1
}

// HasNext returns true if a following page exists
func (p ResultPage) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

// Find returns the item with the given id
func (p ResultPage) Find(id string) (MovieSummary, bool) {
	for _, item := range p.Items {
		if item.ID == id {
			return item, true
		}
	}
	return MovieSummary{}, false
}

// OperationStatus tracks the most recent async operation
type OperationStatus struct {
	Loading bool
	Error   string // Empty when the last operation succeeded
}
