package omdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// MapSearchResults converts search entries to domain summaries, capped at one page
func MapSearchResults(results []SearchResult) []domain.MovieSummary {
	if len(results) > domain.PageSize {
		results = results[:domain.PageSize]
	}
	items := make([]domain.MovieSummary, 0, len(results))
	for _, r := range results {
		items = append(items, domain.MovieSummary{
			ID:     r.ImdbID,
			Title:  r.Title,
			Year:   r.Year,
			Poster: r.Poster,
		})
	}
	return items
}

// MapResultPage converts a successful search payload to a result page
func MapResultPage(resp SearchResponse, query string, page int) (domain.ResultPage, error) {
	total, err := parseTotalResults(resp.TotalResults)
	if err != nil {
		return domain.ResultPage{}, err
	}
	return domain.ResultPage{
		Query:        query,
		Items:        MapSearchResults(resp.Search),
		PageNumber:   page,
		TotalResults: total,
	}, nil
}

// MapDetail converts a successful detail payload to a domain detail
func MapDetail(resp DetailResponse) domain.MovieDetail {
	return domain.MovieDetail{
		MovieSummary: domain.MovieSummary{
			ID:     resp.ImdbID,
			Title:  resp.Title,
			Year:   resp.Year,
			Poster: resp.Poster,
		},
		Director: resp.Director,
		Actors:   resp.Actors,
		Genre:    resp.Genre,
		Runtime:  resp.Runtime,
		Rating:   resp.ImdbRating,
		Plot:     resp.Plot,
	}
}

func parseTotalResults(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: totalResults %q", domain.ErrMalformedResponse, s)
	}
	return n, nil
}
