package domain

// Record is the polymorphic interface for anything that can be bookmarked.
// MovieSummary and MovieDetail implement it; set operations only use GetID.
type Record interface {
	// GetID returns the catalog-unique identifier
	GetID() string

	// GetTitle returns the display title
	GetTitle() string

	// GetYear returns the release year as reported by the catalog
	GetYear() string

	// GetPoster returns the raw poster value (URL or PosterUnavailable)
	GetPoster() string

	// GetItemType returns ItemTypeMovie or ItemTypeDetail
	GetItemType() string
}

// SummaryOf extracts the summary fields of any record
func SummaryOf(r Record) MovieSummary {
	switch v := r.(type) {
	case MovieSummary:
		return v
	case MovieDetail:
		return v.MovieSummary
	case *MovieSummary:
		return *v
	case *MovieDetail:
		return v.MovieSummary
	}
	return MovieSummary{
		ID:     r.GetID(),
		Title:  r.GetTitle(),
		Year:   r.GetYear(),
		Poster: r.GetPoster(),
	}
}
