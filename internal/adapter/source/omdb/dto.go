package omdb

// Response flags as sent by the catalog
const (
	responseTrue  = "True"
	responseFalse = "False"
)

// SearchResponse is the payload of a title search (?s=)
type SearchResponse struct {
	Response     string         `json:"Response"`
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"` // String-encoded integer
	Error        string         `json:"Error,omitempty"`
}

// SearchResult is one entry of a title search
type SearchResult struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// DetailResponse is the payload of a detail fetch (?i=&plot=full)
type DetailResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
	Type       string `json:"Type"`
}

// errorResponse is the common failure shape: {"Response":"False","Error":"..."}
type errorResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}
