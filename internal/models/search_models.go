package models

import "github.com/amaumene/cinetro/internal/constants"

// SearchResponse is the body of the search endpoint.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is a search hit discriminated by Type.
type SearchResult struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
	Type   string `json:"type"`
}

// Route returns the detail route for the hit. Anything that is not a movie or a TV show
// is a bongo movie.
func (r SearchResult) Route() string {
	switch r.Type {
	case constants.KindMovie:
		return DetailRoute(constants.KindMovie, r.ID)
	case constants.KindTV:
		return DetailRoute(constants.KindTV, r.ID)
	default:
		return DetailRoute(constants.KindBongoMovie, r.ID)
	}
}

// KindLabel is the human label for the hit type.
func (r SearchResult) KindLabel() string {
	return KindLabel(r.Type)
}
