// Package constants defines application-wide constants and default values.
package constants

const (
	// Application metadata
	AppName        = "Cinetro"
	AppVersion     = "1.0.0"
	AppDescription = "Browse movies, TV shows, bongo movies and live streams"

	// Default configuration values
	DefaultPort       = "5000"
	DefaultLogLevel   = "info"
	DefaultAPIBaseURL = "http://localhost:8000/api/"

	// Session store
	DefaultSessionCapacity = 1000
	DefaultSessionTTL      = 2 // hours
	SessionCookieName      = "cinetro_sid"

	// Rate limiting for the catalog API
	CatalogRateLimit = 20 // requests per second
	CatalogRateBurst = 10 // burst capacity

	// Client-side slicing
	DefaultPageSize = 20
	HomeMovieCount  = 5
)

// Content kinds as used in routes, search results and card labels.
const (
	KindMovie      = "movie"
	KindTV         = "tv"
	KindBongoMovie = "bongo movie"
	KindLiveStream = "livestream"
)

// Filter is a client-side grid filter option.
type Filter struct {
	ID   string
	Name string
}

// MovieFilters lists the filters offered on the movie grid.
var MovieFilters = []Filter{
	{ID: "all", Name: "All Movies"},
	{ID: "action", Name: "Action"},
	{ID: "comedy", Name: "Comedy"},
	{ID: "drama", Name: "Drama"},
	{ID: "sci-fi", Name: "Sci-Fi"},
	{ID: "thriller", Name: "Thriller"},
}

// TVShowFilters lists the filters offered on the TV show grid.
var TVShowFilters = []Filter{
	{ID: "all", Name: "All TV Shows"},
	{ID: "trending", Name: "Trending Now"},
	{ID: "action", Name: "Action"},
	{ID: "comedy", Name: "Comedy"},
	{ID: "drama", Name: "Drama"},
}
