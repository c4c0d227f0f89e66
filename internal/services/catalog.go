package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amaumene/cinetro/internal/config"
	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/pkg/httputil"
	"github.com/amaumene/cinetro/pkg/logger"
	"github.com/amaumene/cinetro/pkg/ratelimiter"
)

// Catalog is the client for the remote catalog REST API.
type Catalog struct {
	cfg         *config.Config
	rateLimiter ratelimiter.RateLimiter
	httpClient  *http.Client
	logger      logger.Logger
}

// NewCatalog creates a catalog client from the configuration.
func NewCatalog(cfg *config.Config, log logger.Logger) *Catalog {
	return &Catalog{
		cfg:         cfg,
		rateLimiter: ratelimiter.NewTokenBucket(cfg.RateBurst, cfg.RateLimit),
		httpClient: httputil.NewHTTPClient(cfg.RequestTimeout,
			httputil.WithUserAgent(constants.AppName+"/"+constants.AppVersion),
			httputil.WithHeader("Accept", "application/json")),
		logger: log,
	}
}

// SetHTTPClient replaces the HTTP client, mostly for tests.
func (c *Catalog) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

func (c *Catalog) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := c.getJSON(ctx, "movies/", "Failed to fetch movies", &movies)
	return movies, err
}

func (c *Catalog) GetMovie(ctx context.Context, id int) (*models.Movie, error) {
	var movie models.Movie
	if err := c.getJSON(ctx, detailPath("movies", id), "Failed to fetch movie", &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Catalog) FeaturedMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := c.getJSON(ctx, "movies/featured/", "Failed to fetch featured movies", &movies)
	return movies, err
}

func (c *Catalog) ListTVShows(ctx context.Context) ([]models.TVShow, error) {
	var shows []models.TVShow
	err := c.getJSON(ctx, "tvshows/", "Failed to fetch TV shows", &shows)
	return shows, err
}

func (c *Catalog) GetTVShow(ctx context.Context, id int) (*models.TVShow, error) {
	var show models.TVShow
	if err := c.getJSON(ctx, detailPath("tvshows", id), "Failed to fetch TV show", &show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (c *Catalog) ListBongoMovies(ctx context.Context) ([]models.BongoMovie, error) {
	var movies []models.BongoMovie
	err := c.getJSON(ctx, "bongomovies/", "Failed to fetch Bongo movies", &movies)
	return movies, err
}

func (c *Catalog) GetBongoMovie(ctx context.Context, id int) (*models.BongoMovie, error) {
	var movie models.BongoMovie
	if err := c.getJSON(ctx, detailPath("bongomovies", id), "Failed to fetch Bongo movie", &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Catalog) ListLiveStreams(ctx context.Context) ([]models.LiveStream, error) {
	var streams []models.LiveStream
	err := c.getJSON(ctx, "livestreams/", "Failed to fetch live streams", &streams)
	return streams, err
}

func (c *Catalog) GetLiveStream(ctx context.Context, id int) (*models.LiveStream, error) {
	var stream models.LiveStream
	if err := c.getJSON(ctx, detailPath("livestreams", id), "Failed to fetch live stream", &stream); err != nil {
		return nil, err
	}
	return &stream, nil
}

func (c *Catalog) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	err := c.getJSON(ctx, "genres/", "Failed to fetch genres", &genres)
	return genres, err
}

func (c *Catalog) GetGenre(ctx context.Context, id int) (*models.Genre, error) {
	var genre models.Genre
	if err := c.getJSON(ctx, detailPath("genres", id), "Failed to fetch genre", &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

// Search queries every content type at once.
func (c *Catalog) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var resp models.SearchResponse
	path := "search/?q=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, "Failed to fetch search results", &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SubmitContact posts the contact form. A non-2xx answer is returned as an error whose
// text is the server-provided message.
func (c *Catalog) SubmitContact(ctx context.Context, form models.ContactForm) (*models.ContactResponse, error) {
	return c.postContact(ctx, form)
}

func detailPath(collection string, id int) string {
	return fmt.Sprintf("%s/%s/", collection, strconv.Itoa(id))
}
