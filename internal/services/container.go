// Package services provides the catalog API client and the dependency injection container.
package services

import (
	"context"

	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/session"
	"github.com/amaumene/cinetro/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Catalog  CatalogService
	Sessions *session.Store
	Logger   logger.Logger
	Cleanup  *CleanupService
}

// CatalogService defines the interface for catalog API operations.
type CatalogService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int) (*models.Movie, error)
	FeaturedMovies(ctx context.Context) ([]models.Movie, error)
	ListTVShows(ctx context.Context) ([]models.TVShow, error)
	GetTVShow(ctx context.Context, id int) (*models.TVShow, error)
	ListBongoMovies(ctx context.Context) ([]models.BongoMovie, error)
	GetBongoMovie(ctx context.Context, id int) (*models.BongoMovie, error)
	ListLiveStreams(ctx context.Context) ([]models.LiveStream, error)
	GetLiveStream(ctx context.Context, id int) (*models.LiveStream, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id int) (*models.Genre, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	SubmitContact(ctx context.Context, form models.ContactForm) (*models.ContactResponse, error)
}
