// Package handlers serves the catalog pages and the JSON endpoints the page scripts use
// to drive the hero carousel and the livestream player.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/config"
	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/middleware"
	"github.com/amaumene/cinetro/internal/services"
)

// Handler handles HTTP requests for the catalog front end.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes installs the page renderer and registers every route.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.HTMLRender = mustHTMLRender()

	r.GET("/health", h.handleHealth)

	r.Use(middleware.Session(h.services.Sessions, h.config.SecureCookies))

	// Listings
	r.GET("/", h.handleHome)
	r.GET("/movies", h.handleMovies)
	r.GET("/tvshows", h.handleTVShows)
	r.GET("/bongomovies", h.handleBongoMovies)
	r.GET("/livestreams", h.handleLiveStreams)
	r.GET("/genres", h.handleGenres)
	r.GET("/genres/:id", h.handleGenre)
	r.GET("/search", h.handleSearch)

	// Details
	r.GET("/movie/:id", h.handleMovie)
	r.GET("/movie/:id/download", h.handleMovieDownload)
	r.GET("/tv/:id", h.handleTVShow)
	r.GET("/bongomovie/:id", h.handleBongoMovie)
	r.GET("/bongomovie/:id/download", h.handleBongoMovieDownload)
	r.GET("/livestream/:id", h.handleLiveStream)

	// Static pages
	r.GET("/about", h.handleAbout)
	r.GET("/contact", h.handleContact)
	r.POST("/contact", h.handleContactSubmit)
	r.GET("/privacy", h.handlePrivacy)
	r.GET("/terms", h.handleTerms)

	api := r.Group("/api", middleware.NoStore())
	api.GET("/hero", h.handleHeroState)
	api.POST("/hero/next", h.handleHeroNext)
	api.POST("/hero/prev", h.handleHeroPrev)
	api.POST("/hero/hover", h.handleHeroHover)

	p := api.Group("/player/:id")
	p.GET("", h.handlePlayerState)
	p.POST("/toggle", h.handlePlayerToggle)
	p.POST("/volume", h.handlePlayerVolume)
	p.POST("/seek", h.handlePlayerSeek)
	p.POST("/fullscreen", h.handlePlayerFullscreen)
	p.POST("/pointer", h.handlePlayerPointer)
	p.POST("/event", h.handlePlayerEvent)
	p.POST("/dismiss", h.handlePlayerDismiss)

	r.NoRoute(h.handleNotFound)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"name":     constants.AppName,
		"version":  constants.AppVersion,
		"sessions": h.services.Sessions.Len(),
	})
}

func (h *Handler) handleNotFound(c *gin.Context) {
	h.renderFailure(c, http.StatusNotFound, "Page Not Found", &failure{
		Title:    "Page Not Found",
		Message:  "The page you are looking for does not exist or has been moved.",
		Href:     "/",
		Label:    "Back to Home",
		NotFound: true,
	})
}
