package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/carousel"
	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/middleware"
	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/view"
)

// gridBody is the body of the listing page: one or more titled grids.
type gridBody struct {
	Grids []view.Grid
	// Prompt replaces the grids when there is nothing to look up yet.
	Prompt string
}

// heroBody is the server-rendered first frame of the hero carousel.
type heroBody struct {
	State   carousel.State[models.Movie]
	Items   []models.Movie
	Message string
}

type homeBody struct {
	Hero    heroBody
	Movies  view.Grid
	Failure *failure
}

type genresBody struct {
	Genres []models.Genre
}

func (h *Handler) handleHome(c *gin.Context) {
	ctx := c.Request.Context()

	var featured, movies view.State[[]models.Movie]
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		featured = view.Load(ctx, h.services.Catalog.FeaturedMovies)
	}()
	go func() {
		defer wg.Done()
		movies = view.Load(ctx, h.services.Catalog.ListMovies)
	}()
	wg.Wait()

	if featured.Abandoned() || movies.Abandoned() {
		h.services.Logger.Debugf("[Handlers] home abandoned")
		c.Abort()
		return
	}

	body := homeBody{Hero: h.mountHero(c, featured)}

	if movies.IsError() {
		h.services.Logger.Warnf("[Handlers] home movies failed: %v", movies.Err)
		body.Failure = loadFailure(c, movies.Err)
	} else {
		filter := view.ResolveFilter(constants.MovieFilters, c.Query("filter"))
		items := view.FilterMovies(movies.Data, filter)
		grid := view.Grid{
			Title:    "Trending Now",
			Subtitle: "Discover the hottest movies right now",
			Noun:     "movies",
			Filters:  view.FilterMenu("/", constants.MovieFilters, filter),
			Active:   filter,
		}
		if len(items) > constants.HomeMovieCount {
			items = items[:constants.HomeMovieCount]
			grid.MoreHref = "/movies"
		}
		grid.Cards = view.Cards(items, view.MediaCard(constants.KindMovie))
		body.Movies = grid
	}

	h.renderPage(c, http.StatusOK, "home", pageData{Title: "Home", Hero: true, Body: body})
}

// mountHero opens a fresh carousel in the visitor's session over the featured movies.
func (h *Handler) mountHero(c *gin.Context, featured view.State[[]models.Movie]) heroBody {
	if featured.IsError() {
		h.services.Logger.Warnf("[Handlers] featured movies failed: %v", featured.Err)
		return heroBody{Message: "No featured movies available"}
	}
	if len(featured.Data) == 0 {
		return heroBody{Message: "No featured movies available"}
	}

	body := heroBody{Items: featured.Data}
	if sess, ok := middleware.SessionFrom(c); ok {
		body.State = sess.OpenHero(featured.Data).State()
	} else {
		body.State = carousel.State[models.Movie]{Count: len(featured.Data), Current: &featured.Data[0]}
	}
	return body
}

func (h *Handler) handleMovies(c *gin.Context) {
	st, ok := load(h, c, "movies", h.services.Catalog.ListMovies)
	if !ok {
		return
	}
	if st.IsError() {
		h.renderLoadError(c, "Movies", st.Err)
		return
	}

	filter := view.ResolveFilter(constants.MovieFilters, c.Query("filter"))
	items, pager := view.Paginate(view.FilterMovies(st.Data, filter),
		view.ParsePage(c.Query("page")), h.config.PageSize, c.Request.URL)

	h.render(c, http.StatusOK, "grid", "Movies", gridBody{Grids: []view.Grid{{
		Title:    "Movies",
		Subtitle: "Discover the hottest movies right now",
		Noun:     "movies",
		Cards:    view.Cards(items, view.MediaCard(constants.KindMovie)),
		Filters:  view.FilterMenu("/movies", constants.MovieFilters, filter),
		Active:   filter,
		Pager:    pager,
	}}})
}

func (h *Handler) handleTVShows(c *gin.Context) {
	st, ok := load(h, c, "tv shows", h.services.Catalog.ListTVShows)
	if !ok {
		return
	}
	if st.IsError() {
		h.renderLoadError(c, "TV Shows", st.Err)
		return
	}

	filter := view.ResolveFilter(constants.TVShowFilters, c.Query("filter"))
	items, pager := view.Paginate(view.FilterTVShows(st.Data, filter),
		view.ParsePage(c.Query("page")), h.config.PageSize, c.Request.URL)

	h.render(c, http.StatusOK, "grid", "TV Shows", gridBody{Grids: []view.Grid{{
		Title:    "TV Shows",
		Subtitle: "Binge-worthy series from around the world",
		Noun:     "TV shows",
		Cards:    view.Cards(items, view.TVShowCard),
		Filters:  view.FilterMenu("/tvshows", constants.TVShowFilters, filter),
		Active:   filter,
		Pager:    pager,
	}}})
}

func (h *Handler) handleBongoMovies(c *gin.Context) {
	h.mediaListing(c, "Bongo Movies", "Local films from Tanzania's Bongo cinema", "bongo movies",
		constants.KindBongoMovie, h.services.Catalog.ListBongoMovies)
}

func (h *Handler) handleLiveStreams(c *gin.Context) {
	h.mediaListing(c, "Live Streams", "Watch live events and channels", "live streams",
		constants.KindLiveStream, h.services.Catalog.ListLiveStreams)
}

// mediaListing renders an unfiltered, paginated grid of one media kind.
func (h *Handler) mediaListing(c *gin.Context, title, subtitle, noun, kind string,
	fetch func(context.Context) ([]models.Media, error)) {
	st, ok := load(h, c, noun, fetch)
	if !ok {
		return
	}
	if st.IsError() {
		h.renderLoadError(c, title, st.Err)
		return
	}

	items, pager := view.Paginate(st.Data, view.ParsePage(c.Query("page")), h.config.PageSize, c.Request.URL)
	h.render(c, http.StatusOK, "grid", title, gridBody{Grids: []view.Grid{{
		Title:    title,
		Subtitle: subtitle,
		Noun:     noun,
		Cards:    view.Cards(items, view.MediaCard(kind)),
		Pager:    pager,
	}}})
}

func (h *Handler) handleGenres(c *gin.Context) {
	st, ok := load(h, c, "genres", h.services.Catalog.ListGenres)
	if !ok {
		return
	}
	if st.IsError() {
		h.renderLoadError(c, "Genres", st.Err)
		return
	}
	h.render(c, http.StatusOK, "genres", "Genres", genresBody{Genres: st.Data})
}

func (h *Handler) handleGenre(c *gin.Context) {
	id, err := detailID(c)
	if err != nil {
		h.renderNotFound(c, "Genre", "/genres", "Back to Genres")
		return
	}

	st, ok := load(h, c, "genre", func(ctx context.Context) (*models.Genre, error) {
		return h.services.Catalog.GetGenre(ctx, id)
	})
	if !ok {
		return
	}
	switch {
	case st.NotFound():
		h.renderNotFound(c, "Genre", "/genres", "Back to Genres")
		return
	case st.IsError():
		h.renderLoadError(c, "Genre", st.Err)
		return
	}

	g := st.Data
	h.render(c, http.StatusOK, "grid", g.Name, gridBody{Grids: []view.Grid{
		{
			Title: g.Name + " Movies",
			Noun:  "movies",
			Cards: view.Cards(g.Movies, view.MediaCard(constants.KindMovie)),
		},
		{
			Title: g.Name + " TV Shows",
			Noun:  "TV shows",
			Cards: view.Cards(g.TVShows, view.MediaCard(constants.KindTV)),
		},
	}})
}

func (h *Handler) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		h.renderPage(c, http.StatusOK, "grid", pageData{
			Title: "Search",
			Body:  gridBody{Prompt: "Type a title in the search box to find movies, TV shows and bongo movies."},
		})
		return
	}

	st, ok := load(h, c, "search", func(ctx context.Context) ([]models.SearchResult, error) {
		return h.services.Catalog.Search(ctx, query)
	})
	if !ok {
		return
	}
	if st.IsError() {
		h.renderLoadError(c, "Search", st.Err)
		return
	}

	h.renderPage(c, http.StatusOK, "grid", pageData{
		Title: "Search",
		Query: query,
		Body: gridBody{Grids: []view.Grid{{
			Title: `Search results for "` + query + `"`,
			Noun:  "results",
			Cards: view.Cards(st.Data, view.SearchCard),
		}}},
	})
}
