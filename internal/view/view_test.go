package view

import (
	"context"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/cinetro/internal/constants"
	apperrors "github.com/amaumene/cinetro/internal/errors"
	"github.com/amaumene/cinetro/internal/models"
)

func TestLoadReady(t *testing.T) {
	st := Load(context.Background(), func(context.Context) ([]int, error) {
		return []int{1, 2}, nil
	})

	assert.True(t, st.IsReady())
	assert.False(t, st.IsError())
	assert.False(t, st.IsLoading())
	assert.Equal(t, []int{1, 2}, st.Data)
}

func TestLoadError(t *testing.T) {
	st := Load(context.Background(), func(context.Context) ([]int, error) {
		return nil, errors.WithStack(apperrors.NewStatusError("Failed to fetch movies", 500))
	})

	require.True(t, st.IsError())
	assert.Equal(t, "Failed to fetch movies", st.Message)
	assert.False(t, st.NotFound())
	assert.False(t, st.Abandoned())
}

func TestLoadNotFound(t *testing.T) {
	st := Load(context.Background(), func(context.Context) (*models.Movie, error) {
		return nil, apperrors.NewStatusError("Failed to fetch movie", 404)
	})

	assert.True(t, st.NotFound())
}

func TestLoadAbandoned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := Load(ctx, func(context.Context) ([]int, error) {
		cancel()
		return []int{1}, nil
	})

	assert.True(t, st.Abandoned())
	assert.False(t, st.IsReady(), "a response for a gone request is never ready")
}

func TestLoadingState(t *testing.T) {
	st := LoadingState[string]()
	assert.True(t, st.IsLoading())
	assert.Equal(t, "loading", st.Status.String())
}

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
	wrapped := errors.Wrap(apperrors.NewNetworkError("Failed to fetch genres", errors.New("dial tcp")), "list")
	assert.Equal(t, "Failed to fetch genres", ErrorMessage(wrapped))
}

func TestMediaCard(t *testing.T) {
	m := models.Media{
		ID: 9, Title: "Dune", Rating: 8.3, ReleaseYear: 2021,
		Genres: []models.Genre{{Name: "Sci-Fi"}}, IsNew: true, Is4K: true,
	}

	card := MediaCard(constants.KindMovie)(m)
	assert.Equal(t, "/movie/9", card.Href)
	assert.Equal(t, "Movie", card.KindLabel)
	assert.Equal(t, 2021, card.Year)
	assert.Equal(t, "8.3", card.RatingText())
	assert.Equal(t, []string{"NEW", "4K"}, card.Badges)
	assert.Equal(t, "Sci-Fi", card.Subtitle)

	live := MediaCard(constants.KindLiveStream)(models.Media{ID: 3, IsLive: true})
	assert.Equal(t, "/livestream/3", live.Href)
	assert.True(t, live.Live)
	assert.False(t, live.HasRating())
}

func TestTVShowAndSearchCards(t *testing.T) {
	show := models.TVShow{Media: models.Media{ID: 4}, Seasons: make([]models.Season, 3)}
	card := TVShowCard(show)
	assert.Equal(t, "/tv/4", card.Href)
	assert.Equal(t, "3 Seasons", card.Subtitle)

	cards := Cards([]models.SearchResult{
		{ID: 1, Type: "movie"}, {ID: 2, Type: "tv"}, {ID: 3, Type: "bongo movie"},
	}, SearchCard)
	require.Len(t, cards, 3)
	assert.Equal(t, []string{"/movie/1", "/tv/2", "/bongomovie/3"},
		[]string{cards[0].Href, cards[1].Href, cards[2].Href})
	assert.Equal(t, "Bongo Movie", cards[2].KindLabel)
}

func TestRoutes(t *testing.T) {
	assert.Equal(t, "/movie/1", MovieRoute(1))
	assert.Equal(t, "/tv/2", TVRoute(2))
	assert.Equal(t, "/bongomovie/3", BongoRoute(3))
	assert.Equal(t, "/livestream/4", LiveRoute(4))
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		page, size int
		want       []int
		wantPage   int
		wantPages  int
	}{
		{1, 2, []int{1, 2}, 1, 3},
		{3, 2, []int{5}, 3, 3},
		{9, 2, []int{5}, 3, 3},
		{0, 2, []int{1, 2}, 1, 3},
		{1, 10, []int{1, 2, 3, 4, 5}, 1, 1},
	}
	for _, tt := range tests {
		got, page, pages := Slice(items, tt.page, tt.size)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPages, pages)
	}

	got, page, pages := Slice([]int{}, 4, 2)
	assert.Empty(t, got)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, pages)
}

func TestPaginateKeepsQuery(t *testing.T) {
	base, err := url.Parse("/movies?filter=drama&page=2")
	require.NoError(t, err)

	items := make([]int, 45)
	slice, pager := Paginate(items, 2, 20, base)

	assert.Len(t, slice, 20)
	assert.True(t, pager.Visible())
	assert.Equal(t, "/movies?filter=drama", pager.PrevHref)
	assert.Equal(t, "/movies?filter=drama&page=3", pager.NextHref)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("-2"))
	assert.Equal(t, 1, ParsePage("x"))
	assert.Equal(t, 4, ParsePage("4"))
}

func TestFilters(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Genres: []models.Genre{{Name: "Action"}}},
		{ID: 2, Genres: []models.Genre{{Name: "Sci-Fi"}}},
		{ID: 3},
	}

	assert.Len(t, FilterMovies(movies, ResolveFilter(constants.MovieFilters, "all")), 3)
	scifi := FilterMovies(movies, ResolveFilter(constants.MovieFilters, "SCI-FI"))
	require.Len(t, scifi, 1)
	assert.Equal(t, 2, scifi[0].ID)

	unknown := ResolveFilter(constants.MovieFilters, "upcoming")
	assert.Equal(t, "all", unknown.ID)

	shows := []models.TVShow{
		{Media: models.Media{ID: 1, IsTrending: true}},
		{Media: models.Media{ID: 2, Genres: []models.Genre{{Name: "Drama"}}}},
	}
	trending := FilterTVShows(shows, ResolveFilter(constants.TVShowFilters, "trending"))
	require.Len(t, trending, 1)
	assert.Equal(t, 1, trending[0].ID)
	assert.Len(t, FilterTVShows(shows, ResolveFilter(constants.TVShowFilters, "drama")), 1)
}

func TestFilterMenuAndGrid(t *testing.T) {
	active := ResolveFilter(constants.MovieFilters, "comedy")
	menu := FilterMenu("/movies", constants.MovieFilters, active)

	require.Len(t, menu, len(constants.MovieFilters))
	assert.Equal(t, "/movies", menu[0].Href)
	assert.Equal(t, "/movies?filter=comedy", menu[2].Href)
	assert.True(t, menu[2].Active)

	g := Grid{Noun: "movies", Active: active}
	assert.True(t, g.Empty())
	assert.True(t, g.Filtered())
	assert.Equal(t, "No movies found", g.EmptyMessage())
}
