package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/constants"
	apperrors "github.com/amaumene/cinetro/internal/errors"
	"github.com/amaumene/cinetro/internal/middleware"
	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/player"
)

// noticeNoDownload is the query value the download redirect leaves on the detail page.
const noticeNoDownload = "no-download"

type mediaBody struct {
	Item         *models.Media
	KindLabel    string
	BackHref     string
	BackLabel    string
	DownloadHref string
	Notice       string
	DismissHref  string
}

type tvShowBody struct {
	Show        *models.TVShow
	Season      *models.Season
	Expanded    int
	SeasonHrefs map[int]string
}

type liveStreamBody struct {
	Stream *models.LiveStream
	State  player.State
}

// mediaDetail describes one detail route backed by a Media endpoint.
type mediaDetail struct {
	kind      string
	backHref  string
	backLabel string
	fetch     func(context.Context, int) (*models.Media, error)
}

func (h *Handler) movieDetail() mediaDetail {
	return mediaDetail{
		kind:      constants.KindMovie,
		backHref:  "/movies",
		backLabel: "Back to Movies",
		fetch:     h.services.Catalog.GetMovie,
	}
}

func (h *Handler) bongoMovieDetail() mediaDetail {
	return mediaDetail{
		kind:      constants.KindBongoMovie,
		backHref:  "/bongomovies",
		backLabel: "Back to Bongo Movies",
		fetch:     h.services.Catalog.GetBongoMovie,
	}
}

func (h *Handler) handleMovie(c *gin.Context) {
	h.renderMediaDetail(c, h.movieDetail())
}

func (h *Handler) handleBongoMovie(c *gin.Context) {
	h.renderMediaDetail(c, h.bongoMovieDetail())
}

func (h *Handler) handleMovieDownload(c *gin.Context) {
	h.redirectDownload(c, h.movieDetail())
}

func (h *Handler) handleBongoMovieDownload(c *gin.Context) {
	h.redirectDownload(c, h.bongoMovieDetail())
}

// fetchMedia loads the item for the :id parameter, rendering the not-found or error
// panel itself. It returns nil when the caller has nothing left to do.
func (h *Handler) fetchMedia(c *gin.Context, d mediaDetail) *models.Media {
	label := models.KindLabel(d.kind)
	id, err := detailID(c)
	if err != nil {
		h.renderNotFound(c, label, d.backHref, d.backLabel)
		return nil
	}

	st, ok := load(h, c, d.kind, func(ctx context.Context) (*models.Media, error) {
		return d.fetch(ctx, id)
	})
	switch {
	case !ok:
		return nil
	case st.NotFound():
		h.renderNotFound(c, label, d.backHref, d.backLabel)
		return nil
	case st.IsError():
		h.renderLoadError(c, label, st.Err)
		return nil
	}
	return st.Data
}

func (h *Handler) renderMediaDetail(c *gin.Context, d mediaDetail) {
	item := h.fetchMedia(c, d)
	if item == nil {
		return
	}

	self := models.DetailRoute(d.kind, item.ID)
	body := mediaBody{
		Item:        item,
		KindLabel:   models.KindLabel(d.kind),
		BackHref:    d.backHref,
		BackLabel:   d.backLabel,
		DismissHref: self,
	}
	if item.DownloadURL != "" {
		body.DownloadHref = self + "/download"
	}
	if c.Query("notice") == noticeNoDownload {
		body.Notice = apperrors.NewDownloadUnavailableError().Message
	}

	h.render(c, http.StatusOK, "movie", item.Title, body)
}

// redirectDownload sends the visitor to the item's download URL, or back to the detail
// page with a notice when there is none.
func (h *Handler) redirectDownload(c *gin.Context, d mediaDetail) {
	item := h.fetchMedia(c, d)
	if item == nil {
		return
	}
	if item.DownloadURL == "" {
		h.services.Logger.Infof("[Handlers] no download link for %s %d", d.kind, item.ID)
		c.Redirect(http.StatusFound, models.DetailRoute(d.kind, item.ID)+"?notice="+noticeNoDownload)
		return
	}
	c.Redirect(http.StatusFound, item.DownloadURL)
}

func (h *Handler) handleTVShow(c *gin.Context) {
	const label = "TV Show"
	id, err := detailID(c)
	if err != nil {
		h.renderNotFound(c, label, "/tvshows", "Back to TV Shows")
		return
	}

	st, ok := load(h, c, "tv show", func(ctx context.Context) (*models.TVShow, error) {
		return h.services.Catalog.GetTVShow(ctx, id)
	})
	switch {
	case !ok:
		return
	case st.NotFound():
		h.renderNotFound(c, label, "/tvshows", "Back to TV Shows")
		return
	case st.IsError():
		h.renderLoadError(c, label, st.Err)
		return
	}

	show := st.Data
	number := show.FirstSeasonNumber()
	if n, err := strconv.Atoi(c.Query("season")); err == nil {
		number = n
	}
	expanded, _ := strconv.Atoi(c.Query("episode"))

	self := models.DetailRoute(constants.KindTV, show.ID)
	hrefs := make(map[int]string, len(show.Seasons))
	for _, s := range show.Seasons {
		hrefs[s.SeasonNumber] = self + "?season=" + strconv.Itoa(s.SeasonNumber)
	}

	h.render(c, http.StatusOK, "tvshow", show.Title, tvShowBody{
		Show:        show,
		Season:      show.Season(number),
		Expanded:    expanded,
		SeasonHrefs: hrefs,
	})
}

func (h *Handler) handleLiveStream(c *gin.Context) {
	const label = "Live Stream"
	id, err := detailID(c)
	if err != nil {
		h.renderNotFound(c, label, "/livestreams", "Back to Live Streams")
		return
	}

	st, ok := load(h, c, "live stream", func(ctx context.Context) (*models.LiveStream, error) {
		return h.services.Catalog.GetLiveStream(ctx, id)
	})
	switch {
	case !ok:
		return
	case st.NotFound():
		h.renderNotFound(c, label, "/livestreams", "Back to Live Streams")
		return
	case st.IsError():
		h.renderLoadError(c, label, st.Err)
		return
	}

	stream := st.Data
	body := liveStreamBody{
		Stream: stream,
		State:  player.State{Volume: player.DefaultVolume, ControlsVisible: true},
	}
	if sess, ok := middleware.SessionFrom(c); ok {
		body.State = sess.OpenPlayer(stream.ID, stream.VideoFile).Controller.State()
	}

	h.render(c, http.StatusOK, "livestream", stream.Title, body)
}
