package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/carousel"
	"github.com/amaumene/cinetro/internal/middleware"
	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/player"
	"github.com/amaumene/cinetro/internal/session"
)

// Player events reported by the page script.
const (
	eventTimeUpdate       = "timeupdate"
	eventDurationChange   = "durationchange"
	eventPlay             = "play"
	eventPause            = "pause"
	eventEnded            = "ended"
	eventFullscreenChange = "fullscreenchange"
	eventRejected         = "rejected"
	eventFullscreenError  = "fullscreenerror"
)

type playerResponse struct {
	State    player.State      `json:"state"`
	Commands []session.Command `json:"commands"`
}

type hoverRequest struct {
	Hovering bool `json:"hovering"`
}

type volumeRequest struct {
	Volume *float64 `json:"volume" binding:"required"`
}

type seekRequest struct {
	Time *float64 `json:"time" binding:"required"`
}

type eventRequest struct {
	Type    string  `json:"type" binding:"required"`
	Value   float64 `json:"value"`
	Message string  `json:"message"`
}

func apiError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// hero returns the carousel mounted by the last home page view in this session.
func (h *Handler) hero(c *gin.Context) (*carousel.Carousel[models.Movie], bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		apiError(c, http.StatusNotFound, "no hero carousel")
		return nil, false
	}
	hero, ok := sess.Hero()
	if !ok {
		apiError(c, http.StatusNotFound, "no hero carousel")
		return nil, false
	}
	return hero, true
}

func (h *Handler) handleHeroState(c *gin.Context) {
	if hero, ok := h.hero(c); ok {
		c.JSON(http.StatusOK, hero.State())
	}
}

func (h *Handler) handleHeroNext(c *gin.Context) {
	if hero, ok := h.hero(c); ok {
		hero.Next()
		c.JSON(http.StatusOK, hero.State())
	}
}

func (h *Handler) handleHeroPrev(c *gin.Context) {
	if hero, ok := h.hero(c); ok {
		hero.Prev()
		c.JSON(http.StatusOK, hero.State())
	}
}

func (h *Handler) handleHeroHover(c *gin.Context) {
	var req hoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid hover request")
		return
	}
	if hero, ok := h.hero(c); ok {
		hero.SetHovering(req.Hovering)
		c.JSON(http.StatusOK, hero.State())
	}
}

// player returns the controller mounted for the :id stream in this session.
func (h *Handler) player(c *gin.Context) (*session.Player, bool) {
	id, err := detailID(c)
	if err != nil {
		apiError(c, http.StatusNotFound, err.Error())
		return nil, false
	}
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		apiError(c, http.StatusNotFound, "no player for this stream")
		return nil, false
	}
	p, ok := sess.Player(id)
	if !ok {
		apiError(c, http.StatusNotFound, "no player for this stream")
		return nil, false
	}
	return p, true
}

// respondPlayer answers with the controller state and the commands queued for the
// page's video element.
func respondPlayer(c *gin.Context, p *session.Player) {
	c.JSON(http.StatusOK, playerResponse{
		State:    p.Controller.State(),
		Commands: p.Remote.Drain(),
	})
}

func (h *Handler) handlePlayerState(c *gin.Context) {
	if p, ok := h.player(c); ok {
		respondPlayer(c, p)
	}
}

func (h *Handler) handlePlayerToggle(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}
	// A rejected play is reported through the state notice.
	if err := p.Controller.TogglePlay(); err != nil {
		h.services.Logger.Debugf("[Player] toggle on stream %d: %v", p.StreamID, err)
	}
	respondPlayer(c, p)
}

func (h *Handler) handlePlayerVolume(c *gin.Context) {
	var req volumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid volume request")
		return
	}
	if p, ok := h.player(c); ok {
		p.Controller.SetVolume(*req.Volume)
		respondPlayer(c, p)
	}
}

func (h *Handler) handlePlayerSeek(c *gin.Context) {
	var req seekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid seek request")
		return
	}
	if p, ok := h.player(c); ok {
		p.Controller.Seek(*req.Time)
		respondPlayer(c, p)
	}
}

func (h *Handler) handlePlayerFullscreen(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}
	if err := p.Controller.ToggleFullscreen(); err != nil {
		h.services.Logger.Debugf("[Player] fullscreen on stream %d: %v", p.StreamID, err)
	}
	respondPlayer(c, p)
}

func (h *Handler) handlePlayerPointer(c *gin.Context) {
	if p, ok := h.player(c); ok {
		p.Controller.PointerMoved()
		respondPlayer(c, p)
	}
}

func (h *Handler) handlePlayerDismiss(c *gin.Context) {
	if p, ok := h.player(c); ok {
		p.Controller.DismissNotice()
		respondPlayer(c, p)
	}
}

// handlePlayerEvent feeds an event of the page's video element back into the controller.
func (h *Handler) handlePlayerEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid event")
		return
	}
	p, ok := h.player(c)
	if !ok {
		return
	}

	ctl := p.Controller
	switch req.Type {
	case eventTimeUpdate:
		ctl.TimeUpdated(req.Value)
	case eventDurationChange:
		ctl.DurationChanged(req.Value)
	case eventPlay:
		ctl.Played()
	case eventPause:
		ctl.Paused()
	case eventEnded:
		ctl.Ended()
	case eventFullscreenChange:
		active := req.Value != 0
		p.Remote.SetFullscreen(active)
		ctl.FullscreenChanged(active)
	case eventRejected:
		ctl.PlaybackRejected(req.Message)
	case eventFullscreenError:
		p.Remote.SetFullscreen(false)
		ctl.FullscreenRejected(req.Message)
	default:
		apiError(c, http.StatusBadRequest, "unknown event type: "+req.Type)
		return
	}
	respondPlayer(c, p)
}
