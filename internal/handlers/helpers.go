package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/amaumene/cinetro/internal/errors"
	"github.com/amaumene/cinetro/internal/view"
)

// failure is the panel shown instead of content: an error with a retry link, or a
// not-found message with a way back.
type failure struct {
	Title    string
	Message  string
	Href     string
	Label    string
	NotFound bool
}

func mustHTMLRender() *htmlRender {
	r, err := newHTMLRender()
	if err != nil {
		panic(err)
	}
	return r
}

// render writes page inside the layout.
func (h *Handler) render(c *gin.Context, status int, page, title string, body any) {
	h.renderPage(c, status, page, pageData{Title: title, Body: body})
}

func (h *Handler) renderPage(c *gin.Context, status int, page string, data pageData) {
	data.Path = c.Request.URL.Path
	if data.Query == "" {
		data.Query = c.Query("q")
	}
	c.HTML(status, page, data)
}

func (h *Handler) renderFailure(c *gin.Context, status int, title string, f *failure) {
	h.render(c, status, "failure", title, f)
}

// renderLoadError shows the error panel for a failed fetch with a retry link to the
// same URL.
func (h *Handler) renderLoadError(c *gin.Context, title string, err error) {
	h.renderFailure(c, http.StatusBadGateway, title, loadFailure(c, err))
}

func loadFailure(c *gin.Context, err error) *failure {
	return &failure{
		Title:   "Error Loading Content",
		Message: view.ErrorMessage(err),
		Href:    c.Request.URL.RequestURI(),
		Label:   "Try Again",
	}
}

// renderNotFound shows the "<Kind> Not Found" panel with a link back to the listing.
func (h *Handler) renderNotFound(c *gin.Context, kind, backHref, backLabel string) {
	h.renderFailure(c, http.StatusNotFound, kind+" Not Found", &failure{
		Title:    kind + " Not Found",
		Message:  "The " + strings.ToLower(kind) + " you're looking for doesn't exist or has been removed.",
		Href:     backHref,
		Label:    backLabel,
		NotFound: true,
	})
}

// load runs fetch with the request context. It returns false when the visitor went
// away before the response arrived; nothing must be rendered then.
func load[T any](h *Handler, c *gin.Context, what string, fetch func(context.Context) (T, error)) (view.State[T], bool) {
	st := view.Load(c.Request.Context(), fetch)
	switch {
	case st.Abandoned():
		h.services.Logger.Debugf("[Handlers] %s abandoned: %v", what, st.Err)
		c.Abort()
		return st, false
	case st.NotFound():
		h.services.Logger.Debugf("[Handlers] %s not found", what)
	case st.IsError():
		h.services.Logger.Warnf("[Handlers] %s failed: %v", what, st.Err)
	}
	return st, true
}

// detailID parses the :id parameter. An id that is not a positive integer can never
// match a catalog item.
func detailID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidIDError(raw)
	}
	return id, nil
}
