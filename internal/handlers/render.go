package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/player"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists the page templates; each is parsed together with the layout and partials.
var pages = []string{
	"home", "grid", "genres", "movie", "tvshow", "livestream",
	"about", "contact", "privacy", "terms", "failure",
}

var funcMap = template.FuncMap{
	"join":       strings.Join,
	"runtime":    formatRuntime,
	"clock":      player.FormatTime,
	"trailerURL": models.TrailerEmbedURL,
	"rating":     func(r models.Rating) string { return fmt.Sprintf("%.1f", float64(r)) },
	"add":        func(a, b int) int { return a + b },
	"appName":    func() string { return constants.AppName },
}

// htmlRender implements gin's render.HTMLRender over a map of per-page templates.
type htmlRender struct {
	tmpls map[string]*template.Template
}

// newHTMLRender parses every page template from the embedded file system.
func newHTMLRender() (*htmlRender, error) {
	tmpls := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("").Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		tmpls[page] = t
	}
	return &htmlRender{tmpls: tmpls}, nil
}

func (r *htmlRender) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.tmpls[name],
		Name:     "layout",
		Data:     data,
	}
}

// pageData is what the layout renders around each page body.
type pageData struct {
	Title  string
	Path   string
	Query  string
	Notice string
	// Hero is set on the home page only.
	Hero bool
	Body any
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
