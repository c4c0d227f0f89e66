package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/cehbz/torrentname"
)

// Genre is a catalog genre. The detail endpoint also carries the titles filed under it.
type Genre struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Movies  []Media `json:"movies,omitempty"`
	TVShows []Media `json:"tv_shows,omitempty"`
}

// Rating accepts both JSON numbers and decimal strings ("7.5").
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*r = 0
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid rating %s: %w", data, err)
	}
	*r = Rating(f)
	return nil
}

// Media is the shape shared by movies, bongo movies, live streams and TV show list items.
type Media struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Poster      string  `json:"poster"`
	Backdrop    string  `json:"backdrop"`
	Rating      Rating  `json:"rating"`
	ReleaseYear int     `json:"release_year"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
	Genres      []Genre `json:"genres"`
	TrailerURL  string  `json:"trailer_url"`
	DownloadURL string  `json:"download_url"`
	VideoFile   string  `json:"video_file"`
	CreatedAt   string  `json:"created_at"`
	IsLive      bool    `json:"is_live"`
	IsFeatured  bool    `json:"is_featured"`
	IsNew       bool    `json:"is_new"`
	Is4K        bool    `json:"is_4k"`
	IsTrending  bool    `json:"is_trending"`
}

// Movie, BongoMovie and LiveStream share the Media shape.
type (
	Movie      = Media
	BongoMovie = Media
	LiveStream = Media
)

// TVShow is a Media with its seasons.
type TVShow struct {
	Media
	Seasons []Season `json:"seasons"`
}

// Season groups the episodes of one season.
type Season struct {
	ID           int       `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}

// Episode is one TV episode.
type Episode struct {
	ID            int            `json:"id"`
	EpisodeNumber int            `json:"episode_number"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Duration      int            `json:"duration"`
	DownloadLinks []DownloadLink `json:"download_links"`
}

// DownloadLink is one downloadable rendition of an episode.
type DownloadLink struct {
	ID             int    `json:"id"`
	Quality        string `json:"quality"`
	QualityDisplay string `json:"quality_display"`
	Source         string `json:"source"`
	URL            string `json:"url"`
}

// Year returns the release year, falling back to the year of created_at.
func (m Media) Year() int {
	if m.ReleaseYear > 0 {
		return m.ReleaseYear
	}
	if len(m.CreatedAt) >= 4 {
		if y, err := strconv.Atoi(m.CreatedAt[:4]); err == nil {
			return y
		}
	}
	return 0
}

// HasGenre reports whether the item is filed under the named genre (case-insensitive).
func (m Media) HasGenre(name string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g.Name, name) {
			return true
		}
	}
	return false
}

// GenreNames returns the genre names in API order.
func (m Media) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// PrimaryGenre returns the first genre name or "".
func (m Media) PrimaryGenre() string {
	if len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0].Name
}

// TrailerEmbedURL turns a YouTube id or URL into an embeddable URL.
// Non-YouTube URLs are returned unchanged.
func (m Media) TrailerEmbedURL() string {
	return TrailerEmbedURL(m.TrailerURL)
}

// TrailerEmbedURL turns a YouTube id or URL into an embeddable URL.
func TrailerEmbedURL(trailer string) string {
	trailer = strings.TrimSpace(trailer)
	if trailer == "" {
		return ""
	}
	if !strings.HasPrefix(trailer, "http://") && !strings.HasPrefix(trailer, "https://") {
		return "https://www.youtube.com/embed/" + url.PathEscape(trailer)
	}

	u, err := url.Parse(trailer)
	if err != nil {
		return trailer
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"), strings.HasPrefix(u.Path, "/shorts/"):
			id = path.Base(u.Path)
		}
	}
	if id == "" {
		return trailer
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id)
}

// Season returns the season with the given number, or nil.
func (s TVShow) Season(number int) *Season {
	for i := range s.Seasons {
		if s.Seasons[i].SeasonNumber == number {
			return &s.Seasons[i]
		}
	}
	return nil
}

// FirstSeasonNumber returns the number of the first listed season, 0 when there is none.
func (s TVShow) FirstSeasonNumber() int {
	if len(s.Seasons) == 0 {
		return 0
	}
	return s.Seasons[0].SeasonNumber
}

// Label is the display label of a link. Without quality_display it is derived from the
// release name in the URL's file name ("1080p WEB-DL"), then from quality.
func (l DownloadLink) Label() string {
	if l.QualityDisplay != "" {
		return l.QualityDisplay
	}
	if name := fileName(l.URL); name != "" {
		if parsed := torrentname.Parse(name); parsed != nil {
			parts := make([]string, 0, 2)
			if parsed.Resolution != "" {
				parts = append(parts, parsed.Resolution)
			}
			if parsed.Source != "" {
				parts = append(parts, parsed.Source)
			}
			if len(parts) > 0 {
				return strings.Join(parts, " ")
			}
		}
	}
	if l.Quality != "" {
		return l.Quality
	}
	return "Download"
}

// SourceLabel returns the link source or a placeholder.
func (l DownloadLink) SourceLabel() string {
	if l.Source == "" {
		return "Unknown source"
	}
	return l.Source
}

func fileName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	name, err := url.PathUnescape(path.Base(u.Path))
	if err != nil || name == "." || name == "/" {
		return ""
	}
	return name
}

// MarshalJSON keeps ratings numeric on the way out.
func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(r))
}
