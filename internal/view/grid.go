package view

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/models"
)

// Grid is a titled list of cards with optional filters and paging.
type Grid struct {
	Title    string
	Subtitle string
	// Noun is the plural used in the empty state, e.g. "movies".
	Noun    string
	Cards   []Card
	Filters []FilterOption
	Active  constants.Filter
	Pager   Pager
	// MoreHref links to the full listing when the grid is a preview.
	MoreHref string
}

// Empty reports whether there is nothing to show.
func (g Grid) Empty() bool {
	return len(g.Cards) == 0
}

// EmptyMessage is the text of the empty state.
func (g Grid) EmptyMessage() string {
	return "No " + g.Noun + " found"
}

// Filtered reports whether a filter other than "all" is active.
func (g Grid) Filtered() bool {
	return g.Active.ID != "" && g.Active.ID != "all"
}

// FilterOption is one entry of the filter menu.
type FilterOption struct {
	constants.Filter
	Href   string
	Active bool
}

// Pager describes the current slice of a longer list.
type Pager struct {
	Page     int
	Pages    int
	PrevHref string
	NextHref string
}

// Visible reports whether there is more than one page.
func (p Pager) Visible() bool {
	return p.Pages > 1
}

// Slice returns the items of the 1-based page and the page it settled on. Pages out of
// range are clamped.
func Slice[T any](items []T, page, size int) ([]T, int, int) {
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	pages := (len(items) + size - 1) / size
	if pages == 0 {
		return items, 1, 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end], page, pages
}

// Paginate slices items and builds the pager links on top of base, keeping its query.
func Paginate[T any](items []T, page, size int, base *url.URL) ([]T, Pager) {
	slice, page, pages := Slice(items, page, size)
	p := Pager{Page: page, Pages: pages}
	if page > 1 {
		p.PrevHref = pageHref(base, page-1)
	}
	if page < pages {
		p.NextHref = pageHref(base, page+1)
	}
	return slice, p
}

// ParsePage reads a 1-based page number, defaulting to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func pageHref(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

// ResolveFilter returns the option matching id. Unknown ids fall back to the first
// option, which is always "all".
func ResolveFilter(options []constants.Filter, id string) constants.Filter {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, f := range options {
		if f.ID == id {
			return f
		}
	}
	return options[0]
}

// FilterMenu builds the filter links for path with active highlighted.
func FilterMenu(path string, options []constants.Filter, active constants.Filter) []FilterOption {
	menu := make([]FilterOption, 0, len(options))
	for _, f := range options {
		href := path
		if f.ID != "all" {
			href += "?filter=" + url.QueryEscape(f.ID)
		}
		menu = append(menu, FilterOption{Filter: f, Href: href, Active: f.ID == active.ID})
	}
	return menu
}

// FilterMovies keeps the movies filed under the filter's genre.
func FilterMovies(items []models.Movie, f constants.Filter) []models.Movie {
	if f.ID == "all" {
		return items
	}
	var out []models.Movie
	for _, m := range items {
		if m.HasGenre(f.ID) {
			out = append(out, m)
		}
	}
	return out
}

// FilterTVShows keeps the shows matching the filter; "trending" uses the trending flag.
func FilterTVShows(items []models.TVShow, f constants.Filter) []models.TVShow {
	if f.ID == "all" {
		return items
	}
	var out []models.TVShow
	for _, s := range items {
		if f.ID == "trending" {
			if s.IsTrending {
				out = append(out, s)
			}
			continue
		}
		if s.HasGenre(f.ID) {
			out = append(out, s)
		}
	}
	return out
}
