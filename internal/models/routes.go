package models

import (
	"strconv"

	"github.com/amaumene/cinetro/internal/constants"
)

// DetailRoute builds the detail page path for a content kind.
func DetailRoute(kind string, id int) string {
	sid := strconv.Itoa(id)
	switch kind {
	case constants.KindMovie:
		return "/movie/" + sid
	case constants.KindTV:
		return "/tv/" + sid
	case constants.KindLiveStream:
		return "/livestream/" + sid
	default:
		return "/bongomovie/" + sid
	}
}

// KindLabel returns the display label for a content kind.
func KindLabel(kind string) string {
	switch kind {
	case constants.KindMovie:
		return "Movie"
	case constants.KindTV:
		return "TV Show"
	case constants.KindLiveStream:
		return "Live Stream"
	default:
		return "Bongo Movie"
	}
}
