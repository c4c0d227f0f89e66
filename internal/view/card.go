package view

import (
	"fmt"

	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/models"
)

// Card is what a grid tile shows for any catalog item.
type Card struct {
	ID        int
	Title     string
	Poster    string
	Rating    float64
	Year      int
	Subtitle  string
	Href      string
	KindLabel string
	Badges    []string
	Live      bool
}

// HasRating reports whether the rating should be displayed.
func (c Card) HasRating() bool {
	return c.Rating > 0
}

// RatingText formats the rating with one decimal.
func (c Card) RatingText() string {
	return fmt.Sprintf("%.1f", c.Rating)
}

// CardFunc maps one catalog item to its card.
type CardFunc[T any] func(T) Card

// Cards maps items to cards, preserving order.
func Cards[T any](items []T, fn CardFunc[T]) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, fn(item))
	}
	return cards
}

func MovieRoute(id int) string { return models.DetailRoute(constants.KindMovie, id) }
func TVRoute(id int) string    { return models.DetailRoute(constants.KindTV, id) }
func BongoRoute(id int) string { return models.DetailRoute(constants.KindBongoMovie, id) }
func LiveRoute(id int) string  { return models.DetailRoute(constants.KindLiveStream, id) }

// MediaCard builds cards for movies, bongo movies and live streams.
func MediaCard(kind string) CardFunc[models.Media] {
	return func(m models.Media) Card {
		return Card{
			ID:        m.ID,
			Title:     m.Title,
			Poster:    m.Poster,
			Rating:    float64(m.Rating),
			Year:      m.Year(),
			Subtitle:  m.PrimaryGenre(),
			Href:      models.DetailRoute(kind, m.ID),
			KindLabel: models.KindLabel(kind),
			Badges:    badges(m),
			Live:      kind == constants.KindLiveStream && m.IsLive,
		}
	}
}

// TVShowCard builds the card of a TV show, with its season count as subtitle.
func TVShowCard(s models.TVShow) Card {
	card := MediaCard(constants.KindTV)(s.Media)
	switch n := len(s.Seasons); n {
	case 0:
	case 1:
		card.Subtitle = "1 Season"
	default:
		card.Subtitle = fmt.Sprintf("%d Seasons", n)
	}
	return card
}

// SearchCard builds the card of a search hit.
func SearchCard(r models.SearchResult) Card {
	return Card{
		ID:        r.ID,
		Title:     r.Title,
		Poster:    r.Poster,
		Href:      r.Route(),
		KindLabel: r.KindLabel(),
	}
}

func badges(m models.Media) []string {
	var out []string
	if m.IsNew {
		out = append(out, "NEW")
	}
	if m.Is4K {
		out = append(out, "4K")
	}
	if m.IsTrending {
		out = append(out, "TRENDING")
	}
	return out
}
