package igdb

import (
	"strings"
	"time"

	"vglist/backend/internal/models"

	"k8s.io/utils/ptr"
)

const (
	thumbSize = "t_thumb"
	coverSize = "t_cover_big"
)

// MapOptions tunes how records become games.
type MapOptions struct {
	// DefaultMissingRatings stores 0 for absent rating and rating count
	// instead of leaving them null.
	DefaultMissingRatings bool
}

// MapGame converts a catalog record into the persisted game shape.
func MapGame(r Record, opts MapOptions) models.Game {
	game := models.Game{
		ID:              r.ID,
		Name:            r.Name,
		Slug:            r.Slug,
		Summary:         r.Summary,
		IgdbRating:      r.Rating,
		IgdbRatingCount: r.RatingCount,
		IgdbUpdatedAt:   time.Unix(r.UpdatedAt, 0).UTC(),
	}
	if r.Cover != nil && r.Cover.URL != nil && *r.Cover.URL != "" {
		game.Cover = ptr.To(CoverURL(*r.Cover.URL))
	}
	if r.FirstReleaseDate != nil {
		game.ReleaseDate = ptr.To(time.Unix(*r.FirstReleaseDate, 0).UTC())
	}
	if opts.DefaultMissingRatings {
		if game.IgdbRating == nil {
			game.IgdbRating = ptr.To(0.0)
		}
		if game.IgdbRatingCount == nil {
			game.IgdbRatingCount = ptr.To(0)
		}
	}
	return game
}

// MapGames maps a whole page.
func MapGames(records []Record, opts MapOptions) []models.Game {
	games := make([]models.Game, 0, len(records))
	for _, r := range records {
		games = append(games, MapGame(r, opts))
	}
	return games
}

// CoverURL turns a protocol-relative thumbnail URL into an absolute URL of
// the large cover rendition.
func CoverURL(raw string) string {
	u := strings.Replace(raw, thumbSize, coverSize, 1)
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	return u
}
