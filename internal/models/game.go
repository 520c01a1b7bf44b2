package models

import "time"

// Game is a catalog entry ingested from IGDB. The ID is the catalog's own.
type Game struct {
	ID              int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name            string     `gorm:"size:255;not null;index" json:"name"`
	Slug            string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Cover           *string    `gorm:"size:512" json:"cover"`
	ReleaseDate     *time.Time `json:"release_date"`
	Summary         *string    `gorm:"type:text" json:"summary"`
	IgdbRating      *float64   `json:"igdb_rating"`
	IgdbRatingCount *int       `json:"igdb_rating_count"`
	IgdbUpdatedAt   time.Time  `gorm:"not null" json:"igdb_updated_at"`
}
