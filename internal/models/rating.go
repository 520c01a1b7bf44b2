package models

import "time"

// Rating is a score from 0 to 10, twice the half-star value shown to users.
type Rating struct {
	ID        uint      `gorm:"primaryKey"`
	AuthorID  string    `gorm:"size:191;not null;index:idx_ratings_author_game"`
	GameID    int64     `gorm:"not null;index:idx_ratings_author_game;index"`
	Score     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
