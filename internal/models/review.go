package models

import "time"

// Review is a written review with an optional doubled score.
type Review struct {
	ID          uint      `gorm:"primaryKey"`
	AuthorID    string    `gorm:"size:191;not null;index:idx_reviews_author_game"`
	GameID      int64     `gorm:"not null;index:idx_reviews_author_game;index"`
	Score       *int
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
