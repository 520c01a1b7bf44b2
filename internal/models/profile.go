package models

import "time"

// Profile stores the free-text bio of one identity.
type Profile struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:191;not null;uniqueIndex"`
	Bio       string    `gorm:"size:160;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
