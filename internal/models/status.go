package models

import "time"

// StatusFlags are the four independent play-state booleans. They are not
// mutually exclusive in storage.
type StatusFlags struct {
	IsPlaying     bool `gorm:"not null;default:false" json:"is_playing"`
	HasPlayed     bool `gorm:"not null;default:false" json:"has_played"`
	HasDropped    bool `gorm:"not null;default:false" json:"has_dropped"`
	HasBacklogged bool `gorm:"not null;default:false" json:"has_backlogged"`
}

// Empty reports whether every flag is false.
func (f StatusFlags) Empty() bool {
	return !f.IsPlaying && !f.HasPlayed && !f.HasDropped && !f.HasBacklogged
}

// Status records how an identity relates to a game. A row never has all
// flags false; see repository.StatusRepository.UpdateOrDeleteIfEmpty.
type Status struct {
	ID          uint   `gorm:"primaryKey"`
	AuthorID    string `gorm:"size:191;not null;index:idx_statuses_author_game"`
	GameID      int64  `gorm:"not null;index:idx_statuses_author_game"`
	StatusFlags `gorm:"embedded"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

// StatusFilter selects which flag a status listing filters on.
type StatusFilter string

const (
	StatusFilterAll        StatusFilter = "all"
	StatusFilterPlaying    StatusFilter = "playing"
	StatusFilterPlayed     StatusFilter = "played"
	StatusFilterDropped    StatusFilter = "dropped"
	StatusFilterBacklogged StatusFilter = "backlogged"
)

// Column returns the flag column for the filter, or "" for all.
func (f StatusFilter) Column() string {
	switch f {
	case StatusFilterPlaying:
		return "is_playing"
	case StatusFilterPlayed:
		return "has_played"
	case StatusFilterDropped:
		return "has_dropped"
	case StatusFilterBacklogged:
		return "has_backlogged"
	default:
		return ""
	}
}
