package igdb

// Record is one game as returned by the IGDB games endpoint. Timestamps are
// unix seconds.
type Record struct {
	ID               int64    `json:"id"`
	UpdatedAt        int64    `json:"updated_at"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Cover            *Cover   `json:"cover,omitempty"`
	FirstReleaseDate *int64   `json:"first_release_date,omitempty"`
	Summary          *string  `json:"summary,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	RatingCount      *int     `json:"rating_count,omitempty"`
}

// Cover is the expanded cover image reference of a record.
type Cover struct {
	URL *string `json:"url,omitempty"`
}
