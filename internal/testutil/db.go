// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"vglist/backend/internal/database"
	"vglist/backend/internal/logger"
	"vglist/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"k8s.io/utils/ptr"
)

// NewDB opens a migrated in-memory sqlite database that lives for the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:"), logger.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Game builds a catalog game with the given id and slug.
func Game(id int64, slug string) models.Game {
	return models.Game{
		ID:              id,
		Name:            slug,
		Slug:            slug,
		Cover:           ptr.To("https://images.igdb.com/igdb/image/upload/t_cover_big/" + slug + ".jpg"),
		IgdbRating:      ptr.To(80.5),
		IgdbRatingCount: ptr.To(12),
		IgdbUpdatedAt:   time.Unix(1700000000, 0).UTC(),
	}
}

// SeedGames inserts games and fails the test on error.
func SeedGames(t testing.TB, db *gorm.DB, games ...models.Game) {
	t.Helper()
	if err := db.Create(&games).Error; err != nil {
		t.Fatalf("seed games: %v", err)
	}
}

// FindGame loads a stored game by id and fails the test if it is missing.
func FindGame(t testing.TB, db *gorm.DB, id int64) models.Game {
	t.Helper()
	var game models.Game
	if err := db.First(&game, id).Error; err != nil {
		t.Fatalf("find game %d: %v", id, err)
	}
	return game
}
