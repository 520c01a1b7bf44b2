package repository

import (
	"context"
	"fmt"
	"strings"

	"vglist/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConflictPolicy decides what a batch insert does with catalog IDs that are
// already stored.
type ConflictPolicy string

const (
	ConflictSkip    ConflictPolicy = "skip"
	ConflictRefresh ConflictPolicy = "refresh"
	ConflictError   ConflictPolicy = "error"
)

// GameRepository handles database operations for the catalog.
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// List pages through the catalog in ascending ID order.
func (r *GameRepository) List(ctx context.Context, page Page) (Paged[models.Game], error) {
	return paginate(r.db.WithContext(ctx).Model(&models.Game{}), "id", page, Ascending,
		func(g models.Game) int64 { return g.ID })
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchByName returns up to limit games whose name contains name, ignoring case.
func (r *GameRepository) SearchByName(ctx context.Context, name string, limit int) ([]models.Game, error) {
	games := []models.Game{}
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(name))+"%").
		Order("id").
		Limit(limit).
		Find(&games).Error
	return games, err
}

func (r *GameRepository) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&game).Error; err != nil {
		return nil, notFound(err, "Game not found")
	}
	return &game, nil
}

// InsertBatch writes one page of catalog games and returns the rows affected.
func (r *GameRepository) InsertBatch(ctx context.Context, games []models.Game, policy ConflictPolicy) (int64, error) {
	if len(games) == 0 {
		return 0, nil
	}

	q := r.db.WithContext(ctx)
	switch policy {
	case ConflictSkip:
		// No conflict target, so a known slug under a new id is skipped too.
		q = q.Clauses(clause.OnConflict{DoNothing: true})
	case ConflictRefresh:
		q = q.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true})
	case ConflictError:
	default:
		return 0, fmt.Errorf("unknown conflict policy %q", policy)
	}

	result := q.Create(&games)
	return result.RowsAffected, result.Error
}
