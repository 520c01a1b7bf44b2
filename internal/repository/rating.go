package repository

import (
	"context"

	"vglist/backend/internal/models"

	"gorm.io/gorm"
)

// RatingRepository stores ratings. Scores are already doubled by the caller.
type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// CreateWithStatus inserts a rating and, when the author has no status for
// the game yet, a played status, in one transaction.
func (r *RatingRepository) CreateWithStatus(ctx context.Context, authorID string, gameID int64, score int) (*models.Rating, error) {
	rating := models.Rating{AuthorID: authorID, GameID: gameID, Score: score}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Status{}).
			Where("author_id = ? AND game_id = ?", authorID, gameID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		status := models.Status{
			AuthorID:    authorID,
			GameID:      gameID,
			StatusFlags: models.StatusFlags{HasPlayed: true},
		}
		return tx.Create(&status).Error
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Update changes score and game of a rating owned by authorID.
func (r *RatingRepository) Update(ctx context.Context, id uint, authorID string, gameID int64, score int) (*models.Rating, error) {
	rating, err := r.owned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(rating).
		Updates(map[string]any{"score": score, "game_id": gameID}).Error
	if err != nil {
		return nil, err
	}
	rating.Score, rating.GameID = score, gameID
	return rating, nil
}

// Delete removes a rating owned by authorID and returns it.
func (r *RatingRepository) Delete(ctx context.Context, id uint, authorID string) (*models.Rating, error) {
	rating, err := r.owned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Rating{}, rating.ID).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// GetByAuthorAndGame returns the latest rating of authorID for gameID, or nil.
func (r *RatingRepository) GetByAuthorAndGame(ctx context.Context, authorID string, gameID int64) (*models.Rating, error) {
	return firstOrNil[models.Rating](r.db.WithContext(ctx).
		Where("author_id = ? AND game_id = ?", authorID, gameID).
		Order("id DESC"))
}

// AggregateBySlug averages every rating of the game with the given slug.
func (r *RatingRepository) AggregateBySlug(ctx context.Context, slug string) (Aggregate, error) {
	var agg Aggregate
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG(ratings.score) AS avg, COUNT(ratings.id) AS count").
		Joins("JOIN games ON games.id = ratings.game_id").
		Where("games.slug = ?", slug).
		Scan(&agg).Error
	return agg, err
}

// AggregateByAuthor averages every rating written by authorID.
func (r *RatingRepository) AggregateByAuthor(ctx context.Context, authorID string) (Aggregate, error) {
	var agg Aggregate
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG(score) AS avg, COUNT(id) AS count").
		Where("author_id = ?", authorID).
		Scan(&agg).Error
	return agg, err
}

// ListByAuthor pages through the ratings of authorID, newest first.
func (r *RatingRepository) ListByAuthor(ctx context.Context, authorID string, page Page) (Paged[models.Rating], error) {
	q := r.db.WithContext(ctx).Preload("Game").Where("author_id = ?", authorID)
	return paginate(q, "id", page, Descending, func(r models.Rating) int64 { return int64(r.ID) })
}

func (r *RatingRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *RatingRepository) owned(ctx context.Context, id uint, authorID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).First(&rating).Error
	if err != nil {
		return nil, notFound(err, "Rating not found")
	}
	return &rating, nil
}
