package repository

import (
	"context"

	"vglist/backend/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository stores written reviews.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Update applies the non-nil fields to a review owned by authorID.
func (r *ReviewRepository) Update(ctx context.Context, id uint, authorID string, description *string, score *int) (*models.Review, error) {
	review, err := r.owned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if description != nil {
		changes["description"] = *description
		review.Description = *description
	}
	if score != nil {
		changes["score"] = *score
		review.Score = score
	}
	if len(changes) == 0 {
		return review, nil
	}
	if err := r.db.WithContext(ctx).Model(review).Updates(changes).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review owned by authorID and returns it.
func (r *ReviewRepository) Delete(ctx context.Context, id uint, authorID string) (*models.Review, error) {
	review, err := r.owned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Review{}, review.ID).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListByGame pages through the reviews of a game, newest first.
func (r *ReviewRepository) ListByGame(ctx context.Context, gameID int64, page Page) (Paged[models.Review], error) {
	q := r.db.WithContext(ctx).Where("game_id = ?", gameID)
	return paginate(q, "id", page, Descending, reviewKey)
}

// ListByAuthor pages through the reviews of authorID with their games.
func (r *ReviewRepository) ListByAuthor(ctx context.Context, authorID string, page Page) (Paged[models.Review], error) {
	q := r.db.WithContext(ctx).Preload("Game").Where("author_id = ?", authorID)
	return paginate(q, "id", page, Descending, reviewKey)
}

// GetByAuthorAndGame returns the latest review of authorID for gameID, or nil.
func (r *ReviewRepository) GetByAuthorAndGame(ctx context.Context, authorID string, gameID int64) (*models.Review, error) {
	return firstOrNil[models.Review](r.db.WithContext(ctx).
		Where("author_id = ? AND game_id = ?", authorID, gameID).
		Order("id DESC"))
}

func (r *ReviewRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Recent returns the n newest reviews with their games.
func (r *ReviewRepository) Recent(ctx context.Context, n int) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.db.WithContext(ctx).Preload("Game").Order("id DESC").Limit(n).Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) owned(ctx context.Context, id uint, authorID string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).First(&review).Error
	if err != nil {
		return nil, notFound(err, "Review not found")
	}
	return &review, nil
}

func reviewKey(r models.Review) int64 { return int64(r.ID) }
