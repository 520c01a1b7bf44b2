package repository

import (
	"context"

	"vglist/backend/internal/models"

	"gorm.io/gorm"
)

// StatusRepository stores play statuses and enforces that no row is left
// with every flag false.
type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, authorID string, gameID int64, flags models.StatusFlags) (*models.Status, error) {
	status := models.Status{AuthorID: authorID, GameID: gameID, StatusFlags: flags}
	if err := r.db.WithContext(ctx).Create(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// UpdateOrDeleteIfEmpty writes flags to a status owned by authorID. When all
// four flags are false the row is deleted instead and (nil, nil) is returned.
func (r *StatusRepository) UpdateOrDeleteIfEmpty(ctx context.Context, id uint, authorID string, flags models.StatusFlags) (*models.Status, error) {
	status, err := r.owned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	if flags.Empty() {
		if err := r.db.WithContext(ctx).Delete(&models.Status{}, status.ID).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	err = r.db.WithContext(ctx).Model(status).Updates(map[string]any{
		"is_playing":     flags.IsPlaying,
		"has_played":     flags.HasPlayed,
		"has_dropped":    flags.HasDropped,
		"has_backlogged": flags.HasBacklogged,
	}).Error
	if err != nil {
		return nil, err
	}
	status.StatusFlags = flags
	return status, nil
}

// Delete removes a status owned by authorID and returns it.
func (r *StatusRepository) Delete(ctx context.Context, id uint, authorID string) (*models.Status, error) {
	status, err := r.owned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Status{}, status.ID).Error; err != nil {
		return nil, err
	}
	return status, nil
}

// GetByAuthorAndGame returns the latest status of authorID for gameID, or nil.
func (r *StatusRepository) GetByAuthorAndGame(ctx context.Context, authorID string, gameID int64) (*models.Status, error) {
	return firstOrNil[models.Status](r.db.WithContext(ctx).
		Where("author_id = ? AND game_id = ?", authorID, gameID).
		Order("id DESC"))
}

// ListByAuthor pages through the statuses of authorID matching filter.
func (r *StatusRepository) ListByAuthor(ctx context.Context, authorID string, filter models.StatusFilter, page Page) (Paged[models.Status], error) {
	q := r.filtered(ctx, authorID, filter).Preload("Game")
	return paginate(q, "id", page, Descending, func(s models.Status) int64 { return int64(s.ID) })
}

func (r *StatusRepository) CountByAuthor(ctx context.Context, authorID string, filter models.StatusFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, authorID, filter).Model(&models.Status{}).Count(&count).Error
	return count, err
}

// RecentlyPlayed returns the n most recently touched statuses that are
// playing or played.
func (r *StatusRepository) RecentlyPlayed(ctx context.Context, authorID string, n int) ([]models.Status, error) {
	statuses := []models.Status{}
	err := r.db.WithContext(ctx).
		Preload("Game").
		Where("author_id = ?", authorID).
		Where(r.db.Where("is_playing = ?", true).Or("has_played = ?", true)).
		Order("updated_at DESC").
		Order("id DESC").
		Limit(n).
		Find(&statuses).Error
	return statuses, err
}

func (r *StatusRepository) filtered(ctx context.Context, authorID string, filter models.StatusFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Where("author_id = ?", authorID)
	if col := filter.Column(); col != "" {
		q = q.Where(col+" = ?", true)
	}
	return q
}

func (r *StatusRepository) owned(ctx context.Context, id uint, authorID string) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).First(&status).Error
	if err != nil {
		return nil, notFound(err, "Status not found")
	}
	return &status, nil
}
