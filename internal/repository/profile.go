package repository

import (
	"context"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository stores user bios.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, notFound(err, "Bio not found")
	}
	return &profile, nil
}

// Create stores the first bio of userID. A second call fails validation.
func (r *ProfileRepository) Create(ctx context.Context, userID, bio string) (*models.Profile, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("Bio already exists")
	}

	profile := models.Profile{UserID: userID, Bio: bio}
	if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID, bio string) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(profile).Update("bio", bio).Error; err != nil {
		return nil, err
	}
	profile.Bio = bio
	return profile, nil
}

// Delete removes the bio of userID and returns what was deleted.
func (r *ProfileRepository) Delete(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Profile{}, profile.ID).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
