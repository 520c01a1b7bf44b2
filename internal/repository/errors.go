package repository

import (
	"errors"

	"vglist/backend/internal/apperr"

	"gorm.io/gorm"
)

// notFound turns gorm's missing-row error into a not-found app error and
// passes everything else through.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}

// firstOrNil returns nil without error when the row is missing.
func firstOrNil[T any](q *gorm.DB) (*T, error) {
	var row T
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
