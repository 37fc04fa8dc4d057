package repository

import (
	"errors"

	"gorm.io/gorm"

	"rentify/internal/models"
)

// wrapFind translates gorm lookup errors into the core error kinds so
// callers never see storage internals.
func wrapFind(err error, resource string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotFoundError(resource, id)
	}
	return models.StorageError(err)
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.DuplicateError("record violates a uniqueness constraint")
	}
	return models.StorageError(err)
}
