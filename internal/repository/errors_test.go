package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rentify/internal/models"
)

func TestWrapFind(t *testing.T) {
	assert.NoError(t, wrapFind(nil, "contract", 1))

	err := wrapFind(gorm.ErrRecordNotFound, "contract", 4)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "contract 4")

	err = wrapFind(fmt.Errorf("connection reset"), "contract", 4)
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestWrapWrite(t *testing.T) {
	assert.NoError(t, wrapWrite(nil))

	// A translated constraint violation becomes the duplicate kind, which
	// controllers map to 409. Covers writes that slip past the service
	// checks and hit the unique index or exclusion constraint instead.
	err := wrapWrite(gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	err = wrapWrite(fmt.Errorf("driver: %w", gorm.ErrDuplicatedKey))
	assert.ErrorIs(t, err, models.ErrDuplicate)

	err = wrapWrite(errors.New("connection reset"))
	assert.ErrorIs(t, err, models.ErrStorage)
}
