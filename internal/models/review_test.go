package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	review, err := NewReview(10, 5, 4, "clean and quiet")

	require.NoError(t, err)
	assert.Equal(t, StatusPublished, review.Status)
	assert.Equal(t, 4, review.Rating)
}

func TestNewReview_RejectsMissingReferences(t *testing.T) {
	_, err := NewReview(0, 5, 4, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview(10, 0, 4, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating), "rating %d", rating)
	}
	for _, rating := range []int{0, 6, -3, 42} {
		assert.ErrorIs(t, ValidateRating(rating), ErrValidation, "rating %d", rating)
	}
}
