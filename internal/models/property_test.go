package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	property, err := NewProperty(3, 1, PropertyApartment, 54, "two rooms", "Main Street 12", "11000")

	require.NoError(t, err)
	assert.Equal(t, StatusModeration, property.Status)
	assert.True(t, property.IsAvailable)
}

func TestNewProperty_Validation(t *testing.T) {
	_, err := NewProperty(0, 1, PropertyHouse, 54, "", "", "")
	assert.ErrorIs(t, err, ErrValidation, "missing owner")

	_, err = NewProperty(3, 0, PropertyHouse, 54, "", "", "")
	assert.ErrorIs(t, err, ErrValidation, "missing city")

	_, err = NewProperty(3, 1, PropertyHouse, 0, "", "", "")
	assert.ErrorIs(t, err, ErrValidation, "zero square")

	_, err = NewProperty(3, 1, PropertyHouse, -5, "", "", "")
	assert.ErrorIs(t, err, ErrValidation, "negative square")

	_, err = NewProperty(3, 1, PropertyHouse, 10001, "", "", "")
	assert.ErrorIs(t, err, ErrValidation, "square above limit")
}

func TestSetSquare(t *testing.T) {
	property := Property{Square: 54}

	assert.NoError(t, property.SetSquare(100))
	assert.Equal(t, 100.0, property.Square)

	assert.ErrorIs(t, property.SetSquare(0), ErrValidation)
	assert.ErrorIs(t, property.SetSquare(10001), ErrValidation)
	assert.Equal(t, 100.0, property.Square)
}

func TestParseEnums(t *testing.T) {
	role, err := ParseRole("LANDLORD")
	assert.NoError(t, err)
	assert.Equal(t, RoleLandlord, role)

	_, err = ParseRole("SUPERUSER")
	assert.ErrorIs(t, err, ErrValidation)

	propertyType, err := ParsePropertyType("ROOM")
	assert.NoError(t, err)
	assert.Equal(t, PropertyRoom, propertyType)

	_, err = ParsePropertyType("CASTLE")
	assert.ErrorIs(t, err, ErrValidation)

	status, err := ParsePublicationStatus("PUBLISHED")
	assert.NoError(t, err)
	assert.Equal(t, StatusPublished, status)

	_, err = ParseConsumerStatus("FROZEN")
	assert.ErrorIs(t, err, ErrValidation)

	gender, err := ParseGender("FEMALE")
	assert.NoError(t, err)
	assert.Equal(t, GenderFemale, gender)

	_, err = ParseGender("OTHER")
	assert.ErrorIs(t, err, ErrValidation)
}
