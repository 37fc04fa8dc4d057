package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumerRoleHelpers(t *testing.T) {
	landlord := Consumer{User: User{Role: RoleLandlord}}
	assert.True(t, landlord.IsLandlord())
	assert.False(t, landlord.IsTenant())

	tenant := Consumer{User: User{Role: RoleTenant}}
	assert.True(t, tenant.IsTenant())
	assert.False(t, tenant.IsLandlord())

	moderator := Consumer{User: User{Role: RoleModerator}}
	assert.False(t, moderator.IsTenant())
	assert.False(t, moderator.IsLandlord())
}

func TestSetLastLogin(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	consumer := Consumer{User: User{CreatedOn: created}}

	err := consumer.SetLastLogin(created.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, created.Add(time.Hour), consumer.LastLogin)

	err = consumer.SetLastLogin(created.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewCity(t *testing.T) {
	city, err := NewCity("Prague")
	assert.NoError(t, err)
	assert.Equal(t, "Prague", city.Name)

	_, err = NewCity("")
	assert.ErrorIs(t, err, ErrValidation)
}
