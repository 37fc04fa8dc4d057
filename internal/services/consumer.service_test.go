package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentify/internal/models"
	"rentify/internal/utils"
	"rentify/tests/mocks"
)

func newConsumerServiceFixture() (*ConsumerService, *mocks.MockConsumerRepository, *mocks.MockPropertyRepository) {
	consumers := new(mocks.MockConsumerRepository)
	properties := new(mocks.MockPropertyRepository)
	return NewConsumerService(consumers, properties), consumers, properties
}

func TestRegister_HashesPasswordAndSetsRole(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	consumers.On("FindByEmail", "new@example.com").Return(nil, models.NotFoundError("user", 0))
	consumers.On("Create", mock.AnythingOfType("*models.Consumer")).Return(nil)

	consumer, err := svc.Register(RegisterInput{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "Jan",
		LastName:  "Novak",
	}, models.RoleLandlord)

	require.NoError(t, err)
	assert.Equal(t, models.RoleLandlord, consumer.Role)
	assert.Equal(t, models.ConsumerActive, consumer.Status)
	assert.NotEqual(t, "secret123", consumer.Password)
	assert.True(t, utils.VerifyPassword("secret123", consumer.Password))
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	existing := &models.Consumer{User: models.User{ID: 1, Email: "taken@example.com"}}
	consumers.On("FindByEmail", "taken@example.com").Return(existing, nil)

	_, err := svc.Register(RegisterInput{Email: "taken@example.com", Password: "pw"}, models.RoleTenant)

	assert.ErrorIs(t, err, models.ErrDuplicate)
	consumers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_PropagatesLookupFailure(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	// A failed uniqueness probe must not pass as "email available".
	consumers.On("FindByEmail", "new@example.com").
		Return(nil, models.StorageError(errors.New("connection reset")))

	_, err := svc.Register(RegisterInput{Email: "new@example.com", Password: "pw"}, models.RoleTenant)

	assert.ErrorIs(t, err, models.ErrStorage)
	consumers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_RequiresCredentials(t *testing.T) {
	svc, _, _ := newConsumerServiceFixture()

	_, err := svc.Register(RegisterInput{Email: "", Password: "pw"}, models.RoleTenant)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Register(RegisterInput{Email: "a@b.com", Password: ""}, models.RoleTenant)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegister_InSearchOnlyForTenants(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	consumers.On("FindByEmail", mock.Anything).Return(nil, models.NotFoundError("user", 0))
	consumers.On("Create", mock.AnythingOfType("*models.Consumer")).Return(nil)

	landlord, err := svc.Register(RegisterInput{Email: "l@example.com", Password: "pw", InSearch: true}, models.RoleLandlord)
	require.NoError(t, err)
	assert.False(t, landlord.InSearch)

	tenant, err := svc.Register(RegisterInput{Email: "t@example.com", Password: "pw", InSearch: true}, models.RoleTenant)
	require.NoError(t, err)
	assert.True(t, tenant.InSearch)
}

func TestRemove_SoftDeletesTenant(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	tenant := activeTenant(5)
	tenant.InSearch = true
	consumers.On("FindByID", uint(5)).Return(tenant, nil)
	consumers.On("Update", tenant).Return(nil)

	require.NoError(t, svc.Remove(5))

	assert.Equal(t, models.ConsumerDeleted, tenant.Status)
	assert.False(t, tenant.InSearch)
}

func TestRemove_LandlordCascadesToProperties(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	landlord := &models.Consumer{
		User:   models.User{ID: 3, Role: models.RoleLandlord},
		Status: models.ConsumerActive,
	}
	consumers.On("FindByID", uint(3)).Return(landlord, nil)
	consumers.On("RemoveLandlordCascade", uint(3)).Return(nil)

	require.NoError(t, svc.Remove(3))
	consumers.AssertCalled(t, "RemoveLandlordCascade", uint(3))
	consumers.AssertNotCalled(t, "Update", mock.Anything)
}

func TestRemove_Idempotent(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	gone := &models.Consumer{
		User:   models.User{ID: 5, Role: models.RoleTenant},
		Status: models.ConsumerDeleted,
	}
	consumers.On("FindByID", uint(5)).Return(gone, nil)

	assert.NoError(t, svc.Remove(5))
	consumers.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBlock_LandlordCascadesToProperties(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	landlord := &models.Consumer{
		User:   models.User{ID: 3, Role: models.RoleLandlord},
		Status: models.ConsumerActive,
	}
	consumers.On("FindByID", uint(3)).Return(landlord, nil)
	consumers.On("BanLandlordCascade", uint(3)).Return(nil)

	require.NoError(t, svc.Block(3))
	consumers.AssertCalled(t, "BanLandlordCascade", uint(3))
	consumers.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBlock_TenantDropsSearchFlag(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	tenant := activeTenant(5)
	tenant.InSearch = true
	consumers.On("FindByID", uint(5)).Return(tenant, nil)
	consumers.On("Update", tenant).Return(nil)

	require.NoError(t, svc.Block(5))

	assert.Equal(t, models.ConsumerBanned, tenant.Status)
	assert.False(t, tenant.InSearch)
	consumers.AssertNotCalled(t, "BanLandlordCascade", mock.Anything)
}

func TestBlock_DeletedAccountRejected(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	gone := &models.Consumer{
		User:   models.User{ID: 5, Role: models.RoleTenant},
		Status: models.ConsumerDeleted,
	}
	consumers.On("FindByID", uint(5)).Return(gone, nil)

	err := svc.Block(5)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestActivate_RestoresBannedAccount(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	banned := &models.Consumer{
		User:   models.User{ID: 5, Role: models.RoleTenant},
		Status: models.ConsumerBanned,
	}
	consumers.On("FindByID", uint(5)).Return(banned, nil)
	consumers.On("UpdateStatus", uint(5), models.ConsumerActive).Return(nil)

	assert.NoError(t, svc.Activate(5))
	consumers.AssertExpectations(t)
}

func TestActivate_DeletedAccountRejected(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	gone := &models.Consumer{
		User:   models.User{ID: 5, Role: models.RoleTenant},
		Status: models.ConsumerDeleted,
	}
	consumers.On("FindByID", uint(5)).Return(gone, nil)

	err := svc.Activate(5)

	assert.ErrorIs(t, err, models.ErrValidation)
	consumers.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestAddFavorite(t *testing.T) {
	svc, consumers, properties := newConsumerServiceFixture()

	consumers.On("FindByID", uint(5)).Return(activeTenant(5), nil)
	properties.On("FindByID", uint(7)).Return(&models.Property{ID: 7}, nil)
	consumers.On("AddFavorite", uint(5), uint(7)).Return(nil)

	assert.NoError(t, svc.AddFavorite(5, 7))
	consumers.AssertExpectations(t)
}

func TestAddFavorite_OnlyTenants(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	landlord := &models.Consumer{User: models.User{ID: 3, Role: models.RoleLandlord}}
	consumers.On("FindByID", uint(3)).Return(landlord, nil)

	err := svc.AddFavorite(3, 7)

	assert.ErrorIs(t, err, models.ErrValidation)
	consumers.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
}

func TestAddFavorite_UnknownProperty(t *testing.T) {
	svc, consumers, properties := newConsumerServiceFixture()

	consumers.On("FindByID", uint(5)).Return(activeTenant(5), nil)
	properties.On("FindByID", uint(99)).Return(nil, models.NotFoundError("property", 99))

	err := svc.AddFavorite(5, 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetRating(t *testing.T) {
	svc, consumers, _ := newConsumerServiceFixture()

	consumers.On("FindByID", uint(3)).Return(activeTenant(3), nil)
	consumers.On("GetRating", uint(3)).Return(4.5, nil)

	rating, err := svc.GetRating(3)

	require.NoError(t, err)
	assert.InDelta(t, 4.5, rating, 0.001)
}
