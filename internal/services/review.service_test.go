package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentify/internal/models"
	"rentify/tests/mocks"
)

func newReviewServiceFixture() (*ReviewService, *mocks.MockReviewRepository, *mocks.MockContractRepository, *mocks.MockConsumerRepository) {
	reviews := new(mocks.MockReviewRepository)
	contracts := new(mocks.MockContractRepository)
	consumers := new(mocks.MockConsumerRepository)
	return NewReviewService(reviews, contracts, consumers), reviews, contracts, consumers
}

// contractWithParties returns a contract between tenant 5 and the owner of
// property 7 (consumer 3).
func contractWithParties() *models.Contract {
	return &models.Contract{
		ID:         10,
		PropertyID: 7,
		Property:   &models.Property{ID: 7, OwnerID: 3},
		TenantID:   5,
	}
}

func TestReviewCreate_ByTenant(t *testing.T) {
	svc, reviews, contracts, consumers := newReviewServiceFixture()

	contracts.On("FindByID", uint(10)).Return(contractWithParties(), nil)
	consumers.On("FindByID", uint(5)).Return(activeTenant(5), nil)
	reviews.On("FindByContractAndAuthor", uint(10), uint(5)).Return([]models.Review{}, nil)
	reviews.On("Create", mock.AnythingOfType("*models.Review")).Return(nil)

	review, err := svc.Create(10, 5, 4, "great place")

	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, review.Status)
	assert.Equal(t, 4, review.Rating)
	reviews.AssertExpectations(t)
}

func TestReviewCreate_ByPropertyOwner(t *testing.T) {
	svc, reviews, contracts, consumers := newReviewServiceFixture()

	owner := &models.Consumer{User: models.User{ID: 3, Role: models.RoleLandlord}}
	contracts.On("FindByID", uint(10)).Return(contractWithParties(), nil)
	consumers.On("FindByID", uint(3)).Return(owner, nil)
	reviews.On("FindByContractAndAuthor", uint(10), uint(3)).Return([]models.Review{}, nil)
	reviews.On("Create", mock.AnythingOfType("*models.Review")).Return(nil)

	_, err := svc.Create(10, 3, 5, "reliable tenant")

	assert.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestReviewCreate_RejectsThirdParty(t *testing.T) {
	svc, reviews, contracts, consumers := newReviewServiceFixture()

	contracts.On("FindByID", uint(10)).Return(contractWithParties(), nil)
	consumers.On("FindByID", uint(42)).Return(activeTenant(42), nil)

	_, err := svc.Create(10, 42, 4, "drive-by feedback")

	assert.ErrorIs(t, err, models.ErrAccessDenied)
	reviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewCreate_RejectsDuplicate(t *testing.T) {
	svc, reviews, contracts, consumers := newReviewServiceFixture()

	contracts.On("FindByID", uint(10)).Return(contractWithParties(), nil)
	consumers.On("FindByID", uint(5)).Return(activeTenant(5), nil)
	reviews.On("FindByContractAndAuthor", uint(10), uint(5)).
		Return([]models.Review{{ID: 1, ContractID: 10, AuthorID: 5}}, nil)

	_, err := svc.Create(10, 5, 4, "again")

	assert.ErrorIs(t, err, models.ErrDuplicate)
	reviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewCreate_RatingBoundCheckedFirst(t *testing.T) {
	svc, _, contracts, _ := newReviewServiceFixture()

	for _, rating := range []int{0, 6, -1, 100} {
		_, err := svc.Create(10, 5, rating, "out of range")
		assert.ErrorIs(t, err, models.ErrValidation, "rating %d", rating)
	}
	// An invalid rating fails before any lookups run.
	contracts.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestReviewCreate_UnknownContract(t *testing.T) {
	svc, _, contracts, _ := newReviewServiceFixture()

	contracts.On("FindByID", uint(99)).Return(nil, models.NotFoundError("contract", 99))

	_, err := svc.Create(99, 5, 4, "ghost contract")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReviewUpdate_RejectsInvalidRating(t *testing.T) {
	svc, reviews, _, _ := newReviewServiceFixture()

	_, err := svc.Update(1, 0, "zero stars")

	assert.ErrorIs(t, err, models.ErrValidation)
	reviews.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReviewRemove_Idempotent(t *testing.T) {
	svc, reviews, _, _ := newReviewServiceFixture()

	deleted := &models.Review{ID: 1, Status: models.StatusDeleted}
	reviews.On("FindByID", uint(1)).Return(deleted, nil)

	assert.NoError(t, svc.Remove(1))
	reviews.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestReviewPublish_DeletedIsTerminal(t *testing.T) {
	svc, reviews, _, _ := newReviewServiceFixture()

	deleted := &models.Review{ID: 1, Status: models.StatusDeleted}
	reviews.On("FindByID", uint(1)).Return(deleted, nil)

	err := svc.Publish(1)

	assert.ErrorIs(t, err, models.ErrValidation)
	reviews.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestReviewModerate_FromPublished(t *testing.T) {
	svc, reviews, _, _ := newReviewServiceFixture()

	published := &models.Review{ID: 1, Status: models.StatusPublished}
	reviews.On("FindByID", uint(1)).Return(published, nil)
	reviews.On("UpdateStatus", uint(1), models.StatusModeration).Return(nil)

	assert.NoError(t, svc.Moderate(1))
	reviews.AssertExpectations(t)
}
