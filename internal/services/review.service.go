package services

import (
	"rentify/internal/models"
	"rentify/internal/repository"
)

// ReviewService gates review creation on a single ordered validation pass:
// rating bound, then author eligibility, then uniqueness.
type ReviewService struct {
	reviews   repository.ReviewRepository
	contracts repository.ContractRepository
	consumers repository.ConsumerRepository
}

func NewReviewService(
	reviews repository.ReviewRepository,
	contracts repository.ContractRepository,
	consumers repository.ConsumerRepository,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		contracts: contracts,
		consumers: consumers,
	}
}

func (s *ReviewService) Find(id uint) (*models.Review, error) {
	return s.reviews.FindByID(id)
}

func (s *ReviewService) FindAll(filter repository.ReviewFilter, page, size int) ([]models.Review, int64, error) {
	return s.reviews.FindAll(filter, page, size)
}

func (s *ReviewService) Create(contractID, authorID uint, rating int, description string) (*models.Review, error) {
	// Rating bound first: NewReview rejects anything outside [1,5].
	review, err := models.NewReview(contractID, authorID, rating, description)
	if err != nil {
		return nil, err
	}

	contract, err := s.contracts.FindByID(contractID)
	if err != nil {
		return nil, err
	}
	if _, err := s.consumers.FindByID(authorID); err != nil {
		return nil, err
	}

	// Eligibility: only the contract parties may review it.
	if !reviewAuthorEligible(contract, authorID) {
		return nil, models.AccessDeniedError("only the tenant or the property owner may review this contract")
	}

	// Uniqueness: one review per (author, contract).
	existing, err := s.reviews.FindByContractAndAuthor(contractID, authorID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, models.DuplicateError("you have already left feedback for this contract")
	}

	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(id uint, rating int, description string) (*models.Review, error) {
	if err := models.ValidateRating(rating); err != nil {
		return nil, err
	}

	review, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, err
	}

	review.Rating = rating
	review.Description = description
	if err := s.reviews.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Remove soft-deletes the review. Deleting an already deleted review is a
// no-op.
func (s *ReviewService) Remove(id uint) error {
	return s.transition(id, models.StatusDeleted)
}

func (s *ReviewService) Publish(id uint) error {
	return s.transition(id, models.StatusPublished)
}

func (s *ReviewService) Moderate(id uint) error {
	return s.transition(id, models.StatusModeration)
}

func (s *ReviewService) transition(id uint, to models.PublicationStatus) error {
	review, err := s.reviews.FindByID(id)
	if err != nil {
		return err
	}
	if err := validatePublicationTransition(review.Status, to); err != nil {
		return err
	}
	if review.Status == to {
		return nil
	}
	return s.reviews.UpdateStatus(id, to)
}

func reviewAuthorEligible(contract *models.Contract, authorID uint) bool {
	if contract.TenantID == authorID {
		return true
	}
	return contract.Property != nil && contract.Property.OwnerID == authorID
}
