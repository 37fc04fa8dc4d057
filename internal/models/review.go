package models

import "time"

const (
	minRating = 1
	maxRating = 5
)

// Review is feedback a consumer leaves on a contract they were party to.
// The (author, contract) pair is unique, enforced both here and by a
// composite index in the database.
type Review struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	CreatedOn   time.Time         `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn   time.Time         `gorm:"autoUpdateTime" json:"updated_on"`
	ContractID  uint              `gorm:"not null;uniqueIndex:unique_author_contract" json:"contract_id"`
	Contract    *Contract         `gorm:"foreignKey:ContractID" json:"-"`
	AuthorID    uint              `gorm:"not null;uniqueIndex:unique_author_contract" json:"author_id"`
	Author      *Consumer         `gorm:"foreignKey:AuthorID" json:"-"`
	Description string            `gorm:"not null" json:"description"`
	Status      PublicationStatus `gorm:"size:16;not null;default:PUBLISHED" json:"status"`
	Rating      int               `gorm:"not null" json:"rating"`
}

func NewReview(contractID, authorID uint, rating int, description string) (*Review, error) {
	if contractID == 0 {
		return nil, ValidationError("review contract is required")
	}
	if authorID == 0 {
		return nil, ValidationError("review author is required")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	return &Review{
		ContractID:  contractID,
		AuthorID:    authorID,
		Rating:      rating,
		Description: description,
		Status:      StatusPublished,
	}, nil
}

func ValidateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return ValidationError("rating must be between %d and %d", minRating, maxRating)
	}
	return nil
}
