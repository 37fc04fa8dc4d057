package repository

import (
	"rentify/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id uint) (*models.Review, error)
	FindAll(filter ReviewFilter, page, size int) ([]models.Review, int64, error)
	FindByContractAndAuthor(contractID, authorID uint) ([]models.Review, error)
	Update(review *models.Review) error
	UpdateStatus(id uint, status models.PublicationStatus) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return wrapWrite(r.db.Create(review).Error)
}

func (r *reviewRepository) FindByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Preload("Contract").Preload("Author").First(&review, id).Error; err != nil {
		return nil, wrapFind(err, "Review", id)
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(filter ReviewFilter, page, size int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})
	if filter.Status != nil {
		query = query.Where("reviews.status = ?", *filter.Status)
	}
	if filter.AuthorID != nil {
		query = query.Where("reviews.author_id = ?", *filter.AuthorID)
	}
	if filter.ContractID != nil {
		query = query.Where("reviews.contract_id = ?", *filter.ContractID)
	}
	if filter.ReviewedID != nil {
		query = query.
			Joins("JOIN contracts ON contracts.id = reviews.contract_id").
			Joins("JOIN properties ON properties.id = contracts.property_id").
			Where("(contracts.tenant_id = ? OR properties.owner_id = ?)",
				*filter.ReviewedID, *filter.ReviewedID).
			Where("reviews.author_id <> ?", *filter.ReviewedID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}

	offset, limit := paginate(page, size)
	var reviews []models.Review
	if err := query.Order("reviews.id").Offset(offset).Limit(limit).Find(&reviews).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}
	return reviews, total, nil
}

func (r *reviewRepository) FindByContractAndAuthor(contractID, authorID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("contract_id = ? AND author_id = ?", contractID, authorID).
		Find(&reviews).Error
	if err != nil {
		return nil, models.StorageError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) Update(review *models.Review) error {
	return wrapWrite(r.db.Save(review).Error)
}

func (r *reviewRepository) UpdateStatus(id uint, status models.PublicationStatus) error {
	return wrapWrite(r.db.Model(&models.Review{}).Where("id = ?", id).
		Update("status", status).Error)
}
