package repository

import (
	"rentify/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	Create(property *models.Property) error
	FindByID(id uint) (*models.Property, error)
	FindAll(filter PropertyFilter, page, size int) ([]models.Property, int64, error)
	Update(property *models.Property) error
	UpdateStatus(id uint, status models.PublicationStatus, available bool) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(property *models.Property) error {
	return wrapWrite(r.db.Create(property).Error)
}

func (r *propertyRepository) FindByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.Preload("Owner").Preload("City").First(&property, id).Error; err != nil {
		return nil, wrapFind(err, "Property", id)
	}
	return &property, nil
}

func (r *propertyRepository) FindAll(filter PropertyFilter, page, size int) ([]models.Property, int64, error) {
	query := r.db.Model(&models.Property{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CityID != nil {
		query = query.Where("city_id = ?", *filter.CityID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.MinSquare != nil {
		query = query.Where("square >= ?", *filter.MinSquare)
	}
	if filter.MaxSquare != nil {
		query = query.Where("square <= ?", *filter.MaxSquare)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}

	offset, limit := paginate(page, size)
	var properties []models.Property
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&properties).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}
	return properties, total, nil
}

func (r *propertyRepository) Update(property *models.Property) error {
	return wrapWrite(r.db.Save(property).Error)
}

func (r *propertyRepository) UpdateStatus(id uint, status models.PublicationStatus, available bool) error {
	return wrapWrite(r.db.Model(&models.Property{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"is_available": available,
		}).Error)
}
