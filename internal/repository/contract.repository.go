package repository

import (
	"time"

	"rentify/internal/models"

	"gorm.io/gorm"
)

type ContractRepository interface {
	Create(contract *models.Contract) error
	FindByID(id uint) (*models.Contract, error)
	FindAll(filter ContractFilter, page, size int) ([]models.Contract, int64, error)
	// FindOverlapping returns contracts on the property whose closed date
	// range intersects [start, end]. A non-zero excludeID skips that
	// contract so updates do not collide with their own stored row.
	FindOverlapping(propertyID uint, start, end time.Time, excludeID uint) ([]models.Contract, error)
	Update(contract *models.Contract) error
	Delete(id uint) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(contract *models.Contract) error {
	return wrapWrite(r.db.Create(contract).Error)
}

func (r *contractRepository) FindByID(id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Preload("Property").Preload("Property.Owner").Preload("Tenant").
		First(&contract, id).Error
	if err != nil {
		return nil, wrapFind(err, "Contract", id)
	}
	return &contract, nil
}

func (r *contractRepository) FindAll(filter ContractFilter, page, size int) ([]models.Contract, int64, error) {
	query := r.db.Model(&models.Contract{})
	if filter.LandlordID != nil {
		query = query.Joins("JOIN properties ON properties.id = contracts.property_id").
			Where("properties.owner_id = ?", *filter.LandlordID)
	}
	if filter.TenantID != nil {
		query = query.Where("contracts.tenant_id = ?", *filter.TenantID)
	}
	if filter.PropertyID != nil {
		query = query.Where("contracts.property_id = ?", *filter.PropertyID)
	}
	if filter.FromDate != nil {
		query = query.Where("contracts.start_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("contracts.end_date <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}

	offset, limit := paginate(page, size)
	var contracts []models.Contract
	if err := query.Order("contracts.id").Offset(offset).Limit(limit).Find(&contracts).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}
	return contracts, total, nil
}

func (r *contractRepository) FindOverlapping(propertyID uint, start, end time.Time, excludeID uint) ([]models.Contract, error) {
	query := r.db.Where("property_id = ? AND start_date <= ? AND end_date >= ?",
		propertyID, end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var contracts []models.Contract
	if err := query.Find(&contracts).Error; err != nil {
		return nil, models.StorageError(err)
	}
	return contracts, nil
}

func (r *contractRepository) Update(contract *models.Contract) error {
	return wrapWrite(r.db.Save(contract).Error)
}

func (r *contractRepository) Delete(id uint) error {
	return wrapWrite(r.db.Delete(&models.Contract{}, id).Error)
}
