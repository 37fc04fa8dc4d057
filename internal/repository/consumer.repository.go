package repository

import (
	"rentify/internal/models"

	"gorm.io/gorm"
)

type ConsumerRepository interface {
	Create(consumer *models.Consumer) error
	FindByID(id uint) (*models.Consumer, error)
	FindByEmail(email string) (*models.Consumer, error)
	FindTenants(filter TenantFilter, page, size int) ([]models.Consumer, int64, error)
	FindLandlords(page, size int) ([]models.Consumer, int64, error)
	Update(consumer *models.Consumer) error
	UpdateStatus(id uint, status models.ConsumerStatus) error
	BanLandlordCascade(id uint) error
	RemoveLandlordCascade(id uint) error
	GetRating(consumerID uint) (float64, error)
	AddFavorite(tenantID, propertyID uint) error
	RemoveFavorite(tenantID, propertyID uint) error
	FindFavorites(tenantID uint) ([]models.Property, error)
}

type consumerRepository struct {
	db *gorm.DB
}

func NewConsumerRepository(db *gorm.DB) ConsumerRepository {
	return &consumerRepository{db: db}
}

func (r *consumerRepository) Create(consumer *models.Consumer) error {
	return wrapWrite(r.db.Create(consumer).Error)
}

func (r *consumerRepository) FindByID(id uint) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := r.db.First(&consumer, id).Error; err != nil {
		return nil, wrapFind(err, "Consumer", id)
	}
	return &consumer, nil
}

func (r *consumerRepository) FindByEmail(email string) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := r.db.Where("email = ?", email).First(&consumer).Error; err != nil {
		return nil, wrapFind(err, "Consumer", 0)
	}
	return &consumer, nil
}

func (r *consumerRepository) FindTenants(filter TenantFilter, page, size int) ([]models.Consumer, int64, error) {
	query := r.db.Model(&models.Consumer{}).Where("role = ?", models.RoleTenant)
	if filter.InSearch != nil {
		query = query.Where("in_search = ?", *filter.InSearch)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Gender != nil {
		query = query.Where("gender = ?", *filter.Gender)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}

	offset, limit := paginate(page, size)
	var tenants []models.Consumer
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&tenants).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}
	return tenants, total, nil
}

func (r *consumerRepository) FindLandlords(page, size int) ([]models.Consumer, int64, error) {
	query := r.db.Model(&models.Consumer{}).Where("role = ?", models.RoleLandlord)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}

	offset, limit := paginate(page, size)
	var landlords []models.Consumer
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&landlords).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}
	return landlords, total, nil
}

func (r *consumerRepository) Update(consumer *models.Consumer) error {
	return wrapWrite(r.db.Save(consumer).Error)
}

func (r *consumerRepository) UpdateStatus(id uint, status models.ConsumerStatus) error {
	return wrapWrite(r.db.Model(&models.Consumer{}).Where("id = ?", id).
		Update("status", status).Error)
}

// BanLandlordCascade bans the landlord and soft-deletes every owned
// property in one transaction.
func (r *consumerRepository) BanLandlordCascade(id uint) error {
	return r.landlordStatusCascade(id, models.ConsumerBanned)
}

// RemoveLandlordCascade soft-deletes the landlord account together with
// every owned property.
func (r *consumerRepository) RemoveLandlordCascade(id uint) error {
	return r.landlordStatusCascade(id, models.ConsumerDeleted)
}

func (r *consumerRepository) landlordStatusCascade(id uint, status models.ConsumerStatus) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Consumer{}).Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}
		return tx.Model(&models.Property{}).Where("owner_id = ?", id).
			Updates(map[string]interface{}{
				"status":       models.StatusDeleted,
				"is_available": false,
			}).Error
	})
	return wrapWrite(err)
}

// GetRating averages the published review ratings left about the consumer
// by the other party of their contracts.
func (r *consumerRepository) GetRating(consumerID uint) (float64, error) {
	var rating float64
	err := r.db.Raw(`
		SELECT COALESCE(AVG(r.rating), 0)
		FROM reviews r
		JOIN contracts c ON c.id = r.contract_id
		JOIN properties p ON p.id = c.property_id
		WHERE r.status = ?
		  AND r.author_id <> ?
		  AND (c.tenant_id = ? OR p.owner_id = ?)`,
		models.StatusPublished, consumerID, consumerID, consumerID,
	).Scan(&rating).Error
	if err != nil {
		return 0, models.StorageError(err)
	}
	return rating, nil
}

func (r *consumerRepository) AddFavorite(tenantID, propertyID uint) error {
	tenant := models.Consumer{User: models.User{ID: tenantID}}
	property := models.Property{ID: propertyID}
	return wrapWrite(r.db.Model(&tenant).Association("Favorites").Append(&property))
}

func (r *consumerRepository) RemoveFavorite(tenantID, propertyID uint) error {
	tenant := models.Consumer{User: models.User{ID: tenantID}}
	property := models.Property{ID: propertyID}
	return wrapWrite(r.db.Model(&tenant).Association("Favorites").Delete(&property))
}

func (r *consumerRepository) FindFavorites(tenantID uint) ([]models.Property, error) {
	tenant := models.Consumer{User: models.User{ID: tenantID}}
	var favorites []models.Property
	if err := r.db.Model(&tenant).Association("Favorites").Find(&favorites); err != nil {
		return nil, models.StorageError(err)
	}
	return favorites, nil
}
