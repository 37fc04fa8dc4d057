package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"rentify/internal/models"
)

const (
	cityCacheKeyPrefix = "city:"
	allCitiesCacheKey  = "cities:all"
	cityCacheTTL       = 30 * time.Minute
)

type CityRepository interface {
	Create(city *models.City) error
	FindAll(name string, page, size int) ([]models.City, int64, error)
	FindByID(id uint) (*models.City, error)
	Update(city *models.City) error
	Delete(id uint) error
}

type cityRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func cityCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", cityCacheKeyPrefix, id)
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db, redis: nil, ctx: context.Background()}
}

// NewCachedCityRepository layers a redis read-through cache over single-city
// lookups. City rows change rarely and are read on every property listing.
func NewCachedCityRepository(db *gorm.DB, redisClient *redis.Client) CityRepository {
	return &cityRepository{db: db, redis: redisClient, ctx: context.Background()}
}

func (r *cityRepository) Create(city *models.City) error {
	if err := wrapWrite(r.db.Create(city).Error); err != nil {
		return err
	}
	r.invalidateAll()
	return nil
}

func (r *cityRepository) FindAll(name string, page, size int) ([]models.City, int64, error) {
	query := r.db.Model(&models.City{})
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}

	offset, limit := paginate(page, size)
	var cities []models.City
	if err := query.Order("name").Offset(offset).Limit(limit).Find(&cities).Error; err != nil {
		return nil, 0, models.StorageError(err)
	}
	return cities, total, nil
}

func (r *cityRepository) FindByID(id uint) (*models.City, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, cityCacheKey(id)).Result()
		if err == nil {
			var city models.City
			if err := json.Unmarshal([]byte(cached), &city); err == nil {
				return &city, nil
			}
		}
	}

	var city models.City
	if err := r.db.First(&city, id).Error; err != nil {
		return nil, wrapFind(err, "City", id)
	}

	if r.redis != nil {
		cityJSON, err := json.Marshal(city)
		if err == nil {
			if err := r.redis.Set(r.ctx, cityCacheKey(id), cityJSON, cityCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache city %d: %v", id, err)
			}
		}
	}

	return &city, nil
}

func (r *cityRepository) Update(city *models.City) error {
	if err := wrapWrite(r.db.Save(city).Error); err != nil {
		return err
	}
	r.invalidate(city.ID)
	return nil
}

func (r *cityRepository) Delete(id uint) error {
	if err := wrapWrite(r.db.Delete(&models.City{}, id).Error); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *cityRepository) invalidate(id uint) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, cityCacheKey(id), allCitiesCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate city cache: %v", err)
	}
}

func (r *cityRepository) invalidateAll() {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, allCitiesCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate city cache: %v", err)
	}
}
