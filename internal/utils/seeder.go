package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"time"

	"gorm.io/gorm"

	"rentify/internal/models"
)

const (
	DefaultNumLandlords  = 20
	DefaultNumTenants    = 50
	DefaultNumProperties = 100

	seedPassword = "TestPassword123!"
)

var seedCities = []string{
	"Prague", "Brno", "Ostrava", "Plzen", "Liberec",
	"Olomouc", "Budweis", "Hradec Kralove", "Pardubice", "Zlin",
}

var seedStreets = []string{
	"Main Street", "Oak Avenue", "River Road", "Hill Lane",
	"Castle Square", "Station Road", "Garden Street", "Park Avenue",
}

// SeedCities inserts the baseline set of cities, skipping any that
// already exist.
func SeedCities(db *gorm.DB) error {
	for _, name := range seedCities {
		city := models.City{Name: name}
		result := db.Where("name = ?", name).FirstOrCreate(&city)
		if result.Error != nil {
			return fmt.Errorf("failed to seed city %q: %w", name, result.Error)
		}
	}
	log.Printf("Seeded %d cities", len(seedCities))
	return nil
}

// SeedConsumers creates test landlords and tenants with predictable
// emails (landlord1@example.com, tenant1@example.com, ...). All share
// the same test password.
func SeedConsumers(db *gorm.DB, numLandlords, numTenants int) error {
	hash, err := HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	created := 0
	for i := 1; i <= numLandlords; i++ {
		consumer := models.Consumer{
			User: models.User{
				Email:    fmt.Sprintf("landlord%d@example.com", i),
				Password: hash,
				Role:     models.RoleLandlord,
			},
			FirstName: fmt.Sprintf("Landlord%d", i),
			LastName:  "Test",
			Phone:     fmt.Sprintf("+42060000%04d", i),
			Gender:    randomGender(),
			Status:    models.ConsumerActive,
		}
		result := db.Where("email = ?", consumer.Email).FirstOrCreate(&consumer)
		if result.Error != nil {
			return fmt.Errorf("failed to seed landlord %d: %w", i, result.Error)
		}
		created += int(result.RowsAffected)
	}

	for i := 1; i <= numTenants; i++ {
		consumer := models.Consumer{
			User: models.User{
				Email:    fmt.Sprintf("tenant%d@example.com", i),
				Password: hash,
				Role:     models.RoleTenant,
			},
			FirstName: fmt.Sprintf("Tenant%d", i),
			LastName:  "Test",
			Phone:     fmt.Sprintf("+42070000%04d", i),
			Gender:    randomGender(),
			Status:    models.ConsumerActive,
			InSearch:  mathrand.Intn(2) == 0,
		}
		result := db.Where("email = ?", consumer.Email).FirstOrCreate(&consumer)
		if result.Error != nil {
			return fmt.Errorf("failed to seed tenant %d: %w", i, result.Error)
		}
		created += int(result.RowsAffected)
	}

	log.Printf("Seeded consumers: %d created, %d landlords + %d tenants requested",
		created, numLandlords, numTenants)
	return nil
}

// SeedProperties distributes numProperties listings across the seeded
// landlords and cities. Roughly half are published and available.
func SeedProperties(db *gorm.DB, numProperties int) error {
	var landlords []models.Consumer
	if err := db.Where("role = ?", models.RoleLandlord).Find(&landlords).Error; err != nil {
		return fmt.Errorf("failed to load landlords: %w", err)
	}
	if len(landlords) == 0 {
		return fmt.Errorf("no landlords to own properties, run consumer seeding first")
	}

	var cities []models.City
	if err := db.Find(&cities).Error; err != nil {
		return fmt.Errorf("failed to load cities: %w", err)
	}
	if len(cities) == 0 {
		return fmt.Errorf("no cities found, run city seeding first")
	}

	types := []models.PropertyType{
		models.PropertyApartment, models.PropertyHouse, models.PropertyRoom,
	}

	for i := 1; i <= numProperties; i++ {
		owner := landlords[mathrand.Intn(len(landlords))]
		city := cities[mathrand.Intn(len(cities))]

		property := models.Property{
			OwnerID:     owner.ID,
			CityID:      city.ID,
			Type:        types[mathrand.Intn(len(types))],
			Square:      float64(20 + mathrand.Intn(180)),
			Description: fmt.Sprintf("Test listing %d in %s", i, city.Name),
			Street:      fmt.Sprintf("%s %d", seedStreets[mathrand.Intn(len(seedStreets))], 1+mathrand.Intn(200)),
			PostalCode:  fmt.Sprintf("%05d", 10000+mathrand.Intn(89999)),
			Status:      models.StatusModeration,
		}
		if mathrand.Intn(2) == 0 {
			property.Status = models.StatusPublished
			property.IsAvailable = true
		}

		if err := db.Create(&property).Error; err != nil {
			return fmt.Errorf("failed to seed property %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d properties across %d landlords", numProperties, len(landlords))
	return nil
}

// ClearTestData removes the seeded rows in dependency order. Only rows
// matching the test email pattern are touched on the users table.
func ClearTestData(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func() *gorm.DB
	}{
		{"reviews", func() *gorm.DB {
			return db.Exec("DELETE FROM reviews WHERE author_id IN (SELECT id FROM users WHERE email LIKE '%@example.com')")
		}},
		{"contracts", func() *gorm.DB {
			return db.Exec("DELETE FROM contracts WHERE tenant_id IN (SELECT id FROM users WHERE email LIKE '%@example.com')")
		}},
		{"favorites", func() *gorm.DB {
			return db.Exec("DELETE FROM tenant_favorites WHERE consumer_id IN (SELECT id FROM users WHERE email LIKE '%@example.com')")
		}},
		{"properties", func() *gorm.DB {
			return db.Exec("DELETE FROM properties WHERE owner_id IN (SELECT id FROM users WHERE email LIKE '%@example.com')")
		}},
		{"users", func() *gorm.DB {
			return db.Where("email LIKE ?", "%@example.com").Delete(&models.Consumer{})
		}},
	}

	for _, step := range steps {
		result := step.run()
		if result.Error != nil {
			return fmt.Errorf("failed to clear %s: %w", step.name, result.Error)
		}
		log.Printf("Cleared %s: %d rows", step.name, result.RowsAffected)
	}
	return nil
}

// TableCounts reports row counts for the main tables.
func TableCounts(db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64)
	tables := map[string]interface{}{
		"users":      &models.Consumer{},
		"cities":     &models.City{},
		"properties": &models.Property{},
		"contracts":  &models.Contract{},
		"reviews":    &models.Review{},
	}
	for table, model := range tables {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

func randomGender() models.Gender {
	if mathrand.Intn(2) == 0 {
		return models.GenderMale
	}
	return models.GenderFemale
}

func init() {
	mathrand.Seed(time.Now().UnixNano())
}
