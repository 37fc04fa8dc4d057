package database

import (
	"log"

	"rentify/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Consumer{},
		&models.City{},
		&models.Property{},
		&models.Contract{},
		&models.Review{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	// The service layer checks for overlapping contracts before inserting,
	// but that check alone is racy under concurrent requests. The exclusion
	// constraint makes the database the authority: no two contracts on one
	// property may cover intersecting closed date ranges.
	constraints := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`DO $$ BEGIN
			ALTER TABLE contracts ADD CONSTRAINT contracts_no_overlap
				EXCLUDE USING gist (
					property_id WITH =,
					daterange(start_date, end_date, '[]') WITH &&
				);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$`,
	}
	for _, stmt := range constraints {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Printf("Error creating constraint: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
