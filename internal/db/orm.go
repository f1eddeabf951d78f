package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "digiboard/api/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates the six tables. Flight goes last so its foreign keys
// can be created against existing tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Airline{},
		&gormModels.Airport{},
		&gormModels.Gate{},
		&gormModels.FlightStatus{},
		&gormModels.Flight{},
	)
}
