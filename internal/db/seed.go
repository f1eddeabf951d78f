package db

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	gormModels "digiboard/api/internal/models/gorm"
)

// Seed inserts the canonical reference data if the tables are empty. It is
// safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedStatuses(db); err != nil {
		return fmt.Errorf("seed flight statuses: %w", err)
	}
	if err := seedGates(db); err != nil {
		return fmt.Errorf("seed gates: %w", err)
	}
	if err := seedAirlines(db); err != nil {
		return fmt.Errorf("seed airlines: %w", err)
	}
	if err := seedAirports(db); err != nil {
		return fmt.Errorf("seed airports: %w", err)
	}
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

func seedStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&gormModels.FlightStatus{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := []gormModels.FlightStatus{
		{Name: "On Time", Color: "#22c55e"},
		{Name: "Delayed", Color: "#eab308"},
		{Name: "Cancelled", Color: "#ef4444"},
		{Name: "Boarding", Color: "#3b82f6"},
		{Name: "Departed", Color: "#6b7280"},
		{Name: "Arrived", Color: "#ffffff"},
	}
	return db.Create(&statuses).Error
}

func seedGates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&gormModels.Gate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var gates []gormModels.Gate
	for _, terminal := range []string{"A", "B", "C"} {
		for i := 1; i <= 10; i++ {
			gates = append(gates, gormModels.Gate{Code: fmt.Sprintf("%s%d", terminal, i)})
		}
	}
	return db.Create(&gates).Error
}

func seedAirlines(db *gorm.DB) error {
	var count int64
	if err := db.Model(&gormModels.Airline{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logo := func(path string) *string { return &path }
	airlines := []gormModels.Airline{
		{Name: "Garuda Indonesia", Code: "GA", Logo: logo("logos/garuda.png")},
		{Name: "Lion Air", Code: "JT", Logo: logo("logos/lion.png")},
		{Name: "Citilink", Code: "QG", Logo: logo("logos/citilink.png")},
		{Name: "Batik Air", Code: "ID", Logo: logo("logos/batik.png")},
		{Name: "AirAsia", Code: "QZ", Logo: logo("logos/airasia.png")},
	}
	return db.Create(&airlines).Error
}

func seedAirports(db *gorm.DB) error {
	var count int64
	if err := db.Model(&gormModels.Airport{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	airports := []gormModels.Airport{
		{Name: "Soekarno-Hatta International Airport", Code: "CGK", City: "Jakarta", Country: "Indonesia"},
		{Name: "Ngurah Rai International Airport", Code: "DPS", City: "Denpasar", Country: "Indonesia"},
		{Name: "Juanda International Airport", Code: "SUB", City: "Surabaya", Country: "Indonesia"},
		{Name: "Kualanamu International Airport", Code: "KNO", City: "Medan", Country: "Indonesia"},
		{Name: "Sultan Hasanuddin International Airport", Code: "UPG", City: "Makassar", Country: "Indonesia"},
	}
	return db.Create(&airports).Error
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&gormModels.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := gormModels.User{
		Name:     "Admin",
		Email:    "admin@digiboard.local",
		Password: string(hash),
	}
	return db.Create(&admin).Error
}
