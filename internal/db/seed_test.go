package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "digiboard/api/internal/models/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := AutoMigrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return gdb
}

func TestSeedPopulatesReferenceData(t *testing.T) {
	gdb := setupSeedDB(t)

	if err := Seed(gdb); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	counts := map[string]struct {
		model any
		want  int64
	}{
		"flight statuses": {&gormModels.FlightStatus{}, 6},
		"gates":           {&gormModels.Gate{}, 30},
		"airlines":        {&gormModels.Airline{}, 5},
		"airports":        {&gormModels.Airport{}, 5},
		"users":           {&gormModels.User{}, 1},
	}
	for name, tc := range counts {
		var got int64
		if err := gdb.Model(tc.model).Count(&got).Error; err != nil {
			t.Fatalf("Count %s failed: %v", name, err)
		}
		if got != tc.want {
			t.Errorf("Expected %d %s, got %d", tc.want, name, got)
		}
	}

	var onTime gormModels.FlightStatus
	if err := gdb.Where("name = ?", "On Time").First(&onTime).Error; err != nil {
		t.Fatalf("On Time status missing: %v", err)
	}
	if onTime.Color != "#22c55e" {
		t.Errorf("Expected #22c55e, got %s", onTime.Color)
	}

	var admin gormModels.User
	if err := gdb.Where("email = ?", "admin@digiboard.local").First(&admin).Error; err != nil {
		t.Fatalf("Admin user missing: %v", err)
	}
	if admin.Password == "password" {
		t.Error("Admin password stored in plain text")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := setupSeedDB(t)

	if err := Seed(gdb); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := Seed(gdb); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	var gates int64
	if err := gdb.Model(&gormModels.Gate{}).Count(&gates).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if gates != 30 {
		t.Errorf("Expected 30 gates after reseeding, got %d", gates)
	}
}
