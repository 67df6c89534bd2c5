package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"society-billing-service/config"
	"society-billing-service/models"
)

// newTestDB opens an in-memory database with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Admin{}, &models.House{}, &models.Bill{}, &models.Fine{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// newTestConfig returns a config with the default tariff and event
// publishing disabled
func newTestConfig() *config.Config {
	return &config.Config{
		ServiceRate:  25,
		TotalRate:    100,
		SocietyName:  "Test Housing Society",
		JWTSecretKey: "test-secret",
	}
}

// mustCreate inserts a record or fails the test
func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}
