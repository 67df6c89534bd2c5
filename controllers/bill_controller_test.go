package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"society-billing-service/config"
	"society-billing-service/models"
	"society-billing-service/services/container"
)

// newTestContainer wires a service container against an in-memory database
func newTestContainer(t *testing.T) (*container.ServiceContainer, *gorm.DB) {
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

	cfg := &config.Config{
		ServiceRate:  25,
		TotalRate:    100,
		SocietyName:  "Test Housing Society",
		JWTSecretKey: "test-secret",
	}

	return container.NewServiceContainer(db, cfg, nil), db
}

func newBillRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	svcContainer, db := newTestContainer(t)

	r := gin.New()
	r.PATCH("/api/bills/:id", HandleBillFunc(svcContainer, "updateBill"))
	return r, db
}

func TestUpdateBillMonth(t *testing.T) {
	r, db := newBillRouter(t)

	house := &models.House{HouseNumber: "B-114", ResidentName: "Test Resident", HouseSize: "10 marla"}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("failed to create house: %v", err)
	}

	bill := &models.Bill{
		HouseID: house.ID,
		Amount:  1000,
		Month:   time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		DueDate: time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Status:  models.StatusPending,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create bill: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bills/1", strings.NewReader(`{"month":"2026-09"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var updated models.Bill
	if err := db.First(&updated, bill.ID).Error; err != nil {
		t.Fatalf("failed to reload bill: %v", err)
	}

	wantMonth := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !updated.Month.Equal(wantMonth) {
		t.Errorf("month after update = %v, want %v", updated.Month, wantMonth)
	}
	if updated.Status != models.StatusPending {
		t.Errorf("status changed to %s, want %s", updated.Status, models.StatusPending)
	}
}

func TestUpdateBillMonthInvalid(t *testing.T) {
	r, db := newBillRouter(t)

	house := &models.House{HouseNumber: "B-115", ResidentName: "Test Resident", HouseSize: "5 marla"}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("failed to create house: %v", err)
	}

	bill := &models.Bill{
		HouseID: house.ID,
		Amount:  500,
		Month:   time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		DueDate: time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Status:  models.StatusPending,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create bill: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bills/1", strings.NewReader(`{"month":"September"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var unchanged models.Bill
	if err := db.First(&unchanged, bill.ID).Error; err != nil {
		t.Fatalf("failed to reload bill: %v", err)
	}
	if !unchanged.Month.Equal(bill.Month) {
		t.Errorf("month after rejected update = %v, want %v", unchanged.Month, bill.Month)
	}
}
