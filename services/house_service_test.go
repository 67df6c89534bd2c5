package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"society-billing-service/models"
)

func TestCreateHouse(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{
		HouseNumber:  "B-114",
		ResidentName: "Muhammad Asif",
		HouseSize:    "10 marla",
	}
	if err := svc.CreateHouse(ctx, house); err != nil {
		t.Fatalf("CreateHouse: %v", err)
	}
	if house.ID == 0 {
		t.Error("house ID not assigned")
	}

	t.Run("duplicate house number", func(t *testing.T) {
		dup := &models.House{
			HouseNumber:  "B-114",
			ResidentName: "Someone Else",
			HouseSize:    "5 marla",
		}
		err := svc.CreateHouse(ctx, dup)
		if !errors.Is(err, ErrHouseExists) {
			t.Errorf("CreateHouse(duplicate) error = %v, want ErrHouseExists", err)
		}
	})

	t.Run("invalid size rejected", func(t *testing.T) {
		bad := &models.House{
			HouseNumber:  "C-1",
			ResidentName: "Resident",
			HouseSize:    "big house",
		}
		err := svc.CreateHouse(ctx, bad)
		if !errors.Is(err, ErrInvalidSizeFormat) {
			t.Errorf("CreateHouse(bad size) error = %v, want ErrInvalidSizeFormat", err)
		}
	})
}

func TestGetHouseByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-1", ResidentName: "R", HouseSize: "5 marla"}
	mustCreate(t, db, house)

	got, err := svc.GetHouseByID(ctx, house.ID)
	if err != nil {
		t.Fatalf("GetHouseByID: %v", err)
	}
	if got.HouseNumber != "B-1" {
		t.Errorf("HouseNumber = %q, want B-1", got.HouseNumber)
	}

	if _, err := svc.GetHouseByID(ctx, 9999); !errors.Is(err, ErrHouseNotFound) {
		t.Errorf("GetHouseByID(9999) error = %v, want ErrHouseNotFound", err)
	}
}

func TestDeleteHouseCascadesBillsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-2", ResidentName: "R", HouseSize: "10 marla"}
	mustCreate(t, db, house)

	for i := 0; i < 2; i++ {
		mustCreate(t, db, &models.Bill{
			HouseID: house.ID,
			Amount:  1000,
			Month:   time.Date(2026, time.Month(7+i), 1, 0, 0, 0, 0, time.UTC),
			DueDate: time.Date(2026, time.Month(7+i), 10, 0, 0, 0, 0, time.UTC),
			Status:  models.StatusPending,
		})
	}

	fine := &models.Fine{HouseID: house.ID, Amount: 200, Reason: "late payment", Status: models.StatusPending}
	mustCreate(t, db, fine)

	if err := svc.DeleteHouse(ctx, house.ID); err != nil {
		t.Fatalf("DeleteHouse: %v", err)
	}

	var billCount, fineCount int64
	db.Model(&models.Bill{}).Where("house_id = ?", house.ID).Count(&billCount)
	db.Model(&models.Fine{}).Where("house_id = ?", house.ID).Count(&fineCount)

	if billCount != 0 {
		t.Errorf("bill count after delete = %d, want 0", billCount)
	}
	if fineCount != 1 {
		t.Errorf("fine count after delete = %d, want 1 (fines survive)", fineCount)
	}

	if err := svc.DeleteHouse(ctx, house.ID); !errors.Is(err, ErrHouseNotFound) {
		t.Errorf("DeleteHouse(gone) error = %v, want ErrHouseNotFound", err)
	}
}

func TestGetHouseBillsAndFines(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-3", ResidentName: "R", HouseSize: "10 marla"}
	mustCreate(t, db, house)

	for i := 0; i < 2; i++ {
		mustCreate(t, db, &models.Bill{
			HouseID: house.ID,
			Amount:  1000,
			Month:   time.Date(2026, time.Month(6+i), 1, 0, 0, 0, 0, time.UTC),
			DueDate: time.Date(2026, time.Month(6+i), 10, 0, 0, 0, 0, time.UTC),
			Status:  models.StatusPending,
		})
	}
	mustCreate(t, db, &models.Fine{HouseID: house.ID, Amount: 50, Reason: "noise", Status: models.StatusPending})

	bills, err := svc.GetHouseBills(ctx, house.ID)
	if err != nil {
		t.Fatalf("GetHouseBills: %v", err)
	}
	if len(bills) != 2 {
		t.Errorf("len(bills) = %d, want 2", len(bills))
	}

	fines, err := svc.GetHouseFines(ctx, house.ID)
	if err != nil {
		t.Fatalf("GetHouseFines: %v", err)
	}
	if len(fines) != 1 {
		t.Errorf("len(fines) = %d, want 1", len(fines))
	}

	if _, err := svc.GetHouseBills(ctx, 9999); !errors.Is(err, ErrHouseNotFound) {
		t.Errorf("GetHouseBills(9999) error = %v, want ErrHouseNotFound", err)
	}
}
