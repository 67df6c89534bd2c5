package services

import (
	"context"
	"errors"
	"testing"

	"society-billing-service/models"
)

func TestCreateFineDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewFineService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-1", ResidentName: "R", HouseSize: "5 marla"}
	mustCreate(t, db, house)

	fine := &models.Fine{HouseID: house.ID, Amount: 500, Reason: "debris on street"}
	if err := svc.CreateFine(ctx, fine); err != nil {
		t.Fatalf("CreateFine: %v", err)
	}
	if fine.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", fine.Status, models.StatusPending)
	}

	t.Run("invalid status rejected", func(t *testing.T) {
		bad := &models.Fine{HouseID: house.ID, Amount: 100, Reason: "x", Status: "paid"}
		if err := svc.CreateFine(ctx, bad); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("CreateFine(bad status) error = %v, want ErrInvalidStatus", err)
		}
	})
}

func TestUpdateFineStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewFineService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-2", ResidentName: "R", HouseSize: "5 marla"}
	mustCreate(t, db, house)

	fine := &models.Fine{HouseID: house.ID, Amount: 500, Reason: "late payment"}
	if err := svc.CreateFine(ctx, fine); err != nil {
		t.Fatalf("CreateFine: %v", err)
	}

	updated, err := svc.UpdateFineStatus(ctx, fine.ID, models.StatusOverdue)
	if err != nil {
		t.Fatalf("UpdateFineStatus: %v", err)
	}
	if updated.Status != models.StatusOverdue {
		t.Errorf("Status = %q, want %q", updated.Status, models.StatusOverdue)
	}

	if _, err := svc.UpdateFineStatus(ctx, fine.ID, "paid"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("UpdateFineStatus(bad status) error = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateFineStatus(ctx, 9999, models.StatusPending); !errors.Is(err, ErrFineNotFound) {
		t.Errorf("UpdateFineStatus(missing) error = %v, want ErrFineNotFound", err)
	}
}

func TestDeleteFine(t *testing.T) {
	db := newTestDB(t)
	svc := NewFineService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-3", ResidentName: "R", HouseSize: "5 marla"}
	mustCreate(t, db, house)

	fine := &models.Fine{HouseID: house.ID, Amount: 500, Reason: "noise"}
	if err := svc.CreateFine(ctx, fine); err != nil {
		t.Fatalf("CreateFine: %v", err)
	}

	if err := svc.DeleteFine(ctx, fine.ID); err != nil {
		t.Fatalf("DeleteFine: %v", err)
	}
	if _, err := svc.GetFineByID(ctx, fine.ID); !errors.Is(err, ErrFineNotFound) {
		t.Errorf("GetFineByID(deleted) error = %v, want ErrFineNotFound", err)
	}
	if err := svc.DeleteFine(ctx, fine.ID); !errors.Is(err, ErrFineNotFound) {
		t.Errorf("DeleteFine(gone) error = %v, want ErrFineNotFound", err)
	}
}

func TestGetAllFinesFilterByHouse(t *testing.T) {
	db := newTestDB(t)
	svc := NewFineService(db, newTestConfig())
	ctx := context.Background()

	houseA := &models.House{HouseNumber: "A-1", ResidentName: "A", HouseSize: "5 marla"}
	houseB := &models.House{HouseNumber: "B-1", ResidentName: "B", HouseSize: "5 marla"}
	mustCreate(t, db, houseA)
	mustCreate(t, db, houseB)

	mustCreate(t, db, &models.Fine{HouseID: houseA.ID, Amount: 100, Reason: "a", Status: models.StatusPending})
	mustCreate(t, db, &models.Fine{HouseID: houseB.ID, Amount: 200, Reason: "b", Status: models.StatusPending})

	all, total, err := svc.GetAllFines(ctx, 0, 1, 10)
	if err != nil {
		t.Fatalf("GetAllFines: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("GetAllFines(all) = %d rows, total %d; want 2/2", len(all), total)
	}

	filtered, total, err := svc.GetAllFines(ctx, houseB.ID, 1, 10)
	if err != nil {
		t.Fatalf("GetAllFines(houseB): %v", err)
	}
	if total != 1 || len(filtered) != 1 {
		t.Fatalf("GetAllFines(houseB) = %d rows, total %d; want 1/1", len(filtered), total)
	}
	if filtered[0].Amount != 200 {
		t.Errorf("filtered fine Amount = %d, want 200", filtered[0].Amount)
	}
}
