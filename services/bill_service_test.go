package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"society-billing-service/models"
)

func newBillServiceForTest(t *testing.T) (InterfaceBillService, InterfaceFineService, *models.House) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	fines := NewFineService(db, cfg)
	notifier := NewNotificationService(cfg)
	bills := NewBillService(db, cfg, fines, notifier)

	house := &models.House{HouseNumber: "B-114", ResidentName: "Muhammad Asif", HouseSize: "10 marla"}
	mustCreate(t, db, house)

	return bills, fines, house
}

func TestCreateBillDerivesCharges(t *testing.T) {
	bills, _, house := newBillServiceForTest(t)
	ctx := context.Background()

	bill, err := bills.CreateBill(ctx, house.ID, "2026-08", "2026-08-10")
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	// 10 marla at the default tariff: 100/marla total, 25/marla per service.
	if bill.Amount != 1000 {
		t.Errorf("Amount = %d, want 1000", bill.Amount)
	}
	for field, got := range map[string]int{
		"MasjidFund":     bill.MasjidFund,
		"GuardService":   bill.GuardService,
		"StreetLighting": bill.StreetLighting,
		"Gardener":       bill.Gardener,
	} {
		if got != 250 {
			t.Errorf("%s = %d, want 250", field, got)
		}
	}
	if bill.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", bill.Status, models.StatusPending)
	}
	wantMonth := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !bill.Month.Equal(wantMonth) {
		t.Errorf("Month = %v, want %v", bill.Month, wantMonth)
	}
}

func TestCreateBillErrors(t *testing.T) {
	bills, _, house := newBillServiceForTest(t)
	ctx := context.Background()

	if _, err := bills.CreateBill(ctx, 9999, "2026-08", "2026-08-10"); !errors.Is(err, ErrHouseNotFound) {
		t.Errorf("CreateBill(missing house) error = %v, want ErrHouseNotFound", err)
	}

	if _, err := bills.CreateBill(ctx, house.ID, "August", "2026-08-10"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("CreateBill(bad month) error = %v, want ErrInvalidDate", err)
	}

	if _, err := bills.CreateBill(ctx, house.ID, "2026-08", "soon"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("CreateBill(bad due date) error = %v, want ErrInvalidDate", err)
	}
}

func TestUpdateBillStatusSyncsFines(t *testing.T) {
	bills, fines, house := newBillServiceForTest(t)
	ctx := context.Background()

	bill, err := bills.CreateBill(ctx, house.ID, "2026-08", "2026-08-10")
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	var fineIDs []uint
	for i := 0; i < 3; i++ {
		fine := &models.Fine{HouseID: house.ID, Amount: 100, Reason: "test", Status: models.StatusPending}
		if err := fines.CreateFine(ctx, fine); err != nil {
			t.Fatalf("CreateFine: %v", err)
		}
		fineIDs = append(fineIDs, fine.ID)
	}

	updated, err := bills.UpdateBill(ctx, bill.ID, map[string]interface{}{"status": models.StatusSubmitted})
	if err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}
	if updated.Status != models.StatusSubmitted {
		t.Errorf("Status = %q, want %q", updated.Status, models.StatusSubmitted)
	}

	// Every fine of the house follows the bill's new status.
	for _, id := range fineIDs {
		fine, err := fines.GetFineByID(ctx, id)
		if err != nil {
			t.Fatalf("GetFineByID(%d): %v", id, err)
		}
		if fine.Status != models.StatusSubmitted {
			t.Errorf("fine %d status = %q, want %q", id, fine.Status, models.StatusSubmitted)
		}
	}
}

func TestUpdateBillAmountKeepsComponents(t *testing.T) {
	bills, _, house := newBillServiceForTest(t)
	ctx := context.Background()

	bill, err := bills.CreateBill(ctx, house.ID, "2026-08", "2026-08-10")
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	updated, err := bills.UpdateBill(ctx, bill.ID, map[string]interface{}{"amount": 1500})
	if err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}

	// The amount moves; the components are not recomputed.
	if updated.Amount != 1500 {
		t.Errorf("Amount = %d, want 1500", updated.Amount)
	}
	if updated.MasjidFund != 250 {
		t.Errorf("MasjidFund = %d, want 250 (unchanged)", updated.MasjidFund)
	}
	if updated.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q (unchanged)", updated.Status, models.StatusPending)
	}
}

func TestUpdateBillInvalidStatus(t *testing.T) {
	bills, _, house := newBillServiceForTest(t)
	ctx := context.Background()

	bill, err := bills.CreateBill(ctx, house.ID, "2026-08", "2026-08-10")
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if _, err := bills.UpdateBill(ctx, bill.ID, map[string]interface{}{"status": models.BillStatus("paid")}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("UpdateBill(invalid status) error = %v, want ErrInvalidStatus", err)
	}

	if _, err := bills.UpdateBill(ctx, 9999, map[string]interface{}{"amount": 1}); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("UpdateBill(missing bill) error = %v, want ErrBillNotFound", err)
	}
}

func TestDeleteBillKeepsFines(t *testing.T) {
	bills, fines, house := newBillServiceForTest(t)
	ctx := context.Background()

	bill, err := bills.CreateBill(ctx, house.ID, "2026-08", "2026-08-10")
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	fine := &models.Fine{HouseID: house.ID, Amount: 100, Reason: "test", Status: models.StatusPending}
	if err := fines.CreateFine(ctx, fine); err != nil {
		t.Fatalf("CreateFine: %v", err)
	}

	if err := bills.DeleteBill(ctx, bill.ID); err != nil {
		t.Fatalf("DeleteBill: %v", err)
	}

	if _, err := bills.GetBillByID(ctx, bill.ID); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("GetBillByID(deleted) error = %v, want ErrBillNotFound", err)
	}
	if _, err := fines.GetFineByID(ctx, fine.ID); err != nil {
		t.Errorf("fine should survive bill deletion, got error %v", err)
	}
}

func TestGetAllBillsFilterByHouse(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	fines := NewFineService(db, cfg)
	bills := NewBillService(db, cfg, fines, NewNotificationService(cfg))
	ctx := context.Background()

	houseA := &models.House{HouseNumber: "A-1", ResidentName: "A", HouseSize: "5 marla"}
	houseB := &models.House{HouseNumber: "B-1", ResidentName: "B", HouseSize: "1 kanal"}
	mustCreate(t, db, houseA)
	mustCreate(t, db, houseB)

	if _, err := bills.CreateBill(ctx, houseA.ID, "2026-07", "2026-07-10"); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if _, err := bills.CreateBill(ctx, houseB.ID, "2026-07", "2026-07-10"); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	all, total, err := bills.GetAllBills(ctx, 0, 1, 10)
	if err != nil {
		t.Fatalf("GetAllBills: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("GetAllBills(all) = %d rows, total %d; want 2/2", len(all), total)
	}

	// The kanal house bill carries the converted area charge: 20 marla.
	filtered, total, err := bills.GetAllBills(ctx, houseB.ID, 1, 10)
	if err != nil {
		t.Fatalf("GetAllBills(houseB): %v", err)
	}
	if total != 1 || len(filtered) != 1 {
		t.Fatalf("GetAllBills(houseB) = %d rows, total %d; want 1/1", len(filtered), total)
	}
	if filtered[0].Amount != 2000 {
		t.Errorf("kanal bill Amount = %d, want 2000", filtered[0].Amount)
	}
	if !filtered[0].House.Resolved() {
		t.Error("bill view house not resolved")
	}
}
