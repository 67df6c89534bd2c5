package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"society-billing-service/models"
)

func date(day int) time.Time {
	return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)
}

func month(m time.Month) time.Time {
	return time.Date(2026, m, 1, 0, 0, 0, 0, time.UTC)
}

func makeBill(id uint, amount int, m time.Month, due int, status models.BillStatus) models.Bill {
	return models.Bill{
		BaseModel:      models.BaseModel{ID: id},
		HouseID:        1,
		Amount:         amount,
		MasjidFund:     amount / 4,
		GuardService:   amount / 4,
		StreetLighting: amount / 4,
		Gardener:       amount / 4,
		Month:          month(m),
		DueDate:        date(due),
		Status:         status,
	}
}

func makeFine(id uint, amount int, status models.BillStatus) models.Fine {
	return models.Fine{
		BaseModel: models.BaseModel{ID: id},
		HouseID:   1,
		Amount:    amount,
		Reason:    "test fine",
		Status:    status,
	}
}

var testHouse = models.House{
	BaseModel:    models.BaseModel{ID: 1},
	HouseNumber:  "B-114",
	ResidentName: "Muhammad Asif",
	HouseSize:    "10 marla",
}

func TestSummarizeHouseOutstanding(t *testing.T) {
	bills := []models.Bill{
		makeBill(1, 1000, time.June, 10, models.StatusPending),
		makeBill(2, 300, time.July, 15, models.StatusOverdue),
		makeBill(3, 500, time.August, 20, models.StatusSubmitted),
	}
	fines := []models.Fine{
		makeFine(1, 100, models.StatusPending),
		makeFine(2, 50, models.StatusSubmitted),
	}

	summary := SummarizeHouse(testHouse, bills, fines)

	// 1000 pending + 300 overdue + 100 unpaid fine; submitted records excluded.
	if summary.OutstandingAmount != 1400 {
		t.Errorf("OutstandingAmount = %d, want 1400", summary.OutstandingAmount)
	}
	if summary.FineAmount != 100 {
		t.Errorf("FineAmount = %d, want 100", summary.FineAmount)
	}

	// Status follows the last-created bill, not the latest unpaid one.
	if summary.BillStatus != models.StatusSubmitted {
		t.Errorf("BillStatus = %q, want %q", summary.BillStatus, models.StatusSubmitted)
	}
	if summary.LastBillID != 3 {
		t.Errorf("LastBillID = %d, want 3", summary.LastBillID)
	}

	// Latest due date among unpaid bills only: July 15, not August 20.
	if summary.LatestDueDate == nil {
		t.Fatal("LatestDueDate = nil, want July 15")
	}
	if !summary.LatestDueDate.Equal(date(15)) {
		t.Errorf("LatestDueDate = %v, want %v", summary.LatestDueDate, date(15))
	}
}

func TestSummarizeHouseNoBills(t *testing.T) {
	summary := SummarizeHouse(testHouse, nil, nil)

	if summary.BillStatus != models.StatusPending {
		t.Errorf("BillStatus = %q, want %q", summary.BillStatus, models.StatusPending)
	}
	if summary.OutstandingAmount != 0 {
		t.Errorf("OutstandingAmount = %d, want 0", summary.OutstandingAmount)
	}
	if summary.LatestDueDate != nil {
		t.Errorf("LatestDueDate = %v, want nil", summary.LatestDueDate)
	}
}

func TestComposeStatementAllSubmitted(t *testing.T) {
	bills := []models.Bill{
		makeBill(1, 1000, time.June, 10, models.StatusSubmitted),
		makeBill(2, 1000, time.July, 20, models.StatusSubmitted),
		makeBill(3, 1000, time.May, 5, models.StatusSubmitted),
	}
	fines := []models.Fine{
		makeFine(1, 200, models.StatusSubmitted),
		makeFine(2, 75, models.StatusPending),
	}

	st := ComposeStatement(testHouse, bills, fines)

	// Only the most recent bill by due date speaks for the house.
	if !st.DueDate.Equal(date(20)) {
		t.Errorf("DueDate = %v, want %v", st.DueDate, date(20))
	}
	if !st.Month.Equal(month(time.July)) {
		t.Errorf("Month = %v, want %v", st.Month, month(time.July))
	}
	if st.Amount != 1000 {
		t.Errorf("Amount = %d, want 1000 (single bill, not sum)", st.Amount)
	}
	if st.Status != models.StatusSubmitted {
		t.Errorf("Status = %q, want %q", st.Status, models.StatusSubmitted)
	}

	// Fines matching the bill's status only.
	if st.FineAmount != 200 {
		t.Errorf("FineAmount = %d, want 200", st.FineAmount)
	}

	if st.ReferenceID == "" {
		t.Error("ReferenceID is empty")
	}
}

func TestComposeStatementUnpaidBranch(t *testing.T) {
	bills := []models.Bill{
		makeBill(1, 1000, time.June, 10, models.StatusSubmitted),
		makeBill(2, 1000, time.July, 15, models.StatusPending),
		makeBill(3, 400, time.August, 25, models.StatusOverdue),
	}
	fines := []models.Fine{
		makeFine(1, 100, models.StatusPending),
		makeFine(2, 60, models.StatusOverdue),
		makeFine(3, 30, models.StatusSubmitted),
	}

	st := ComposeStatement(testHouse, bills, fines)

	// Non-submitted bills are summed; the submitted one is excluded.
	if st.Amount != 1400 {
		t.Errorf("Amount = %d, want 1400", st.Amount)
	}
	if st.MasjidFund != 350 {
		t.Errorf("MasjidFund = %d, want 350", st.MasjidFund)
	}

	// Due date is the max across the unpaid bills.
	if !st.DueDate.Equal(date(25)) {
		t.Errorf("DueDate = %v, want %v", st.DueDate, date(25))
	}

	// All non-submitted fines count.
	if st.FineAmount != 160 {
		t.Errorf("FineAmount = %d, want 160", st.FineAmount)
	}

	if len(st.History) != 3 {
		t.Errorf("len(History) = %d, want 3", len(st.History))
	}
}

func TestPaymentHistory(t *testing.T) {
	bills := []models.Bill{
		makeBill(2, 1000, time.July, 15, models.StatusSubmitted),
		makeBill(1, 1000, time.June, 10, models.StatusPending),
	}
	fines := []models.Fine{
		makeFine(1, 100, models.StatusPending),
		makeFine(2, 40, models.StatusSubmitted),
	}

	rows := PaymentHistory(bills, fines)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// Rows come back ordered by billing month ascending.
	if rows[0].BillingMonth != "Jun-2026" {
		t.Errorf("rows[0].BillingMonth = %q, want Jun-2026", rows[0].BillingMonth)
	}
	if rows[1].BillingMonth != "Jul-2026" {
		t.Errorf("rows[1].BillingMonth = %q, want Jul-2026", rows[1].BillingMonth)
	}

	// Pending bill picks up the pending fine; nothing received yet.
	if rows[0].Amount != 1100 {
		t.Errorf("rows[0].Amount = %d, want 1100", rows[0].Amount)
	}
	if rows[0].ReceivedAmount != 0 {
		t.Errorf("rows[0].ReceivedAmount = %d, want 0", rows[0].ReceivedAmount)
	}

	// Submitted bill picks up the submitted fine and counts as received.
	if rows[1].Amount != 1040 {
		t.Errorf("rows[1].Amount = %d, want 1040", rows[1].Amount)
	}
	if rows[1].ReceivedAmount != 1040 {
		t.Errorf("rows[1].ReceivedAmount = %d, want 1040", rows[1].ReceivedAmount)
	}
}

func TestPaymentHistorySharedStatusFines(t *testing.T) {
	// Two bills with the same status both pick up the same fines: the
	// attribution is by status value, not per bill.
	bills := []models.Bill{
		makeBill(1, 1000, time.June, 10, models.StatusPending),
		makeBill(2, 1000, time.July, 15, models.StatusPending),
	}
	fines := []models.Fine{
		makeFine(1, 100, models.StatusPending),
	}

	rows := PaymentHistory(bills, fines)

	for i, row := range rows {
		if row.Amount != 1100 {
			t.Errorf("rows[%d].Amount = %d, want 1100", i, row.Amount)
		}
	}
}

func TestBuildStatement(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatementService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-5", ResidentName: "R", HouseSize: "10 marla"}
	mustCreate(t, db, house)

	t.Run("no bills", func(t *testing.T) {
		_, err := svc.BuildStatement(ctx, house.ID)
		if !errors.Is(err, ErrNoBills) {
			t.Errorf("BuildStatement(no bills) error = %v, want ErrNoBills", err)
		}
	})

	t.Run("missing house", func(t *testing.T) {
		_, err := svc.BuildStatement(ctx, 9999)
		if !errors.Is(err, ErrHouseNotFound) {
			t.Errorf("BuildStatement(9999) error = %v, want ErrHouseNotFound", err)
		}
	})

	bill := makeBill(0, 1000, time.August, 10, models.StatusPending)
	bill.HouseID = house.ID
	mustCreate(t, db, &bill)

	st, err := svc.BuildStatement(ctx, house.ID)
	if err != nil {
		t.Fatalf("BuildStatement: %v", err)
	}
	if st.Amount != 1000 {
		t.Errorf("Amount = %d, want 1000", st.Amount)
	}
	if st.HouseNumber != "B-5" {
		t.Errorf("HouseNumber = %q, want B-5", st.HouseNumber)
	}
	if len(st.History) != 1 {
		t.Errorf("len(History) = %d, want 1", len(st.History))
	}
}

func TestGetHouseSummariesExcludesOrphanFines(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatementService(db, newTestConfig())
	ctx := context.Background()

	house := &models.House{HouseNumber: "B-6", ResidentName: "R", HouseSize: "10 marla"}
	mustCreate(t, db, house)

	bill := makeBill(0, 1000, time.August, 10, models.StatusPending)
	bill.HouseID = house.ID
	mustCreate(t, db, &bill)

	mustCreate(t, db, &models.Fine{HouseID: house.ID, Amount: 100, Reason: "attached", Status: models.StatusPending})
	// Fine pointing at a house that was never registered.
	mustCreate(t, db, &models.Fine{HouseID: 4242, Amount: 999, Reason: "orphan", Status: models.StatusPending})

	data, err := svc.GetHouseSummaries(ctx)
	if err != nil {
		t.Fatalf("GetHouseSummaries: %v", err)
	}

	if data.ExcludedFines != 1 {
		t.Errorf("ExcludedFines = %d, want 1", data.ExcludedFines)
	}
	if len(data.Houses) != 1 {
		t.Fatalf("len(Houses) = %d, want 1", len(data.Houses))
	}

	summary := data.Houses[0]
	if summary.FineAmount != 100 {
		t.Errorf("FineAmount = %d, want 100 (orphan excluded)", summary.FineAmount)
	}
	if summary.OutstandingAmount != 1100 {
		t.Errorf("OutstandingAmount = %d, want 1100", summary.OutstandingAmount)
	}
}
