package services

import (
	"bytes"
	"testing"
	"time"

	"society-billing-service/models"
)

func TestRenderStatement(t *testing.T) {
	svc := NewDocumentService(newTestConfig())

	st := &Statement{
		ReferenceID:    "ref-123",
		HouseID:        1,
		HouseNumber:    "B-114",
		ResidentName:   "Muhammad Asif",
		HouseSize:      "10 marla",
		Month:          time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Status:         models.StatusPending,
		Amount:         1000,
		MasjidFund:     250,
		GuardService:   250,
		StreetLighting: 250,
		Gardener:       250,
		FineAmount:     100,
		History: []HistoryRow{
			{BillingMonth: "Jul-2026", Amount: 1000, ReceivedAmount: 1000},
			{BillingMonth: "Aug-2026", Amount: 1100, ReceivedAmount: 0},
		},
	}

	pdf, err := svc.RenderStatement(st)
	if err != nil {
		t.Fatalf("RenderStatement: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", pdf[:8])
	}
}

func TestRenderStatementNoFine(t *testing.T) {
	svc := NewDocumentService(newTestConfig())

	st := &Statement{
		ReferenceID:  "ref-456",
		HouseNumber:  "A-1",
		ResidentName: "Resident",
		HouseSize:    "5 marla",
		Month:        time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Status:       models.StatusPending,
		Amount:       500,
	}

	pdf, err := svc.RenderStatement(st)
	if err != nil {
		t.Fatalf("RenderStatement: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
}
