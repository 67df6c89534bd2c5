package services

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/models"
)

// HouseSummary is the per-house dashboard row: last bill status, unpaid
// totals and the latest due date among unpaid bills.
type HouseSummary struct {
	HouseID           uint               `json:"house_id"`
	HouseNumber       string             `json:"house_number"`
	ResidentName      string             `json:"resident_name"`
	HouseSize         string             `json:"house_size"`
	Phone             string             `json:"phone,omitempty"`
	BillStatus        models.BillStatus  `json:"bill_status"`
	LastBillID        uint               `json:"last_bill_id,omitempty"`
	LastBillAmount    int                `json:"last_bill_amount"`
	FineAmount        int                `json:"fine_amount"`
	OutstandingAmount int                `json:"outstanding_amount"`
	LatestDueDate     *time.Time         `json:"latest_due_date"`
}

// DashboardData is the full dashboard projection. ExcludedFines counts
// fines whose house linkage could not be resolved; they are dropped from
// every sum (leniency policy) but surfaced here for audit.
type DashboardData struct {
	Houses        []HouseSummary `json:"houses"`
	ExcludedFines int            `json:"excluded_fines"`
}

// HistoryRow is one payment-history line of a statement
type HistoryRow struct {
	BillingMonth   string `json:"billing_month"`
	Amount         int    `json:"amount"`
	ReceivedAmount int    `json:"received_amount"`
}

// Statement is the print-ready view of a house's payable amount and
// history, consumed by the document renderer.
type Statement struct {
	ReferenceID    string            `json:"reference_id"`
	HouseID        uint              `json:"house_id"`
	HouseNumber    string            `json:"house_number"`
	ResidentName   string            `json:"resident_name"`
	HouseSize      string            `json:"house_size"`
	Phone          string            `json:"phone,omitempty"`
	Month          time.Time         `json:"month"`
	DueDate        time.Time         `json:"due_date"`
	Status         models.BillStatus `json:"status"`
	Amount         int               `json:"amount"`
	MasjidFund     int               `json:"masjid_fund"`
	GuardService   int               `json:"guard_service"`
	StreetLighting int               `json:"street_lighting"`
	Gardener       int               `json:"gardener"`
	FineAmount     int               `json:"fine_amount"`
	History        []HistoryRow      `json:"history"`
}

// InterfaceStatementService defines the aggregation engine interface
type InterfaceStatementService interface {
	GetHouseSummaries(ctx context.Context) (*DashboardData, error)
	BuildStatement(ctx context.Context, houseID uint) (*Statement, error)
}

// StatementService is the aggregation engine: it rolls bills and fines of
// a house up into dashboard figures and the printable statement view.
// All filtering lives here; callers never re-derive these sums.
type StatementService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStatementService creates a new statement service
func NewStatementService(db *gorm.DB, cfg *config.Config) InterfaceStatementService {
	return &StatementService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetHouseSummaries builds the dashboard projection across all houses.
// Fines whose house no longer exists are excluded from every sum, counted
// and logged instead of failing the whole dashboard.
func (s *StatementService) GetHouseSummaries(ctx context.Context) (*DashboardData, error) {
	var houses []models.House
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&houses).Error; err != nil {
		return nil, err
	}

	var bills []models.Bill
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&bills).Error; err != nil {
		return nil, err
	}

	var fines []models.Fine
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&fines).Error; err != nil {
		return nil, err
	}

	known := make(map[uint]bool, len(houses))
	for _, house := range houses {
		known[house.ID] = true
	}

	billsByHouse := make(map[uint][]models.Bill)
	for _, bill := range bills {
		billsByHouse[bill.HouseID] = append(billsByHouse[bill.HouseID], bill)
	}

	excluded := 0
	finesByHouse := make(map[uint][]models.Fine)
	for _, fine := range fines {
		if !known[fine.HouseID] {
			excluded++
			continue
		}
		finesByHouse[fine.HouseID] = append(finesByHouse[fine.HouseID], fine)
	}
	if excluded > 0 {
		log.Printf("dashboard aggregation: %d fine(s) excluded, house linkage unresolved", excluded)
	}

	summaries := make([]HouseSummary, 0, len(houses))
	for _, house := range houses {
		summaries = append(summaries, SummarizeHouse(house, billsByHouse[house.ID], finesByHouse[house.ID]))
	}

	return &DashboardData{Houses: summaries, ExcludedFines: excluded}, nil
}

// 2. BuildStatement assembles the printable statement view for one house.
// A house with no bills yields ErrNoBills so the caller reports "no bills
// found" instead of emitting an empty document.
func (s *StatementService) BuildStatement(ctx context.Context, houseID uint) (*Statement, error) {
	var house models.House
	if err := s.DB.WithContext(ctx).First(&house, houseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	var bills []models.Bill
	if err := s.DB.WithContext(ctx).Where("house_id = ?", houseID).Order("id asc").Find(&bills).Error; err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, ErrNoBills
	}

	var fines []models.Fine
	if err := s.DB.WithContext(ctx).Where("house_id = ?", houseID).Order("id asc").Find(&fines).Error; err != nil {
		return nil, err
	}

	return ComposeStatement(house, bills, fines), nil
}

// SummarizeHouse derives the dashboard figures for one house from its
// bill and fine sets. Bills must be in insertion order: the current bill
// status is the status of the last-created bill, not the latest by date.
func SummarizeHouse(house models.House, bills []models.Bill, fines []models.Fine) HouseSummary {
	summary := HouseSummary{
		HouseID:      house.ID,
		HouseNumber:  house.HouseNumber,
		ResidentName: house.ResidentName,
		HouseSize:    house.HouseSize,
		Phone:        house.Phone,
		BillStatus:   models.StatusPending,
	}

	if len(bills) > 0 {
		last := bills[len(bills)-1]
		summary.BillStatus = last.Status
		summary.LastBillID = last.ID
		summary.LastBillAmount = last.Amount
	}

	unpaidAmount := 0
	for _, bill := range bills {
		if !bill.Status.Unpaid() {
			continue
		}
		unpaidAmount += bill.Amount
		due := bill.DueDate
		if summary.LatestDueDate == nil || due.After(*summary.LatestDueDate) {
			summary.LatestDueDate = &due
		}
	}

	for _, fine := range fines {
		if fine.Status.Unpaid() {
			summary.FineAmount += fine.Amount
		}
	}

	summary.OutstandingAmount = unpaidAmount + summary.FineAmount
	return summary
}

// ComposeStatement builds the statement view from a house's full bill and
// fine sets (bills in insertion order).
//
// Two branches: when every bill is submitted the statement reflects only
// the single most-recent-by-due-date bill and the fines sharing its exact
// status; otherwise amounts and all four components are summed across the
// non-submitted bills and fines not yet submitted.
//
// Fines attach to history rows by matching status value. This is a known
// approximation, not a real per-bill assignment: two bills sharing a
// status both pick up the same fines. Kept for parity with the statement
// figures operators already reconcile against; revisit with the product
// owner before changing it.
func ComposeStatement(house models.House, bills []models.Bill, fines []models.Fine) *Statement {
	st := &Statement{
		ReferenceID:  uuid.NewString(),
		HouseID:      house.ID,
		HouseNumber:  house.HouseNumber,
		ResidentName: house.ResidentName,
		HouseSize:    house.HouseSize,
		Phone:        house.Phone,
	}

	var unpaid []models.Bill
	for _, bill := range bills {
		if bill.Status != models.StatusSubmitted {
			unpaid = append(unpaid, bill)
		}
	}

	if len(unpaid) == 0 {
		// All submitted: the single most recent bill by due date speaks
		// for the house.
		latest := bills[0]
		for _, bill := range bills[1:] {
			if bill.DueDate.After(latest.DueDate) {
				latest = bill
			}
		}
		st.Month = latest.Month
		st.DueDate = latest.DueDate
		st.Status = latest.Status
		st.Amount = latest.Amount
		st.MasjidFund = latest.MasjidFund
		st.GuardService = latest.GuardService
		st.StreetLighting = latest.StreetLighting
		st.Gardener = latest.Gardener
		for _, fine := range fines {
			if fine.Status == latest.Status {
				st.FineAmount += fine.Amount
			}
		}
	} else {
		st.Month = unpaid[0].Month
		st.Status = unpaid[0].Status
		st.DueDate = unpaid[0].DueDate
		for _, bill := range unpaid {
			st.Amount += bill.Amount
			st.MasjidFund += bill.MasjidFund
			st.GuardService += bill.GuardService
			st.StreetLighting += bill.StreetLighting
			st.Gardener += bill.Gardener
			if bill.DueDate.After(st.DueDate) {
				st.DueDate = bill.DueDate
			}
		}
		for _, fine := range fines {
			if fine.Status != models.StatusSubmitted {
				st.FineAmount += fine.Amount
			}
		}
	}

	st.History = PaymentHistory(bills, fines)
	return st
}

// PaymentHistory produces one row per bill ordered by billing month
// ascending. A row's amount is the bill amount plus the fines sharing the
// bill's status; the received amount equals that total only for
// submitted bills.
func PaymentHistory(bills []models.Bill, fines []models.Fine) []HistoryRow {
	ordered := make([]models.Bill, len(bills))
	copy(ordered, bills)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Month.Before(ordered[j].Month)
	})

	fineTotalByStatus := make(map[models.BillStatus]int)
	for _, fine := range fines {
		fineTotalByStatus[fine.Status] += fine.Amount
	}

	rows := make([]HistoryRow, 0, len(ordered))
	for _, bill := range ordered {
		total := bill.Amount + fineTotalByStatus[bill.Status]
		received := 0
		if bill.Status == models.StatusSubmitted {
			received = total
		}
		rows = append(rows, HistoryRow{
			BillingMonth:   bill.Month.Format("Jan-2006"),
			Amount:         total,
			ReceivedAmount: received,
		})
	}
	return rows
}
