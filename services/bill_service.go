package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/models"
)

// billDateLayouts are the accepted wire formats for billing month and due
// date. Month pickers send "2006-01", date pickers "2006-01-02".
var billDateLayouts = []string{"2006-01-02", "2006-01"}

// ParseBillDate parses a billing month or due date string
func ParseBillDate(value string) (time.Time, error) {
	for _, layout := range billDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// BillView is a bill resolved with its owning house for list consumers
type BillView struct {
	models.Bill
	House models.HouseRef `json:"house"`
}

// InterfaceBillService defines the bill lifecycle service interface
type InterfaceBillService interface {
	GetAllBills(ctx context.Context, houseID uint, page, pageSize int) ([]BillView, int64, error)
	GetBillByID(ctx context.Context, id uint) (*models.Bill, error)
	CreateBill(ctx context.Context, houseID uint, month, dueDate string) (*models.Bill, error)
	UpdateBill(ctx context.Context, id uint, updates map[string]interface{}) (*models.Bill, error)
	DeleteBill(ctx context.Context, id uint) error
}

// BillService provides bill lifecycle operations. A bill status change is
// propagated to every fine of the same house (best effort, no rollback).
type BillService struct {
	DB         *gorm.DB
	Config     *config.Config
	Calculator *ChargeCalculator
	Fines      InterfaceFineService
	Notifier   InterfaceNotificationService
}

// NewBillService creates a new bill service
func NewBillService(db *gorm.DB, cfg *config.Config, fines InterfaceFineService, notifier InterfaceNotificationService) InterfaceBillService {
	return &BillService{
		DB:         db,
		Config:     cfg,
		Calculator: NewChargeCalculator(cfg),
		Fines:      fines,
		Notifier:   notifier,
	}
}

// 1. GetAllBills returns bills with pagination, optionally restricted to
// one house, each resolved with its owning house.
func (s *BillService) GetAllBills(ctx context.Context, houseID uint, page, pageSize int) ([]BillView, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Bill{})
	if houseID != 0 {
		query = query.Where("house_id = ?", houseID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bills []models.Bill
	offset := (page - 1) * pageSize
	if err := query.Preload("House").Order("id asc").Limit(pageSize).Offset(offset).Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	views := make([]BillView, 0, len(bills))
	for _, bill := range bills {
		ref := models.RefHouseID(bill.HouseID)
		if bill.House != nil {
			ref = models.RefHouse(bill.House)
		}
		bill.House = nil
		views = append(views, BillView{Bill: bill, House: ref})
	}

	return views, total, nil
}

// 2. GetBillByID returns one bill by id
func (s *BillService) GetBillByID(ctx context.Context, id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.DB.WithContext(ctx).First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// 3. CreateBill issues a monthly bill for a house: looks up the house,
// parses its size descriptor into marla, derives the charges from the
// tariff and persists a pending bill. Month and due date are required.
func (s *BillService) CreateBill(ctx context.Context, houseID uint, month, dueDate string) (*models.Bill, error) {
	var house models.House
	if err := s.DB.WithContext(ctx).First(&house, houseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	marlas, err := ParseHouseSize(house.HouseSize)
	if err != nil {
		return nil, err
	}

	billMonth, err := ParseBillDate(month)
	if err != nil {
		return nil, err
	}
	billDue, err := ParseBillDate(dueDate)
	if err != nil {
		return nil, err
	}

	charges := s.Calculator.Calculate(marlas)
	bill := &models.Bill{
		HouseID:        house.ID,
		Amount:         charges.Amount,
		MasjidFund:     charges.MasjidFund,
		GuardService:   charges.GuardService,
		StreetLighting: charges.StreetLighting,
		Gardener:       charges.Gardener,
		Month:          billMonth,
		DueDate:        billDue,
		Status:         models.StatusPending,
	}

	if err := s.DB.WithContext(ctx).Create(bill).Error; err != nil {
		return nil, err
	}

	s.Notifier.PublishBillCreated(bill)
	return bill, nil
}

// 4. UpdateBill applies a partial update to a bill. Only the supplied
// fields change; an amount edit does not recompute the charge components,
// so amount and components may drift apart (documented behavior).
// A status change triggers fine synchronization for the bill's house; if
// some fine updates fail the returned error is a *SyncError and the bill
// plus the already-updated fines stay applied.
func (s *BillService) UpdateBill(ctx context.Context, id uint, updates map[string]interface{}) (*models.Bill, error) {
	bill, err := s.GetBillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := bill.Status

	if raw, ok := updates["status"]; ok {
		status, ok := raw.(models.BillStatus)
		if !ok || !status.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, raw)
		}
	}

	if err := s.DB.WithContext(ctx).Model(bill).Updates(updates).Error; err != nil {
		return nil, err
	}

	updated, err := s.GetBillByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updated.Status != oldStatus {
		s.Notifier.PublishBillStatusChanged(updated, oldStatus)
		if syncErr := s.syncFineStatuses(ctx, updated.HouseID, updated.Status); syncErr != nil {
			return updated, syncErr
		}
	}

	return updated, nil
}

// 5. DeleteBill removes a bill. Fines of the same house are untouched.
func (s *BillService) DeleteBill(ctx context.Context, id uint) error {
	bill, err := s.GetBillByID(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(bill).Error
}

// syncFineStatuses sets every fine of the house to the bill's new status.
// Best-effort batch: a failed fine update is recorded and the loop keeps
// going; nothing already applied is rolled back.
func (s *BillService) syncFineStatuses(ctx context.Context, houseID uint, status models.BillStatus) error {
	var fines []models.Fine
	if err := s.DB.WithContext(ctx).Where("house_id = ?", houseID).Find(&fines).Error; err != nil {
		return &SyncError{HouseID: houseID, Errs: []error{err}}
	}
	if len(fines) == 0 {
		return nil
	}

	syncErr := &SyncError{HouseID: houseID}
	for _, fine := range fines {
		if _, err := s.Fines.UpdateFineStatus(ctx, fine.ID, status); err != nil {
			syncErr.Failed++
			syncErr.Errs = append(syncErr.Errs, fmt.Errorf("fine %d: %w", fine.ID, err))
			continue
		}
		syncErr.Updated++
	}

	s.Notifier.PublishFineSync(houseID, status, syncErr.Updated, syncErr.Failed)
	if syncErr.Failed > 0 {
		return syncErr
	}
	return nil
}
