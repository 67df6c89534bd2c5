package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/models"
)

// FineView is a fine resolved with its house for list consumers. The
// house ref stays unresolved when the linked house no longer exists.
type FineView struct {
	models.Fine
	House models.HouseRef `json:"house"`
}

// InterfaceFineService defines the fine ledger service interface
type InterfaceFineService interface {
	GetAllFines(ctx context.Context, houseID uint, page, pageSize int) ([]FineView, int64, error)
	GetFineByID(ctx context.Context, id uint) (*models.Fine, error)
	CreateFine(ctx context.Context, fine *models.Fine) error
	UpdateFineStatus(ctx context.Context, id uint, status models.BillStatus) (*models.Fine, error)
	DeleteFine(ctx context.Context, id uint) error
}

// FineService provides fine ledger operations. Fine amounts are operator
// entered freeform; no formula ties them to house size or bills.
type FineService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFineService creates a new fine service
func NewFineService(db *gorm.DB, cfg *config.Config) InterfaceFineService {
	return &FineService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllFines returns fines with pagination, optionally restricted to one house
func (s *FineService) GetAllFines(ctx context.Context, houseID uint, page, pageSize int) ([]FineView, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Fine{})
	if houseID != 0 {
		query = query.Where("house_id = ?", houseID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fines []models.Fine
	offset := (page - 1) * pageSize
	if err := query.Preload("House").Order("id asc").Limit(pageSize).Offset(offset).Find(&fines).Error; err != nil {
		return nil, 0, err
	}

	views := make([]FineView, 0, len(fines))
	for _, fine := range fines {
		ref := models.RefHouseID(fine.HouseID)
		if fine.House != nil {
			ref = models.RefHouse(fine.House)
		}
		fine.House = nil
		views = append(views, FineView{Fine: fine, House: ref})
	}

	return views, total, nil
}

// 2. GetFineByID returns one fine by id
func (s *FineService) GetFineByID(ctx context.Context, id uint) (*models.Fine, error) {
	var fine models.Fine
	if err := s.DB.WithContext(ctx).First(&fine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFineNotFound
		}
		return nil, err
	}
	return &fine, nil
}

// 3. CreateFine records a new fine, defaulting status to pending
func (s *FineService) CreateFine(ctx context.Context, fine *models.Fine) error {
	if fine.Status == "" {
		fine.Status = models.StatusPending
	}
	if !fine.Status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, fine.Status)
	}
	return s.DB.WithContext(ctx).Create(fine).Error
}

// 4. UpdateFineStatus sets the status of one fine
func (s *FineService) UpdateFineStatus(ctx context.Context, id uint, status models.BillStatus) (*models.Fine, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	fine, err := s.GetFineByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(fine).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetFineByID(ctx, id)
}

// 5. DeleteFine removes a fine
func (s *FineService) DeleteFine(ctx context.Context, id uint) error {
	fine, err := s.GetFineByID(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(fine).Error
}
