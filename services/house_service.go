package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/models"
)

// InterfaceHouseService defines the house registry service interface
type InterfaceHouseService interface {
	GetAllHouses(ctx context.Context, page, pageSize int) ([]models.House, int64, error)
	GetHouseByID(ctx context.Context, id uint) (*models.House, error)
	CreateHouse(ctx context.Context, house *models.House) error
	DeleteHouse(ctx context.Context, id uint) error
	GetHouseBills(ctx context.Context, houseID uint) ([]models.Bill, error)
	GetHouseFines(ctx context.Context, houseID uint) ([]models.Fine, error)
}

// HouseService provides house registry operations
type HouseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHouseService creates a new house service
func NewHouseService(db *gorm.DB, cfg *config.Config) InterfaceHouseService {
	return &HouseService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllHouses returns registered houses with pagination
func (s *HouseService) GetAllHouses(ctx context.Context, page, pageSize int) ([]models.House, int64, error) {
	var houses []models.House
	var total int64

	if err := s.DB.WithContext(ctx).Model(&models.House{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.WithContext(ctx).Limit(pageSize).Offset(offset).Find(&houses).Error; err != nil {
		return nil, 0, err
	}

	return houses, total, nil
}

// 2. GetHouseByID returns one house by id
func (s *HouseService) GetHouseByID(ctx context.Context, id uint) (*models.House, error) {
	var house models.House
	if err := s.DB.WithContext(ctx).First(&house, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// 3. CreateHouse registers a new house. The size descriptor must parse to
// a positive area; registration is rejected otherwise so no house can
// later produce a corrupted bill.
func (s *HouseService) CreateHouse(ctx context.Context, house *models.House) error {
	if _, err := ParseHouseSize(house.HouseSize); err != nil {
		return err
	}

	// House number uniqueness
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.House{}).Where("house_number = ?", house.HouseNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrHouseExists, house.HouseNumber)
	}

	return s.DB.WithContext(ctx).Create(house).Error
}

// 4. DeleteHouse removes a house under the CascadeBillsOnly policy: the
// house's bills are deleted with it, its fines are deliberately left in
// place. Orphaned fines are excluded from aggregation and counted there.
func (s *HouseService) DeleteHouse(ctx context.Context, id uint) error {
	house, err := s.GetHouseByID(ctx, id)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("house_id = ?", id).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		return tx.Delete(house).Error
	})
}

// 5. GetHouseBills returns the bills issued to a house
func (s *HouseService) GetHouseBills(ctx context.Context, houseID uint) ([]models.Bill, error) {
	if _, err := s.GetHouseByID(ctx, houseID); err != nil {
		return nil, err
	}

	var bills []models.Bill
	if err := s.DB.WithContext(ctx).Where("house_id = ?", houseID).Order("id asc").Find(&bills).Error; err != nil {
		return nil, err
	}

	return bills, nil
}

// 6. GetHouseFines returns the fines issued to a house
func (s *HouseService) GetHouseFines(ctx context.Context, houseID uint) ([]models.Fine, error) {
	if _, err := s.GetHouseByID(ctx, houseID); err != nil {
		return nil, err
	}

	var fines []models.Fine
	if err := s.DB.WithContext(ctx).Where("house_id = ?", houseID).Order("id asc").Find(&fines).Error; err != nil {
		return nil, err
	}

	return fines, nil
}
