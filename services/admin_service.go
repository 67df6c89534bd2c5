package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/models"
	"society-billing-service/utils"
)

// InterfaceAdminService defines the operator account service interface
type InterfaceAdminService interface {
	GetAllAdmins(ctx context.Context, page, pageSize int) ([]models.Admin, int64, error)
	GetAdminByID(ctx context.Context, id uint) (*models.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	UpdateAdmin(ctx context.Context, id uint, updates map[string]interface{}) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id uint) error
}

// AdminService provides operator account operations
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllAdmins returns operator accounts with pagination
func (s *AdminService) GetAllAdmins(ctx context.Context, page, pageSize int) ([]models.Admin, int64, error) {
	var admins []models.Admin
	var total int64

	if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.WithContext(ctx).Limit(pageSize).Offset(offset).Find(&admins).Error; err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// GetAdminByID returns one operator account by id
func (s *AdminService) GetAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByUsername returns one operator account by username
func (s *AdminService) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin creates a new operator account
func (s *AdminService) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Where("username = ?", admin.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrAdminExists, admin.Username)
	}

	return s.DB.WithContext(ctx).Create(admin).Error
}

// UpdateAdmin updates an operator account
func (s *AdminService) UpdateAdmin(ctx context.Context, id uint, updates map[string]interface{}) (*models.Admin, error) {
	admin, err := s.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username, ok := updates["username"].(string); ok && username != admin.Username {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %s", ErrAdminExists, username)
		}
	}

	if password, ok := updates["password"].(string); ok {
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashedPassword
	}

	if err := s.DB.WithContext(ctx).Model(admin).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAdminByID(ctx, id)
}

// DeleteAdmin removes an operator account, keeping at least one in the system
func (s *AdminService) DeleteAdmin(ctx context.Context, id uint) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}

	admin, err := s.GetAdminByID(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(admin).Error
}
