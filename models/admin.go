package models

import (
	"time"

	"gorm.io/gorm"

	"society-billing-service/utils"
)

// Admin represents an operator account of the administration tool
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.Password != "" && len(a.Password) < 60 {
		hashedPassword, err := utils.HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashedPassword
	}
	return nil
}

// BeforeSave is a GORM hook that runs before a record is saved
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	// bcrypt hashes are 60 bytes; shorter values are plain text
	if a.Password != "" && len(a.Password) < 60 {
		hashedPassword, err := utils.HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashedPassword
	}
	return nil
}
