package models

import "time"

// PaginationResult describes one page of a list response
type PaginationResult struct {
	Total    int `json:"total"`
	PageNum  int `json:"page_num"`
	PageSize int `json:"page_size"`
}

// BaseModel is embedded by all persisted records
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPaginationResult creates a new pagination result object
func NewPaginationResult(total, pageNum, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	}
}
