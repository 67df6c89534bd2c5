package models

import "time"

// Bill is a monthly maintenance charge issued to one house. Amount equals
// the sum of the four service components at creation time; a manual amount
// edit is allowed to drift away from the components and is not corrected.
type Bill struct {
	BaseModel
	HouseID uint `gorm:"not null;index" json:"house_id"`
	Amount  int  `gorm:"not null" json:"amount"`

	// Charge components, each derived from the house area at issue time
	MasjidFund     int `gorm:"not null" json:"masjid_fund"`
	GuardService   int `gorm:"not null" json:"guard_service"`
	StreetLighting int `gorm:"not null" json:"street_lighting"`
	Gardener       int `gorm:"not null" json:"gardener"`

	Month   time.Time  `gorm:"not null" json:"month"` // billing month, stored as a date
	DueDate time.Time  `gorm:"not null" json:"due_date"`
	Status  BillStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	House *House `gorm:"foreignKey:HouseID" json:"house,omitempty"`
}
