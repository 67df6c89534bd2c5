package models

// Fine is an ad hoc penalty charge issued to a house, independent of the
// monthly billing cycle. There is no foreign key to any bill; fines and
// bills relate only through the shared house and, for synchronization,
// through matching status values.
type Fine struct {
	BaseModel
	HouseID uint       `gorm:"not null;index" json:"house_id"`
	Amount  int        `gorm:"not null" json:"amount"`
	Reason  string     `gorm:"type:varchar(200);not null" json:"reason"`
	Status  BillStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	House *House `gorm:"foreignKey:HouseID" json:"house,omitempty"`
}
