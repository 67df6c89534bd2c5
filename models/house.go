package models

// House represents a registered house of the society
type House struct {
	BaseModel
	HouseNumber  string `gorm:"type:varchar(20);unique;not null" json:"house_number"` // e.g. "B-114"
	ResidentName string `gorm:"type:varchar(50);not null" json:"resident_name"`
	HouseSize    string `gorm:"type:varchar(20);not null" json:"house_size"` // size descriptor, e.g. "10 marla", "2 kanal"
	Phone        string `gorm:"type:varchar(20)" json:"phone,omitempty"`

	// Relations
	Bills []Bill `gorm:"foreignKey:HouseID" json:"bills,omitempty"`
	Fines []Fine `gorm:"foreignKey:HouseID" json:"fines,omitempty"`
}
