package db_models

import "github.com/lib/pq"

type Facility struct {
	BaseModel
	Name        string         `gorm:"unique"`
	Description string         `gorm:"type:text"`
	Amenities   pq.StringArray `gorm:"type:text[]"`
	// Bookable slots, e.g. "morning", "afternoon", "evening"
	TimeSlots pq.StringArray `gorm:"type:text[]"`
	Active    bool           `gorm:"default:true"`
}
