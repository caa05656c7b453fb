package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotifBookingInquiry   NotificationType = "booking_inquiry"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCleared   NotificationType = "booking_cleared"
	NotifAssignment       NotificationType = "assignment"
)

type Notification struct {
	BaseModel
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type      NotificationType `gorm:"type:notification_type"`
	Title     string
	Message   string     `gorm:"type:text"`
	IsRead    bool       `gorm:"index"`
	BookingID *uuid.UUID `gorm:"type:uuid"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User    Account  `gorm:"foreignKey:UserID"`
	Booking *Booking `gorm:"foreignKey:BookingID"`
}
