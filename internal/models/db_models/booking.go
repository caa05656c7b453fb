package db_models

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusInquiry   BookingStatus = "inquiry"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCleared   BookingStatus = "cleared"
)

// statusRank orders the lifecycle. Transitions may only move forward:
// inquiry -> confirmed -> cleared.
var statusRank = map[BookingStatus]int{
	BookingStatusInquiry:   0,
	BookingStatusConfirmed: 1,
	BookingStatusCleared:   2,
}

func (s BookingStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether next is a legal forward transition from s.
func (s BookingStatus) CanAdvanceTo(next BookingStatus) bool {
	cur, ok1 := statusRank[s]
	nxt, ok2 := statusRank[next]
	return ok1 && ok2 && nxt > cur
}

type Booking struct {
	BaseModel
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Contact snapshot taken at submission time, never synced back to the account
	ClientName  string
	ClientEmail string
	ClientPhone string

	EventDate       int64  `gorm:"index"` // unix seconds, start of the requested day
	TimeSlot        string `gorm:"size:32"`
	Facility        string
	Package         string
	SpecialRequests string `gorm:"type:text"`

	Status          BookingStatus `gorm:"type:booking_status;default:'inquiry';index"`
	AssignedAdminID *uuid.UUID    `gorm:"type:uuid;index"`
	TotalSpend      *int64        // minor units
	ReceiptUploaded bool
	ReceiptApproved bool

	Client        Account  `gorm:"foreignKey:ClientID"`
	AssignedAdmin *Account `gorm:"foreignKey:AssignedAdminID"`
}
