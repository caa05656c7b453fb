package utils

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("forbidden")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidEventDate     = errors.New("invalid event date")
	ErrNotConfirmedPhase    = errors.New("booking is not in the confirmed phase")
	ErrAssigneeNotAdmin     = errors.New("assignee is not an admin account")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrDatabaseError        = errors.New("database error")
)
