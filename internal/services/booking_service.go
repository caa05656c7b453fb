package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"venu/internal/authz"
	"venu/internal/models/db_models"
	"venu/internal/models/request_models"
	"venu/internal/models/response_models"
	"venu/internal/repositories"
	"venu/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, caller authz.Caller, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	GetBooking(ctx context.Context, caller authz.Caller, bookingID string) (*response_models.BookingResponse, error)
	ListBookings(ctx context.Context, caller authz.Caller, page, pageSize int) ([]response_models.BookingResponse, error)
	UpdateStatus(ctx context.Context, caller authz.Caller, bookingID string, request request_models.UpdateBookingStatusRequest) error
	AssignAdmin(ctx context.Context, caller authz.Caller, bookingID string, request request_models.AssignAdminRequest) error
	UpdateSpend(ctx context.Context, caller authz.Caller, bookingID string, request request_models.UpdateSpendRequest) error
}

type BookingService struct {
	bookingRepo      repositories.BookingRepository
	accountRepo      repositories.AccountRepository
	notificationRepo repositories.NotificationRepository
	mailService      IMailService
	logger           *zap.Logger
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	accountRepo repositories.AccountRepository,
	notificationRepo repositories.NotificationRepository,
	mailService IMailService,
	logger *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:      bookingRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		mailService:      mailService,
		logger:           logger,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, caller authz.Caller, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	if !authz.CanCreateBooking(caller) {
		return nil, utils.ErrForbidden
	}

	eventDate, err := time.Parse(time.RFC3339, request.EventDate)
	if err != nil {
		return nil, utils.ErrInvalidEventDate
	}

	// Owner is always the caller; contact fields are a snapshot and are not
	// synced back to the account afterwards.
	booking := &db_models.Booking{
		ClientID:        caller.ID,
		ClientName:      request.ClientName,
		ClientEmail:     request.ClientEmail,
		ClientPhone:     request.ClientPhone,
		EventDate:       eventDate.Unix(),
		TimeSlot:        request.TimeSlot,
		Facility:        request.Facility,
		Package:         request.Package,
		SpecialRequests: request.SpecialRequests,
		Status:          db_models.BookingStatusInquiry,
	}

	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		s.logger.Error("booking insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.notify(ctx, caller.ID, db_models.NotifBookingInquiry, "Inquiry received",
		fmt.Sprintf("Your inquiry for %s on %s has been received.", booking.Facility, eventDate.Format("2006-01-02")),
		booking.ID)

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) GetBooking(ctx context.Context, caller authz.Caller, bookingID string) (*response_models.BookingResponse, error) {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// A row the caller may not see and a row that does not exist look the
	// same from outside.
	if booking == nil || !authz.CanReadBooking(caller, booking) {
		return nil, utils.ErrBookingNotFound
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) ListBookings(ctx context.Context, caller authz.Caller, page, pageSize int) ([]response_models.BookingResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	var (
		bookings []db_models.Booking
		err      error
	)
	if caller.Role.IsAdminLevel() {
		bookings, err = s.bookingRepo.ListAll(ctx, page, pageSize)
	} else {
		bookings, err = s.bookingRepo.ListByClient(ctx, caller.ID, page, pageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}
	return responses, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, caller authz.Caller, bookingID string, request request_models.UpdateBookingStatusRequest) error {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil || !authz.CanReadBooking(caller, booking) {
		return utils.ErrBookingNotFound
	}
	if !authz.CanUpdateBooking(caller, booking) {
		return utils.ErrForbidden
	}

	next := db_models.BookingStatus(request.Status)
	if !booking.Status.CanAdvanceTo(next) {
		return utils.ErrInvalidTransition
	}

	rows, err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, next)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		// Lost a race: the row moved on since we read it.
		return utils.ErrInvalidTransition
	}

	switch next {
	case db_models.BookingStatusConfirmed:
		s.notify(ctx, booking.ClientID, db_models.NotifBookingConfirmed, "Booking confirmed",
			fmt.Sprintf("Your booking for %s has been confirmed.", booking.Facility), booking.ID)
		eventDate := time.Unix(booking.EventDate, 0).UTC().Format("2006-01-02")
		if err := s.mailService.SendBookingConfirmed(booking.ClientEmail, booking.Facility, eventDate); err != nil {
			s.logger.Warn("confirmation mail failed",
				zap.String("booking_id", booking.ID.String()), zap.Error(err))
		}
	case db_models.BookingStatusCleared:
		s.notify(ctx, booking.ClientID, db_models.NotifBookingCleared, "Booking cleared",
			fmt.Sprintf("Your booking for %s has been cleared.", booking.Facility), booking.ID)
	}

	return nil
}

func (s *BookingService) AssignAdmin(ctx context.Context, caller authz.Caller, bookingID string, request request_models.AssignAdminRequest) error {
	if !authz.CanAssignBooking(caller) {
		return utils.ErrForbidden
	}

	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}

	// assigned_admin_id must reference an admin-level account. The schema
	// does not enforce this, so the service does.
	admin, err := s.accountRepo.FindById(ctx, request.AdminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if admin == nil || !admin.Role.IsAdminLevel() {
		return utils.ErrAssigneeNotAdmin
	}

	if _, err := s.bookingRepo.AssignAdmin(ctx, booking.ID, admin.ID); err != nil {
		return utils.ErrDatabaseError
	}

	s.notify(ctx, admin.ID, db_models.NotifAssignment, "Booking assigned to you",
		fmt.Sprintf("Inquiry from %s for %s is now yours.", booking.ClientName, booking.Facility), booking.ID)

	return nil
}

func (s *BookingService) UpdateSpend(ctx context.Context, caller authz.Caller, bookingID string, request request_models.UpdateSpendRequest) error {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil || !authz.CanReadBooking(caller, booking) {
		return utils.ErrBookingNotFound
	}
	if !authz.CanUpdateBooking(caller, booking) {
		return utils.ErrForbidden
	}
	if booking.Status != db_models.BookingStatusConfirmed {
		return utils.ErrNotConfirmedPhase
	}

	if _, err := s.bookingRepo.UpdateSpend(ctx, booking.ID, request.TotalSpend, request.ReceiptUploaded, request.ReceiptApproved); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// notify is fire-and-forget relative to the booking write: a failed insert is
// logged, never rolled back into the booking mutation.
func (s *BookingService) notify(ctx context.Context, userID uuid.UUID, kind db_models.NotificationType, title, message string, bookingID uuid.UUID) {
	n := &db_models.Notification{
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		BookingID: &bookingID,
	}
	if err := s.notificationRepo.Insert(ctx, n); err != nil {
		s.logger.Warn("notification insert failed",
			zap.String("booking_id", bookingID.String()), zap.Error(err))
	}
}

func toBookingResponse(b *db_models.Booking) response_models.BookingResponse {
	resp := response_models.BookingResponse{
		ID:              b.ID.String(),
		ClientID:        b.ClientID.String(),
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		EventDate:       time.Unix(b.EventDate, 0).UTC().Format(time.RFC3339),
		TimeSlot:        b.TimeSlot,
		Facility:        b.Facility,
		Package:         b.Package,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		TotalSpend:      b.TotalSpend,
		ReceiptUploaded: b.ReceiptUploaded,
		ReceiptApproved: b.ReceiptApproved,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.AssignedAdminID != nil {
		id := b.AssignedAdminID.String()
		resp.AssignedAdminID = &id
	}
	return resp
}
