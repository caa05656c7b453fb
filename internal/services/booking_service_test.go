package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"venu/internal/authz"
	"venu/internal/models/db_models"
	"venu/internal/models/request_models"
	"venu/pkg/utils"
)

type bookingFixture struct {
	svc      BookingServiceInterface
	bookings *fakeBookingRepo
	accounts *fakeAccountRepo
	notifs   *fakeNotificationRepo
	mail     *fakeMailService
	client   authz.Caller
	admin    authz.Caller
	otherAdm authz.Caller
	superAdm authz.Caller
}

func newBookingFixture() *bookingFixture {
	bookings := newFakeBookingRepo()
	accounts := newFakeAccountRepo()
	notifs := newFakeNotificationRepo()
	mail := &fakeMailService{}

	client := accounts.add(&db_models.Account{Email: "c@x.com", Role: db_models.RoleClient})
	admin := accounts.add(&db_models.Account{Email: "a@x.com", Role: db_models.RoleAdmin})
	otherAdm := accounts.add(&db_models.Account{Email: "b@x.com", Role: db_models.RoleAdmin})
	superAdm := accounts.add(&db_models.Account{Email: "s@x.com", Role: db_models.RoleSuperAdmin})

	return &bookingFixture{
		svc:      NewBookingService(bookings, accounts, notifs, mail, zap.NewNop()),
		bookings: bookings,
		accounts: accounts,
		notifs:   notifs,
		mail:     mail,
		client:   authz.Caller{ID: client.ID, Role: client.Role},
		admin:    authz.Caller{ID: admin.ID, Role: admin.Role},
		otherAdm: authz.Caller{ID: otherAdm.ID, Role: otherAdm.Role},
		superAdm: authz.Caller{ID: superAdm.ID, Role: superAdm.Role},
	}
}

func (f *bookingFixture) inquiry(t *testing.T) *db_models.Booking {
	t.Helper()
	resp, err := f.svc.CreateBooking(context.Background(), f.client, request_models.CreateBookingRequest{
		ClientName:  "Carol Client",
		ClientEmail: "c@x.com",
		EventDate:   time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		TimeSlot:    "evening",
		Facility:    "Grand Hall",
		Package:     "gold",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return f.bookings.bookings[id]
}

func TestCreateBookingOwnerIsCaller(t *testing.T) {
	f := newBookingFixture()

	booking := f.inquiry(t)
	assert.Equal(t, f.client.ID, booking.ClientID)
	assert.Equal(t, db_models.BookingStatusInquiry, booking.Status)

	// The submitter gets an inquiry-received notification
	notifs := f.notifs.byUser(f.client.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, db_models.NotifBookingInquiry, notifs[0].Type)
}

func TestGetBookingVisibility(t *testing.T) {
	f := newBookingFixture()
	booking := f.inquiry(t)
	id := booking.ID.String()

	_, err := f.svc.GetBooking(context.Background(), f.client, id)
	assert.NoError(t, err)
	_, err = f.svc.GetBooking(context.Background(), f.admin, id)
	assert.NoError(t, err)

	stranger := authz.Caller{ID: uuid.New(), Role: db_models.RoleClient}
	_, err = f.svc.GetBooking(context.Background(), stranger, id)
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}

func TestListBookingsScopesClients(t *testing.T) {
	f := newBookingFixture()
	f.inquiry(t)
	f.bookings.add(&db_models.Booking{ClientID: uuid.New()})

	own, err := f.svc.ListBookings(context.Background(), f.client, 1, 20)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := f.svc.ListBookings(context.Background(), f.superAdm, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatusAuthorization(t *testing.T) {
	f := newBookingFixture()
	booking := f.inquiry(t)
	booking.AssignedAdminID = &f.admin.ID
	id := booking.ID.String()
	confirm := request_models.UpdateBookingStatusRequest{Status: "confirmed"}

	// The owning client can never update its booking
	err := f.svc.UpdateStatus(context.Background(), f.client, id, confirm)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	// An admin who is not assigned cannot update
	err = f.svc.UpdateStatus(context.Background(), f.otherAdm, id, confirm)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	// The assigned admin can
	require.NoError(t, f.svc.UpdateStatus(context.Background(), f.admin, id, confirm))
	assert.Equal(t, db_models.BookingStatusConfirmed, booking.Status)

	// A super admin can update regardless of assignment
	require.NoError(t, f.svc.UpdateStatus(context.Background(), f.superAdm, id,
		request_models.UpdateBookingStatusRequest{Status: "cleared"}))
	assert.Equal(t, db_models.BookingStatusCleared, booking.Status)
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	f := newBookingFixture()
	booking := f.inquiry(t)
	booking.AssignedAdminID = &f.admin.ID
	id := booking.ID.String()

	require.NoError(t, f.svc.UpdateStatus(context.Background(), f.admin, id,
		request_models.UpdateBookingStatusRequest{Status: "confirmed"}))

	// No transition moves backwards
	err := f.svc.UpdateStatus(context.Background(), f.admin, id,
		request_models.UpdateBookingStatusRequest{Status: "inquiry"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	err = f.svc.UpdateStatus(context.Background(), f.admin, id,
		request_models.UpdateBookingStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestConfirmationNotifiesAndMails(t *testing.T) {
	f := newBookingFixture()
	booking := f.inquiry(t)
	booking.AssignedAdminID = &f.admin.ID

	require.NoError(t, f.svc.UpdateStatus(context.Background(), f.admin, booking.ID.String(),
		request_models.UpdateBookingStatusRequest{Status: "confirmed"}))

	var confirmed bool
	for _, n := range f.notifs.byUser(f.client.ID) {
		if n.Type == db_models.NotifBookingConfirmed {
			confirmed = true
		}
	}
	assert.True(t, confirmed)
	assert.Equal(t, []string{"c@x.com"}, f.mail.confirmed)
}

func TestAssignAdminValidatesAssignee(t *testing.T) {
	f := newBookingFixture()
	booking := f.inquiry(t)
	id := booking.ID.String()

	// Clients cannot triage
	err := f.svc.AssignAdmin(context.Background(), f.client, id,
		request_models.AssignAdminRequest{AdminID: f.admin.ID.String()})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	// The assignee must hold an admin-level role
	err = f.svc.AssignAdmin(context.Background(), f.admin, id,
		request_models.AssignAdminRequest{AdminID: f.client.ID.String()})
	assert.ErrorIs(t, err, utils.ErrAssigneeNotAdmin)

	require.NoError(t, f.svc.AssignAdmin(context.Background(), f.admin, id,
		request_models.AssignAdminRequest{AdminID: f.otherAdm.ID.String()}))
	require.NotNil(t, booking.AssignedAdminID)
	assert.Equal(t, f.otherAdm.ID, *booking.AssignedAdminID)

	// The new assignee is notified
	notifs := f.notifs.byUser(f.otherAdm.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, db_models.NotifAssignment, notifs[0].Type)
}

func TestUpdateSpendOnlyInConfirmedPhase(t *testing.T) {
	f := newBookingFixture()
	booking := f.inquiry(t)
	booking.AssignedAdminID = &f.admin.ID
	id := booking.ID.String()

	spend := int64(125000)
	uploaded := true

	err := f.svc.UpdateSpend(context.Background(), f.admin, id,
		request_models.UpdateSpendRequest{TotalSpend: &spend})
	assert.ErrorIs(t, err, utils.ErrNotConfirmedPhase)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), f.admin, id,
		request_models.UpdateBookingStatusRequest{Status: "confirmed"}))

	require.NoError(t, f.svc.UpdateSpend(context.Background(), f.admin, id,
		request_models.UpdateSpendRequest{TotalSpend: &spend, ReceiptUploaded: &uploaded}))
	require.NotNil(t, booking.TotalSpend)
	assert.Equal(t, spend, *booking.TotalSpend)
	assert.True(t, booking.ReceiptUploaded)
	assert.False(t, booking.ReceiptApproved)
}
