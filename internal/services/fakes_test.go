package services

import (
	"context"

	"github.com/google/uuid"

	"venu/internal/models/db_models"
	"venu/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) add(a *db_models.Account) *db_models.Account {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.accounts[a.ID] = a
	return a
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.accounts[uid], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateProfile(ctx context.Context, id string, name, phone string) error {
	uid, _ := uuid.Parse(id)
	if a, ok := f.accounts[uid]; ok {
		if name != "" {
			a.Name = name
		}
		if phone != "" {
			a.Phone = phone
		}
	}
	return nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error {
	for _, a := range f.accounts {
		if a.Email == email {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}

func (f *fakeAccountRepo) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	var out []db_models.Account
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*db_models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*db_models.Booking)}
}

func (f *fakeBookingRepo) add(b *db_models.Booking) *db_models.Booking {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.bookings[b.ID] = b
	return b
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *db_models.Booking) error {
	f.add(booking)
	return nil
}

func (f *fakeBookingRepo) FindById(ctx context.Context, id string) (*db_models.Booking, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.bookings[uid], nil
}

func (f *fakeBookingRepo) ListByClient(ctx context.Context, clientID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.BookingStatus) (int64, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status != from {
		return 0, nil
	}
	b.Status = to
	return 1, nil
}

func (f *fakeBookingRepo) AssignAdmin(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (int64, error) {
	b, ok := f.bookings[id]
	if !ok {
		return 0, nil
	}
	b.AssignedAdminID = &adminID
	return 1, nil
}

func (f *fakeBookingRepo) UpdateSpend(ctx context.Context, id uuid.UUID, spend *int64, uploaded, approved *bool) (int64, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status != db_models.BookingStatusConfirmed {
		return 0, nil
	}
	if spend != nil {
		b.TotalSpend = spend
	}
	if uploaded != nil {
		b.ReceiptUploaded = *uploaded
	}
	if approved != nil {
		b.ReceiptApproved = *approved
	}
	return 1, nil
}

type fakeNotificationRepo struct {
	notifications map[uuid.UUID]*db_models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uuid.UUID]*db_models.Notification)}
}

func (f *fakeNotificationRepo) add(n *db_models.Notification) *db_models.Notification {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	f.notifications[n.ID] = n
	return n
}

func (f *fakeNotificationRepo) Insert(ctx context.Context, notification *db_models.Notification) error {
	f.add(notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, notif := range f.notifications {
		if notif.UserID == userID && !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	n, ok := f.notifications[id]
	if !ok || n.UserID != userID {
		return 0, nil
	}
	n.IsRead = true
	return 1, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var rows int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			rows++
		}
	}
	return rows, nil
}

func (f *fakeNotificationRepo) byUser(userID uuid.UUID) []*db_models.Notification {
	var out []*db_models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeStatsRepo struct {
	performance []repositories.AdminPerformanceRow
	byStatus    map[db_models.BookingStatus]int64
	total       int64
	unassigned  int64
}

func (f *fakeStatsRepo) AdminPerformance(ctx context.Context) ([]repositories.AdminPerformanceRow, error) {
	return f.performance, nil
}

func (f *fakeStatsRepo) CountBookingsByStatus(ctx context.Context, status db_models.BookingStatus) (int64, error) {
	return f.byStatus[status], nil
}

func (f *fakeStatsRepo) CountTotalBookings(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeStatsRepo) CountUnassignedInquiries(ctx context.Context) (int64, error) {
	return f.unassigned, nil
}

type fakeMailService struct {
	resets    []string
	confirmed []string
}

func (f *fakeMailService) SendPasswordReset(email, token string) error {
	f.resets = append(f.resets, email)
	return nil
}

func (f *fakeMailService) SendBookingConfirmed(email, facility, eventDate string) error {
	f.confirmed = append(f.confirmed, email)
	return nil
}
