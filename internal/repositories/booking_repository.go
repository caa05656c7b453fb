package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venu/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindById(ctx context.Context, id string) (*db_models.Booking, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, page, pageSize int) ([]db_models.Booking, error)
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.Booking, error)

	// The update methods return the number of rows written. A scope that
	// matches nothing (stale status, wrong booking) writes zero rows and
	// returns no error, the same way a row filter silently drops a write.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.BookingStatus) (int64, error)
	AssignAdmin(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (int64, error)
	UpdateSpend(ctx context.Context, id uuid.UUID, spend *int64, uploaded, approved *bool) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindById(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	return bookings, err
}

// UpdateStatus writes the new status only while the row still holds the
// status the caller saw. Two admins racing on the same transition leave one
// of them with zero rows written.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.BookingStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) AssignAdmin(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("assigned_admin_id", adminID)
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) UpdateSpend(ctx context.Context, id uuid.UUID, spend *int64, uploaded, approved *bool) (int64, error) {
	updates := map[string]interface{}{}
	if spend != nil {
		updates["total_spend"] = *spend
	}
	if uploaded != nil {
		updates["receipt_uploaded"] = *uploaded
	}
	if approved != nil {
		updates["receipt_approved"] = *approved
	}
	if len(updates) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ? AND status = ?", id, db_models.BookingStatusConfirmed).
		Updates(updates)
	return res.RowsAffected, res.Error
}
