package repositories

import (
	"context"

	"gorm.io/gorm"

	"venu/internal/models/db_models"
)

type StatsRepository interface {
	// AdminPerformance runs the privileged per-admin conversion aggregate.
	// One grouped query over all admins' bookings, no row filter.
	AdminPerformance(ctx context.Context) ([]AdminPerformanceRow, error)

	CountBookingsByStatus(ctx context.Context, status db_models.BookingStatus) (int64, error)
	CountTotalBookings(ctx context.Context) (int64, error)
	CountUnassignedInquiries(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// ---------- Row helpers ----------
type AdminPerformanceRow struct {
	AdminID           string  `gorm:"column:admin_id"`
	AdminName         string  `gorm:"column:admin_name"`
	AdminColor        string  `gorm:"column:admin_color"`
	InquiriesAssigned int64   `gorm:"column:inquiries_assigned"`
	ConfirmedBookings int64   `gorm:"column:confirmed_bookings"`
	ConversionRate    float64 `gorm:"column:conversion_rate"`
	AvgResponseTime   float64 `gorm:"column:avg_response_time"`
}

func (r *statsRepository) AdminPerformance(ctx context.Context) ([]AdminPerformanceRow, error) {
	var rows []AdminPerformanceRow
	// created_at/updated_at are unix seconds, so the response time in hours
	// is a plain subtraction over 3600.
	err := r.db.WithContext(ctx).
		Table("accounts a").
		Select(`
			a.id AS admin_id,
			a.name AS admin_name,
			a.color AS admin_color,
			COUNT(b.id) FILTER (WHERE b.status = 'inquiry') AS inquiries_assigned,
			COUNT(b.id) FILTER (WHERE b.status IN ('confirmed', 'cleared')) AS confirmed_bookings,
			CASE
				WHEN COUNT(b.id) = 0 THEN 0
				ELSE ROUND(COUNT(b.id) FILTER (WHERE b.status IN ('confirmed', 'cleared'))::numeric * 100.0 / COUNT(b.id), 1)
			END AS conversion_rate,
			COALESCE(AVG((b.updated_at - b.created_at) / 3600.0), 0) AS avg_response_time`).
		Joins("LEFT JOIN bookings b ON b.assigned_admin_id = a.id AND b.deleted_at IS NULL").
		Where("a.role = ?", db_models.RoleAdmin).
		Where("a.deleted_at IS NULL").
		Group("a.id, a.name, a.color").
		Order("a.name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *statsRepository) CountBookingsByStatus(ctx context.Context, status db_models.BookingStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountTotalBookings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Booking{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountUnassignedInquiries(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("status = ? AND assigned_admin_id IS NULL", db_models.BookingStatusInquiry).
		Count(&n).Error
	return n, err
}
