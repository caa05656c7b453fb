package services

import (
	"context"
	"math"

	"venu/internal/models/db_models"
	"venu/internal/models/response_models"
	"venu/internal/repositories"
	"venu/pkg/utils"
)

type StatsServiceInterface interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error)
	AdminPerformance(ctx context.Context) ([]response_models.AdminPerformance, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo}
}

// ConversionRate is confirmed-or-cleared over total ever assigned, as a
// percentage rounded to one decimal place. Zero assignments yield 0.
func ConversionRate(converted, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(converted)*1000.0/float64(total)) / 10.0
}

// AvgResponseHours is the mean of (updatedAt - createdAt) in hours over the
// given unix-second pairs. No pairs yield 0.
func AvgResponseHours(createdAt, updatedAt []int64) float64 {
	if len(createdAt) == 0 || len(createdAt) != len(updatedAt) {
		return 0
	}
	var total float64
	for i := range createdAt {
		total += float64(updatedAt[i]-createdAt[i]) / 3600.0
	}
	return total / float64(len(createdAt))
}

func (s *StatsService) AdminPerformance(ctx context.Context) ([]response_models.AdminPerformance, error) {
	rows, err := s.statsRepo.AdminPerformance(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	performances := make([]response_models.AdminPerformance, 0, len(rows))
	for _, r := range rows {
		performances = append(performances, response_models.AdminPerformance{
			AdminID:           r.AdminID,
			AdminName:         r.AdminName,
			AdminColor:        r.AdminColor,
			InquiriesAssigned: r.InquiriesAssigned,
			ConfirmedBookings: r.ConfirmedBookings,
			ConversionRate:    r.ConversionRate,
			AvgResponseTime:   r.AvgResponseTime,
		})
	}
	return performances, nil
}

func (s *StatsService) BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error) {
	total, err := s.statsRepo.CountTotalBookings(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	open, err := s.statsRepo.CountBookingsByStatus(ctx, db_models.BookingStatusInquiry)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	confirmed, err := s.statsRepo.CountBookingsByStatus(ctx, db_models.BookingStatusConfirmed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	cleared, err := s.statsRepo.CountBookingsByStatus(ctx, db_models.BookingStatusCleared)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	unassigned, err := s.statsRepo.CountUnassignedInquiries(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	performances, err := s.AdminPerformance(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.DashboardReport{
		KPIs: response_models.BookingKPIs{
			TotalBookings:       total,
			OpenInquiries:       open,
			ConfirmedBookings:   confirmed,
			ClearedBookings:     cleared,
			UnassignedInquiries: unassigned,
		},
		AdminPerformance: performances,
	}, nil
}
