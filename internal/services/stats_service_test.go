package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venu/internal/models/db_models"
	"venu/internal/repositories"
)

func TestConversionRate(t *testing.T) {
	// 3 of 4 assigned bookings brought to confirmed-or-cleared
	assert.Equal(t, 75.0, ConversionRate(3, 4))
	// No bookings ever assigned: 0, not NaN
	assert.Equal(t, 0.0, ConversionRate(0, 0))
	assert.Equal(t, 100.0, ConversionRate(5, 5))
	// One decimal place
	assert.Equal(t, 66.7, ConversionRate(2, 3))
	assert.Equal(t, 33.3, ConversionRate(1, 3))
}

func TestAvgResponseHours(t *testing.T) {
	// Two bookings answered in 2h and 4h
	created := []int64{1000, 5000}
	updated := []int64{1000 + 2*3600, 5000 + 4*3600}
	assert.Equal(t, 3.0, AvgResponseHours(created, updated))

	assert.Equal(t, 0.0, AvgResponseHours(nil, nil))
}

func TestBuildDashboard(t *testing.T) {
	repo := &fakeStatsRepo{
		performance: []repositories.AdminPerformanceRow{
			{AdminID: "a1", AdminName: "Ann", InquiriesAssigned: 1, ConfirmedBookings: 3, ConversionRate: 75.0, AvgResponseTime: 2.5},
			{AdminID: "a2", AdminName: "Ben"},
		},
		byStatus: map[db_models.BookingStatus]int64{
			db_models.BookingStatusInquiry:   4,
			db_models.BookingStatusConfirmed: 2,
			db_models.BookingStatusCleared:   1,
		},
		total:      7,
		unassigned: 3,
	}
	svc := NewStatsService(repo)

	report, err := svc.BuildDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), report.KPIs.TotalBookings)
	assert.Equal(t, int64(4), report.KPIs.OpenInquiries)
	assert.Equal(t, int64(3), report.KPIs.UnassignedInquiries)
	require.Len(t, report.AdminPerformance, 2)
	assert.Equal(t, 75.0, report.AdminPerformance[0].ConversionRate)

	// An admin with nothing assigned reports zeros, not nulls
	assert.Equal(t, 0.0, report.AdminPerformance[1].ConversionRate)
	assert.Equal(t, 0.0, report.AdminPerformance[1].AvgResponseTime)
}
