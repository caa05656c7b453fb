package response_models

// AdminPerformance is one row of the per-admin conversion aggregate.
type AdminPerformance struct {
	AdminID           string  `json:"admin_id"`
	AdminName         string  `json:"admin_name"`
	AdminColor        string  `json:"admin_color,omitempty"`
	InquiriesAssigned int64   `json:"inquiries_assigned"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	// confirmed-or-cleared / total ever assigned * 100, one decimal place
	ConversionRate float64 `json:"conversion_rate"`
	// mean (last update - creation) over assigned bookings, in hours
	AvgResponseTime float64 `json:"avg_response_time"`
}

type BookingKPIs struct {
	TotalBookings       int64 `json:"total_bookings"`
	OpenInquiries       int64 `json:"open_inquiries"`
	ConfirmedBookings   int64 `json:"confirmed_bookings"`
	ClearedBookings     int64 `json:"cleared_bookings"`
	UnassignedInquiries int64 `json:"unassigned_inquiries"`
}

type DashboardReport struct {
	KPIs             BookingKPIs        `json:"kpis"`
	AdminPerformance []AdminPerformance `json:"admin_performance"`
}
