package response_models

type BookingResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	ClientName      string  `json:"client_name"`
	ClientEmail     string  `json:"client_email"`
	ClientPhone     string  `json:"client_phone,omitempty"`
	EventDate       string  `json:"event_date"`
	TimeSlot        string  `json:"time_slot"`
	Facility        string  `json:"facility"`
	Package         string  `json:"package"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	AssignedAdminID *string `json:"assigned_admin_id,omitempty"`
	TotalSpend      *int64  `json:"total_spend,omitempty"`
	ReceiptUploaded bool    `json:"receipt_uploaded"`
	ReceiptApproved bool    `json:"receipt_approved"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message,omitempty"`
	IsRead    bool    `json:"is_read"`
	BookingID *string `json:"booking_id,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int64                  `json:"unread"`
}
