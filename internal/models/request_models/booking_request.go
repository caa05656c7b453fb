package request_models

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required,min=2,max=100"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"omitempty,max=20"`
	// RFC3339 (e.g. "2026-09-12T00:00:00+07:00")
	EventDate       string `json:"event_date" binding:"required"`
	TimeSlot        string `json:"time_slot" binding:"required"`
	Facility        string `json:"facility" binding:"required"`
	Package         string `json:"package" binding:"required"`
	SpecialRequests string `json:"special_requests" binding:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=inquiry confirmed cleared"`
}

type AssignAdminRequest struct {
	AdminID string `json:"admin_id" binding:"required,uuid4"`
}

type UpdateSpendRequest struct {
	// Minor units
	TotalSpend      *int64 `json:"total_spend" binding:"omitempty,gte=0"`
	ReceiptUploaded *bool  `json:"receipt_uploaded"`
	ReceiptApproved *bool  `json:"receipt_approved"`
}
