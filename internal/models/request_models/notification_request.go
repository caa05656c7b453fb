package request_models

type CreateNotificationRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid4"`
	Type      string `json:"type" binding:"required,oneof=booking_inquiry booking_confirmed booking_cleared assignment"`
	Title     string `json:"title" binding:"required,max=200"`
	Message   string `json:"message" binding:"omitempty,max=2000"`
	BookingID string `json:"booking_id" binding:"omitempty,uuid4"`
}
