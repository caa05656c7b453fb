package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	// Optional: falls back to the local part of the email
	DisplayName string `json:"display_name" binding:"omitempty,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	// Optional provisioning metadata: defaults to client
	Role string `json:"role" binding:"omitempty,oneof=client admin super_admin"`
}

type UpdateProfileRequest struct {
	// Role changes go through provisioning, never this request
	Name  string `json:"name" binding:"omitempty,min=2,max=50"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
