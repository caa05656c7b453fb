package response_models

type AccountLoginResponse struct {
	Token       string `json:"token"`
	DefaultView string `json:"default_view"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
	Color string `json:"color,omitempty"`
}
