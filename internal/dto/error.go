package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid credentials"`
	Code  string `json:"code" example:"invalid_credentials"`
}
