package dto

import "RECIPEBOOK_BACK-END/internal/models"

// CreateUserRequest represents the request payload for user registration
type CreateUserRequest struct {
	FullName    string `json:"fullName" example:"Julia Child"`
	Username    string `json:"username" example:"julia"`
	LoginSecret string `json:"loginSecret" example:"bon-appetit"`
}

// CreateUserResponse represents the response after a user is created
type CreateUserResponse struct {
	Message string `json:"message" example:"User created"`
	UID     string `json:"uid" example:"6f1c2a5e-3b0d-4c53-9a51-7d1f8c0f4e2b"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username    string `json:"username" example:"julia"`
	LoginSecret string `json:"loginSecret" example:"bon-appetit"`
}

// LoginResponse carries the stored user without its password hash
type LoginResponse struct {
	Message  string            `json:"message" example:"Login successful"`
	UserData models.PublicUser `json:"userData"`
}
