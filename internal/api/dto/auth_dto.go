package dto

import "time"

// LoginRequest payload for login.
type LoginRequest struct {
	Login string `json:"login"`
	PIN   string `json:"pin"`
}

// ProvisionUserRequest payload for creating users.
type ProvisionUserRequest struct {
	Login string `json:"login"`
	PIN   string `json:"pin"`
	Role  string `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
