// Package dto provides data transfer objects for the user HTTP layer.
package dto

import "time"

// AuthResponse represents the API response for registration and login.
// It carries the freshly issued token alongside the account identity.
type AuthResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// UserResponse represents the API response for account information.
// It excludes the hashed password and provides a clean external
// representation of the user domain model.
type UserResponse struct {
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Industry  string    `json:"industry,omitempty"`
	UserRole  string    `json:"user_role,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
