package dto

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	PhoneNumber string          `json:"phone_number"`
	Email       *string         `json:"email"`
	Password    string          `json:"password"`
	Role        domain.UserRole `json:"role"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserActivationRequest payload for enabling/disabling an account.
type UserActivationRequest struct {
	Active bool `json:"active"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse mirrors an account without credentials.
type UserResponse struct {
	ID          string          `json:"id"`
	PhoneNumber string          `json:"phone_number"`
	Email       *string         `json:"email"`
	Role        domain.UserRole `json:"role"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}
