package domain

import "time"

// UserRole enumerates account roles.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleEmployee  UserRole = "employee"
	RoleJobSeeker UserRole = "job_seeker"
	RoleJobOffer  UserRole = "job_offer"
)

// ValidRole reports whether role is a recognized account role.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleJobSeeker, RoleJobOffer:
		return true
	}
	return false
}

// User is the domain model for all portal accounts. The phone number is the
// login identifier; email is optional.
type User struct {
	ID           string
	PhoneNumber  string
	Email        *string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
