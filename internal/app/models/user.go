package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// The ID is issued by the external identity provider, not generated here.
type User struct {
	ID          string     `json:"id" db:"id" example:"8f14e45f-user"`                               // Externally issued user identifier
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`                         // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`                            // User's last name
	AvatarURL   *string    `json:"avatarUrl,omitempty" db:"avatar_url"`                              // URL of the user's avatar (nullable)
	Bio         *string    `json:"bio,omitempty" db:"bio" example:"CS sophomore"`                    // Short profile bio (nullable)
	Role        RoleType   `json:"role" db:"role" example:"Student"`                                 // User's role (Student, Teacher or Admin)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`         // Timestamp when the user was created
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                         // Timestamp of the last login (nullable)
}

// FullName returns the display name used in conversation previews
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
