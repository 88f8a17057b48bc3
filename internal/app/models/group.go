package models

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a student group joinable by its unique code
type Group struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Memberships []*UserGroup `json:"memberships,omitempty"`
}

// UserGroup represents a user's membership in a group.
// The (group_id, user_id) pair is the composite primary key.
type UserGroup struct {
	GroupID  uuid.UUID `json:"groupId" db:"group_id"`
	UserID   string    `json:"userId" db:"user_id"`
	Role     GroupRole `json:"role" db:"role"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
