package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequest represents a friend request between two users.
// Only one row may exist per unordered (sender, receiver) pair; a row in any
// status blocks a new request between the same two users. Friendship itself is
// derived: it is the existence of an Accepted row in either direction.
type FriendRequest struct {
	ID          uuid.UUID           `json:"id" db:"id"`
	SenderID    string              `json:"senderId" db:"sender_id"`
	ReceiverID  string              `json:"receiverId" db:"receiver_id"`
	Status      FriendRequestStatus `json:"status" db:"status"`
	CreatedAt   time.Time           `json:"createdAt" db:"created_at"`
	RespondedAt *time.Time          `json:"respondedAt,omitempty" db:"responded_at"`

	// Related entities
	Sender   *User `json:"sender,omitempty"`
	Receiver *User `json:"receiver,omitempty"`
}
