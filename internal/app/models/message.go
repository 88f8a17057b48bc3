package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a direct message between two users
type Message struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SenderID   string    `json:"senderId" db:"sender_id"`
	ReceiverID string    `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	MediaURL   *string   `json:"mediaUrl,omitempty" db:"media_url"`
	SentAt     time.Time `json:"sentAt" db:"sent_at"`
	IsRead     bool      `json:"isRead" db:"is_read"`

	// Related entities
	Sender   *User `json:"sender,omitempty"`
	Receiver *User `json:"receiver,omitempty"`
}
