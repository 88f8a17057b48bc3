package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// SendMessageRequest represents data for sending a direct message.
// Content may be empty when media is attached, so emptiness is checked in
// the service rather than by binding.
type SendMessageRequest struct {
	Content string `json:"content" form:"content" binding:"max=500"`
}

// GetConversationRequest represents paging parameters for a conversation
type GetConversationRequest struct {
	Skip int `form:"skip,default=0" binding:"min=0"`
	Take int `form:"take,default=50" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// MessageResponse represents a direct message with both parties
type MessageResponse struct {
	ID         uuid.UUID          `json:"id"`
	SenderID   string             `json:"senderId"`
	ReceiverID string             `json:"receiverId"`
	Content    string             `json:"content"`
	MediaURL   *string            `json:"mediaUrl,omitempty"`
	SentAt     time.Time          `json:"sentAt"`
	IsRead     bool               `json:"isRead"`
	Sender     *UserBasicResponse `json:"sender,omitempty"`
	Receiver   *UserBasicResponse `json:"receiver,omitempty"`
}

// ConversationResponse represents a page of messages between two users
type ConversationResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// ConversationPreviewResponse represents one entry in the conversation list:
// the other party, the most recent message, and the unread count from them
type ConversationPreviewResponse struct {
	Partner     UserBasicResponse `json:"partner"`
	LastMessage *MessageResponse  `json:"lastMessage,omitempty"`
	UnreadCount int               `json:"unreadCount"`
}

// ConversationListResponse represents a user's conversation list
type ConversationListResponse struct {
	Conversations []ConversationPreviewResponse `json:"conversations"`
}

// ToMessageResponse transforms a models.Message to MessageResponse
func ToMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		MediaURL:   message.MediaURL,
		SentAt:     message.SentAt,
		IsRead:     message.IsRead,
		Sender:     ToUserBasicResponse(message.Sender),
		Receiver:   ToUserBasicResponse(message.Receiver),
	}
}
