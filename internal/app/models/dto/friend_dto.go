package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// SendFriendRequestRequest represents data for sending a friend request
type SendFriendRequestRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
}

// --- Response DTOs ---

// FriendRequestResponse represents a friend request with its sender
type FriendRequestResponse struct {
	ID          uuid.UUID          `json:"id"`
	SenderID    string             `json:"senderId"`
	ReceiverID  string             `json:"receiverId"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	RespondedAt *time.Time         `json:"respondedAt,omitempty"`
	Sender      *UserBasicResponse `json:"sender,omitempty"`
}

// FriendRequestListResponse represents a user's pending incoming requests
type FriendRequestListResponse struct {
	Requests []FriendRequestResponse `json:"requests"`
}

// FriendListResponse represents a user's friends
type FriendListResponse struct {
	Friends []UserBasicResponse `json:"friends"`
}

// ToFriendRequestResponse transforms a models.FriendRequest to FriendRequestResponse
func ToFriendRequestResponse(request *models.FriendRequest) FriendRequestResponse {
	return FriendRequestResponse{
		ID:          request.ID,
		SenderID:    request.SenderID,
		ReceiverID:  request.ReceiverID,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		RespondedAt: request.RespondedAt,
		Sender:      ToUserBasicResponse(request.Sender),
	}
}
