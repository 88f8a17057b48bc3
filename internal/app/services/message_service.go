package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
	"github.com/selim/campushub/internal/pkg/filestorage"
)

const (
	maxMessageContentLength = 500
	messageMediaFolder      = "messages"
)

// MessageService defines the interface for direct messaging.
// The friendship gate is enforced at the boundary; every operation here
// assumes the two parties are allowed to talk to each other.
type MessageService interface {
	SendMessage(ctx context.Context, senderID, receiverID string, req *dto.SendMessageRequest, media *multipart.FileHeader) (*dto.MessageResponse, error)
	GetConversation(ctx context.Context, userID1, userID2 string, skip, take int) ([]dto.MessageResponse, error)
	GetUnreadMessages(ctx context.Context, userID string) ([]dto.MessageResponse, error)
	MarkAsRead(ctx context.Context, id uuid.UUID, receiverID string) (bool, error)
	GetLastMessage(ctx context.Context, userID1, userID2 string) (*dto.MessageResponse, error)
	GetConversationList(ctx context.Context, userID string) ([]dto.ConversationPreviewResponse, error)
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageStore MessageStore
	userStore    UserStore
	fileStorage  filestorage.FileStorage
	logger       zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageStore MessageStore,
	userStore UserStore,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageStore: messageStore,
		userStore:    userStore,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// SendMessage validates and persists a direct message, uploading the media
// file first when one is attached
func (s *messageServiceImpl) SendMessage(ctx context.Context, senderID, receiverID string, req *dto.SendMessageRequest, media *multipart.FileHeader) (*dto.MessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" && media == nil {
		return nil, apperrors.NewValidationError("a message needs content or a media attachment")
	}
	if len(content) > maxMessageContentLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("message content exceeds %d characters", maxMessageContentLength))
	}

	receiver, err := s.userStore.FindByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}

	var mediaURL *string
	if media != nil {
		url, err := s.fileStorage.UploadFile(media, messageMediaFolder)
		if err != nil {
			s.logger.Error().Err(err).Str("senderID", senderID).Msg("Failed to upload message media")
			return nil, err
		}
		mediaURL = &url
	}

	message := &models.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		MediaURL:   mediaURL,
		SentAt:     time.Now().UTC(),
	}

	if err := s.messageStore.Create(ctx, message); err != nil {
		s.logger.Error().Err(err).
			Str("senderID", senderID).
			Str("receiverID", receiverID).
			Msg("Failed to create message")
		return nil, err
	}

	response := dto.ToMessageResponse(message)
	return &response, nil
}

// GetConversation retrieves the messages between two users in either
// direction, newest first
func (s *messageServiceImpl) GetConversation(ctx context.Context, userID1, userID2 string, skip, take int) ([]dto.MessageResponse, error) {
	messages, err := s.messageStore.GetConversation(ctx, userID1, userID2, skip, take)
	if err != nil {
		s.logger.Error().Err(err).
			Str("userID1", userID1).
			Str("userID2", userID2).
			Msg("Failed to retrieve conversation")
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, dto.ToMessageResponse(message))
	}

	return responses, nil
}

// GetUnreadMessages retrieves a user's unread incoming messages, newest first
func (s *messageServiceImpl) GetUnreadMessages(ctx context.Context, userID string) ([]dto.MessageResponse, error) {
	messages, err := s.messageStore.ListUnread(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to list unread messages")
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, dto.ToMessageResponse(message))
	}

	return responses, nil
}

// MarkAsRead flips a message to read on behalf of its receiver. Returns false
// when the message is absent or addressed to someone else.
func (s *messageServiceImpl) MarkAsRead(ctx context.Context, id uuid.UUID, receiverID string) (bool, error) {
	return s.messageStore.MarkRead(ctx, id, receiverID)
}

// GetLastMessage retrieves the most recent message between two users.
// Returns nil without error when the pair never messaged.
func (s *messageServiceImpl) GetLastMessage(ctx context.Context, userID1, userID2 string) (*dto.MessageResponse, error) {
	message, err := s.messageStore.GetLastMessage(ctx, userID1, userID2)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, nil
	}

	response := dto.ToMessageResponse(message)
	return &response, nil
}

// GetConversationList builds the conversation overview for a user: one entry
// per partner with the latest message and the unread count from them, ordered
// by last activity descending
func (s *messageServiceImpl) GetConversationList(ctx context.Context, userID string) ([]dto.ConversationPreviewResponse, error) {
	partnerIDs, err := s.messageStore.ListConversationPartners(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to list conversation partners")
		return nil, err
	}

	previews := make([]dto.ConversationPreviewResponse, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		partner, err := s.userStore.FindByID(ctx, partnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			continue
		}

		lastMessage, err := s.messageStore.GetLastMessage(ctx, userID, partnerID)
		if err != nil {
			return nil, err
		}

		unreadCount, err := s.messageStore.CountUnreadFrom(ctx, userID, partnerID)
		if err != nil {
			return nil, err
		}

		preview := dto.ConversationPreviewResponse{
			Partner:     *dto.ToUserBasicResponse(partner),
			UnreadCount: unreadCount,
		}
		if lastMessage != nil {
			response := dto.ToMessageResponse(lastMessage)
			preview.LastMessage = &response
		}
		previews = append(previews, preview)
	}

	sort.SliceStable(previews, func(i, j int) bool {
		left, right := previews[i].LastMessage, previews[j].LastMessage
		if left == nil || right == nil {
			return right == nil && left != nil
		}
		return left.SentAt.After(right.SentAt)
	})

	return previews, nil
}
