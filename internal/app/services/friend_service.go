package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

// maxFriendListSize caps the derived friend list
const maxFriendListSize = 20

// FriendService defines the interface for the friend request lifecycle and
// the derived friendship relation
type FriendService interface {
	SendRequest(ctx context.Context, senderID, receiverID string) (bool, error)
	AcceptRequest(ctx context.Context, id uuid.UUID) (bool, error)
	DeclineRequest(ctx context.Context, id uuid.UUID) (bool, error)
	GetFriends(ctx context.Context, userID string) ([]dto.UserBasicResponse, error)
	GetPendingRequests(ctx context.Context, userID string) ([]dto.FriendRequestResponse, error)
	AreFriends(ctx context.Context, userID1, userID2 string) (bool, error)
}

// friendServiceImpl implements FriendService
type friendServiceImpl struct {
	friendRequestStore FriendRequestStore
	userStore          UserStore
	logger             zerolog.Logger
}

// NewFriendService creates a new FriendService
func NewFriendService(
	friendRequestStore FriendRequestStore,
	userStore UserStore,
	logger zerolog.Logger,
) FriendService {
	return &friendServiceImpl{
		friendRequestStore: friendRequestStore,
		userStore:          userStore,
		logger:             logger,
	}
}

// SendRequest inserts a Pending request between the two users. Returns false
// when the sender targets themselves or any request already exists for the
// pair in either direction, regardless of its status.
func (s *friendServiceImpl) SendRequest(ctx context.Context, senderID, receiverID string) (bool, error) {
	if senderID == receiverID {
		return false, nil
	}

	receiver, err := s.userStore.FindByID(ctx, receiverID)
	if err != nil {
		return false, err
	}
	if receiver == nil {
		return false, apperrors.NewResourceNotFoundError("user not found")
	}

	request := &models.FriendRequest{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestPending,
		CreatedAt:  time.Now().UTC(),
	}

	inserted, err := s.friendRequestStore.Insert(ctx, request)
	if err != nil {
		s.logger.Error().Err(err).
			Str("senderID", senderID).
			Str("receiverID", receiverID).
			Msg("Failed to insert friend request")
		return false, err
	}

	return inserted, nil
}

// AcceptRequest moves a Pending request to Accepted. Returns false when the
// request is absent or already responded to; Accepted and Declined are
// terminal.
func (s *friendServiceImpl) AcceptRequest(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.friendRequestStore.UpdateStatus(ctx, id, models.FriendRequestAccepted)
}

// DeclineRequest moves a Pending request to Declined. Returns false when the
// request is absent or already responded to.
func (s *friendServiceImpl) DeclineRequest(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.friendRequestStore.UpdateStatus(ctx, id, models.FriendRequestDeclined)
}

// GetFriends materializes the derived friendship set for a user, capped at
// twenty entries with no ordering guarantee beyond the cap
func (s *friendServiceImpl) GetFriends(ctx context.Context, userID string) ([]dto.UserBasicResponse, error) {
	friends, err := s.friendRequestStore.ListFriends(ctx, userID, maxFriendListSize)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to list friends")
		return nil, err
	}

	responses := make([]dto.UserBasicResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, *dto.ToUserBasicResponse(friend))
	}

	return responses, nil
}

// GetPendingRequests retrieves the Pending requests addressed to a user,
// newest first, with senders populated
func (s *friendServiceImpl) GetPendingRequests(ctx context.Context, userID string) ([]dto.FriendRequestResponse, error) {
	requests, err := s.friendRequestStore.ListPendingForReceiver(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to list pending friend requests")
		return nil, err
	}

	responses := make([]dto.FriendRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.ToFriendRequestResponse(request))
	}

	return responses, nil
}

// AreFriends reports the derived symmetric friendship predicate
func (s *friendServiceImpl) AreFriends(ctx context.Context, userID1, userID2 string) (bool, error) {
	return s.friendRequestStore.AreFriends(ctx, userID1, userID2)
}
