package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

const (
	maxGroupNameLength        = 50
	maxGroupCodeLength        = 20
	maxGroupDescriptionLength = 150
)

// GroupService defines the interface for group operations
type GroupService interface {
	CreateGroup(ctx context.Context, ownerID string, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	JoinGroup(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
	LeaveGroup(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
	GetGroupByCode(ctx context.Context, code string) (*dto.GroupDetailResponse, error)
	GetUserGroups(ctx context.Context, userID string) ([]dto.GroupResponse, error)
	GetGroupMembers(ctx context.Context, groupID uuid.UUID) ([]dto.GroupMemberResponse, error)
}

// groupServiceImpl implements GroupService
type groupServiceImpl struct {
	groupStore GroupStore
	logger     zerolog.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(groupStore GroupStore, logger zerolog.Logger) GroupService {
	return &groupServiceImpl{
		groupStore: groupStore,
		logger:     logger,
	}
}

// CreateGroup validates and persists a new group together with its Owner
// membership; the two rows commit in one transaction so no reader observes a
// group without its owner. A taken code surfaces as ErrConflict.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, ownerID string, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || code == "" {
		return nil, apperrors.NewValidationError("group name and code must not be empty")
	}
	if len(name) > maxGroupNameLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("group name exceeds %d characters", maxGroupNameLength))
	}
	if len(code) > maxGroupCodeLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("group code exceeds %d characters", maxGroupCodeLength))
	}
	if req.Description != nil && len(*req.Description) > maxGroupDescriptionLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("group description exceeds %d characters", maxGroupDescriptionLength))
	}

	now := time.Now().UTC()
	group := &models.Group{
		ID:          uuid.New(),
		Name:        name,
		Code:        code,
		Description: req.Description,
		CreatedAt:   now,
	}
	ownerMembership := &models.UserGroup{
		GroupID:  group.ID,
		UserID:   ownerID,
		Role:     models.GroupRoleOwner,
		JoinedAt: now,
	}

	if err := s.groupStore.CreateWithOwner(ctx, group, ownerMembership); err != nil {
		s.logger.Error().Err(err).
			Str("ownerID", ownerID).
			Str("code", code).
			Msg("Failed to create group")
		return nil, err
	}

	group.Memberships = []*models.UserGroup{ownerMembership}
	response := dto.ToGroupResponse(group)
	return &response, nil
}

// JoinGroup adds a Member row for the user. Returns false when the user is
// already a member.
func (s *groupServiceImpl) JoinGroup(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	group, err := s.groupStore.GetByID(ctx, groupID)
	if err != nil {
		return false, err
	}
	if group == nil {
		return false, apperrors.NewResourceNotFoundError("group not found")
	}

	membership := &models.UserGroup{
		GroupID:  groupID,
		UserID:   userID,
		Role:     models.GroupRoleMember,
		JoinedAt: time.Now().UTC(),
	}

	return s.groupStore.Join(ctx, membership)
}

// LeaveGroup removes the user's membership. Returns false when the user was
// not a member. Owners may leave their own group.
func (s *groupServiceImpl) LeaveGroup(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	return s.groupStore.Leave(ctx, groupID, userID)
}

// GetGroupByCode retrieves a group by its join code with members populated
func (s *groupServiceImpl) GetGroupByCode(ctx context.Context, code string) (*dto.GroupDetailResponse, error) {
	group, err := s.groupStore.GetByCode(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("Failed to retrieve group by code")
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NewResourceNotFoundError("group not found")
	}

	response := dto.ToGroupDetailResponse(group)
	return &response, nil
}

// GetUserGroups retrieves the groups a user belongs to
func (s *groupServiceImpl) GetUserGroups(ctx context.Context, userID string) ([]dto.GroupResponse, error) {
	groups, err := s.groupStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to list user groups")
		return nil, err
	}

	responses := make([]dto.GroupResponse, 0, len(groups))
	for _, group := range groups {
		memberships, err := s.groupStore.ListMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.Memberships = memberships
		responses = append(responses, dto.ToGroupResponse(group))
	}

	return responses, nil
}

// GetGroupMembers retrieves a group's memberships with member users populated
func (s *groupServiceImpl) GetGroupMembers(ctx context.Context, groupID uuid.UUID) ([]dto.GroupMemberResponse, error) {
	group, err := s.groupStore.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NewResourceNotFoundError("group not found")
	}

	memberships, err := s.groupStore.ListMembers(ctx, groupID)
	if err != nil {
		s.logger.Error().Err(err).Str("groupID", groupID.String()).Msg("Failed to list group members")
		return nil, err
	}

	responses := make([]dto.GroupMemberResponse, 0, len(memberships))
	for _, membership := range memberships {
		responses = append(responses, dto.GroupMemberResponse{
			Role:     string(membership.Role),
			JoinedAt: membership.JoinedAt,
			User:     dto.ToUserBasicResponse(membership.User),
		})
	}

	return responses, nil
}
