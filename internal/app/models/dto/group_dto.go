package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// CreateGroupRequest represents data for creating a new group
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Code        string  `json:"code" binding:"required,max=20"`
	Description *string `json:"description" binding:"omitempty,max=150"`
}

// JoinGroupRequest represents data for joining a group by its code
type JoinGroupRequest struct {
	Code string `json:"code" binding:"required"`
}

// --- Response DTOs ---

// GroupResponse represents a group with basic information
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	MemberCount int       `json:"memberCount"`
}

// GroupDetailResponse extends GroupResponse with the member list
type GroupDetailResponse struct {
	GroupResponse
	Members []GroupMemberResponse `json:"members"`
}

// GroupMemberResponse represents one membership in a group
type GroupMemberResponse struct {
	Role     string             `json:"role"`
	JoinedAt time.Time          `json:"joinedAt"`
	User     *UserBasicResponse `json:"user,omitempty"`
}

// GroupListResponse represents the groups a user belongs to
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse transforms a models.Group to GroupResponse
func ToGroupResponse(group *models.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Code:        group.Code,
		Description: group.Description,
		CreatedAt:   group.CreatedAt,
		MemberCount: len(group.Memberships),
	}
}

// ToGroupDetailResponse transforms a models.Group to GroupDetailResponse
func ToGroupDetailResponse(group *models.Group) GroupDetailResponse {
	response := GroupDetailResponse{
		GroupResponse: ToGroupResponse(group),
		Members:       make([]GroupMemberResponse, 0, len(group.Memberships)),
	}

	for _, membership := range group.Memberships {
		response.Members = append(response.Members, GroupMemberResponse{
			Role:     string(membership.Role),
			JoinedAt: membership.JoinedAt,
			User:     ToUserBasicResponse(membership.User),
		})
	}

	return response
}
