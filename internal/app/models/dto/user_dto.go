package dto

import (
	"time"

	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// UpdateProfileRequest represents data for updating the caller's profile.
// The avatar image, when present, travels as a multipart file alongside
// this form.
type UpdateProfileRequest struct {
	Bio *string `json:"bio" form:"bio" binding:"omitempty,max=150"`
}

// --- Response DTOs ---

// UserBasicResponse represents a user with basic information
type UserBasicResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// UserProfileResponse represents a user's full profile
type UserProfileResponse struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	Bio         *string    `json:"bio,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// UserProfileDetailResponse extends the profile with the user's recent posts
type UserProfileDetailResponse struct {
	UserProfileResponse
	RecentPosts []PostResponse `json:"recentPosts"`
}

// ToUserBasicResponse transforms a models.User to UserBasicResponse
func ToUserBasicResponse(user *models.User) *UserBasicResponse {
	if user == nil {
		return nil
	}
	return &UserBasicResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
	}
}

// ToUserProfileResponse transforms a models.User to UserProfileResponse
func ToUserProfileResponse(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		AvatarURL:   user.AvatarURL,
		Bio:         user.Bio,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}
