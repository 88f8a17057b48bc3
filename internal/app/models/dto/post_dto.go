package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// CreatePostRequest represents data for creating a new post.
// A media image, when present, travels as a multipart file alongside this
// form. Content may be empty when media is attached, so emptiness is checked
// in the service rather than by binding.
type CreatePostRequest struct {
	Content string `json:"content" form:"content" binding:"max=2000"`
}

// --- Response DTOs ---

// PostResponse represents a post with counts for feed display
type PostResponse struct {
	ID           uuid.UUID          `json:"id"`
	Content      string             `json:"content"`
	MediaURL     *string            `json:"mediaUrl,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	Edited       bool               `json:"edited"`
	Author       *UserBasicResponse `json:"author,omitempty"`
	LikeCount    int                `json:"likeCount"`
	CommentCount int                `json:"commentCount"`
}

// PostDetailResponse extends PostResponse with full comments and liker ids
type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
	LikedBy  []string          `json:"likedBy"`
}

// PostListResponse represents a paginated page of posts
type PostListResponse struct {
	Posts          []PostResponse `json:"posts"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// ToPostResponse transforms a models.Post to PostResponse
func ToPostResponse(post *models.Post) PostResponse {
	return PostResponse{
		ID:           post.ID,
		Content:      post.Content,
		MediaURL:     post.MediaURL,
		CreatedAt:    post.CreatedAt,
		Edited:       post.Edited,
		Author:       ToUserBasicResponse(post.Author),
		LikeCount:    len(post.Likes),
		CommentCount: len(post.Comments),
	}
}

// ToPostDetailResponse transforms a models.Post to PostDetailResponse
func ToPostDetailResponse(post *models.Post) PostDetailResponse {
	response := PostDetailResponse{
		PostResponse: ToPostResponse(post),
		Comments:     make([]CommentResponse, 0, len(post.Comments)),
		LikedBy:      make([]string, 0, len(post.Likes)),
	}

	for _, comment := range post.Comments {
		response.Comments = append(response.Comments, ToCommentResponse(comment))
	}
	for _, like := range post.Likes {
		response.LikedBy = append(response.LikedBy, like.UserID)
	}

	return response
}
