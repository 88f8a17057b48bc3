package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// CreateCommentRequest represents data for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// GetCommentsRequest represents paging parameters for a post's comments
type GetCommentsRequest struct {
	Skip int `form:"skip,default=0" binding:"min=0"`
	Take int `form:"take,default=20" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// CommentResponse represents a comment with its author
type CommentResponse struct {
	ID        uuid.UUID          `json:"id"`
	PostID    uuid.UUID          `json:"postId"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"createdAt"`
	Author    *UserBasicResponse `json:"author,omitempty"`
}

// CommentListResponse represents a page of a post's comments
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// ToCommentResponse transforms a models.Comment to CommentResponse
func ToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author:    ToUserBasicResponse(comment.Author),
	}
}
