package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/auth"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

const maxCommentContentLength = 200

// CommentService defines the interface for comment operations
type CommentService interface {
	CreateComment(ctx context.Context, postID uuid.UUID, authorID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetCommentsByPost(ctx context.Context, postID uuid.UUID, skip, take int) ([]dto.CommentResponse, error)
	DeleteComment(ctx context.Context, id uuid.UUID, requesterID string) (bool, error)
}

// commentServiceImpl implements CommentService
type commentServiceImpl struct {
	commentStore CommentStore
	postStore    PostStore
	userStore    UserStore
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentStore CommentStore,
	postStore PostStore,
	userStore UserStore,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) CommentService {
	return &commentServiceImpl{
		commentStore: commentStore,
		postStore:    postStore,
		userStore:    userStore,
		authzService: authzService,
		logger:       logger,
	}
}

// CreateComment validates and persists a comment on an existing post
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID uuid.UUID, authorID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("comment content must not be empty")
	}
	if len(content) > maxCommentContentLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("comment content exceeds %d characters", maxCommentContentLength))
	}

	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewResourceNotFoundError("post not found")
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentStore.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).
			Str("postID", postID.String()).
			Str("authorID", authorID).
			Msg("Failed to create comment")
		return nil, err
	}

	created, err := s.commentStore.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperrors.NewResourceNotFoundError("comment not found after creation")
	}

	response := dto.ToCommentResponse(created)
	return &response, nil
}

// GetCommentsByPost retrieves a page of a post's comments, newest first
func (s *commentServiceImpl) GetCommentsByPost(ctx context.Context, postID uuid.UUID, skip, take int) ([]dto.CommentResponse, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewResourceNotFoundError("post not found")
	}

	comments, err := s.commentStore.ListByPost(ctx, postID, skip, take)
	if err != nil {
		s.logger.Error().Err(err).Str("postID", postID.String()).Msg("Failed to retrieve comments")
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.ToCommentResponse(comment))
	}

	return responses, nil
}

// DeleteComment removes a comment when the requester is its author or a
// moderator. The requester's role is read from their user row on every call.
// Returns false without mutating when the comment is absent or the requester
// lacks permission.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, id uuid.UUID, requesterID string) (bool, error) {
	comment, err := s.commentStore.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}

	requester, err := s.userStore.FindByID(ctx, requesterID)
	if err != nil {
		return false, err
	}
	if requester == nil {
		return false, nil
	}

	if !s.authzService.CanDeleteComment(comment, requesterID, requester.Role) {
		s.logger.Debug().
			Str("commentID", id.String()).
			Str("requesterID", requesterID).
			Msg("Comment deletion denied")
		return false, nil
	}

	return s.commentStore.Delete(ctx, id)
}
