package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/auth"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
	"github.com/selim/campushub/internal/pkg/filestorage"
	"github.com/selim/campushub/internal/pkg/helpers"
)

const (
	maxPostContentLength = 2000
	postMediaFolder      = "posts"
)

// PostService defines the interface for post operations
type PostService interface {
	CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest, media *multipart.FileHeader) (*dto.PostResponse, error)
	GetFeed(ctx context.Context, page, pageSize int) (*dto.PostListResponse, error)
	GetPostsByUser(ctx context.Context, userID string, count int) ([]dto.PostResponse, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*dto.PostDetailResponse, error)
	DeletePost(ctx context.Context, id uuid.UUID, requesterID string) (bool, error)
	LikePost(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	UnlikePost(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	HasLiked(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	LikeCount(ctx context.Context, postID uuid.UUID) (int, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postStore    PostStore
	likeStore    LikeStore
	userStore    UserStore
	fileStorage  filestorage.FileStorage
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postStore PostStore,
	likeStore LikeStore,
	userStore UserStore,
	fileStorage filestorage.FileStorage,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postStore:    postStore,
		likeStore:    likeStore,
		userStore:    userStore,
		fileStorage:  fileStorage,
		authzService: authzService,
		logger:       logger,
	}
}

// CreatePost validates and persists a new post, uploading the media file
// first when one is attached
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest, media *multipart.FileHeader) (*dto.PostResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" && media == nil {
		return nil, apperrors.NewValidationError("a post needs content or a media attachment")
	}
	if len(content) > maxPostContentLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("post content exceeds %d characters", maxPostContentLength))
	}

	var mediaURL *string
	if media != nil {
		url, err := s.fileStorage.UploadFile(media, postMediaFolder)
		if err != nil {
			s.logger.Error().Err(err).Str("authorID", authorID).Msg("Failed to upload post media")
			return nil, err
		}
		mediaURL = &url
	}

	post := &models.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   content,
		MediaURL:  mediaURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("authorID", authorID).Msg("Failed to create post")
		return nil, err
	}

	created, err := s.postStore.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperrors.NewResourceNotFoundError("post not found after creation")
	}

	response := dto.ToPostResponse(created)
	return &response, nil
}

// GetFeed retrieves the global feed page, newest first
func (s *postServiceImpl) GetFeed(ctx context.Context, page, pageSize int) (*dto.PostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	posts, err := s.postStore.ListFeed(ctx, offset, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Msg("Failed to retrieve feed")
		return nil, err
	}

	total, err := s.postStore.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.ToPostResponse(post))
	}

	return &dto.PostListResponse{
		Posts:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetPostsByUser retrieves one author's posts, newest first, capped at count
func (s *postServiceImpl) GetPostsByUser(ctx context.Context, userID string, count int) ([]dto.PostResponse, error) {
	posts, err := s.postStore.ListByAuthor(ctx, userID, count)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to retrieve user posts")
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.ToPostResponse(post))
	}

	return responses, nil
}

// GetPostByID retrieves a single post with comments and likers
func (s *postServiceImpl) GetPostByID(ctx context.Context, id uuid.UUID) (*dto.PostDetailResponse, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewResourceNotFoundError("post not found")
	}

	response := dto.ToPostDetailResponse(post)
	return &response, nil
}

// DeletePost removes a post when the requester is its author or a moderator.
// The requester's role is read from their user row on every call, so a role
// change takes effect on the next request. Returns false without mutating when
// the post is absent or the requester lacks permission.
func (s *postServiceImpl) DeletePost(ctx context.Context, id uuid.UUID, requesterID string) (bool, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}

	requester, err := s.userStore.FindByID(ctx, requesterID)
	if err != nil {
		return false, err
	}
	if requester == nil {
		return false, nil
	}

	if !s.authzService.CanDeletePost(post, requesterID, requester.Role) {
		s.logger.Debug().
			Str("postID", id.String()).
			Str("requesterID", requesterID).
			Msg("Post deletion denied")
		return false, nil
	}

	return s.postStore.Delete(ctx, id)
}

// LikePost records a like. Returns false when the user already likes the post.
func (s *postServiceImpl) LikePost(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, apperrors.NewResourceNotFoundError("post not found")
	}

	like := &models.Like{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	return s.likeStore.Insert(ctx, like)
}

// UnlikePost removes a like. Returns false when no like existed.
func (s *postServiceImpl) UnlikePost(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	return s.likeStore.Delete(ctx, postID, userID)
}

// HasLiked reports whether the user likes the post
func (s *postServiceImpl) HasLiked(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	return s.likeStore.Exists(ctx, postID, userID)
}

// LikeCount returns the number of likes on the post
func (s *postServiceImpl) LikeCount(ctx context.Context, postID uuid.UUID) (int, error) {
	return s.likeStore.CountByPost(ctx, postID)
}
