package services

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
	"github.com/selim/campushub/internal/pkg/filestorage"
)

const (
	maxBioLength       = 150
	profileMediaFolder = "profiles"
	profilePostCount   = 10
)

// UserService defines the interface for profile operations. User rows are
// created out of band for externally issued identities; this service only
// reads and updates them.
type UserService interface {
	GetUserByID(ctx context.Context, id string) (*dto.UserProfileResponse, error)
	GetUserProfile(ctx context.Context, id string) (*dto.UserProfileDetailResponse, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest, avatar *multipart.FileHeader) (*dto.UserProfileResponse, error)
	UpdateLastLogin(ctx context.Context, id string) error
	GenerateAvatar(firstName, lastName string) string
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userStore   UserStore
	postStore   PostStore
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore UserStore,
	postStore PostStore,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userStore:   userStore,
		postStore:   postStore,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetUserByID retrieves a user's profile
func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*dto.UserProfileResponse, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}

	response := dto.ToUserProfileResponse(user)
	return &response, nil
}

// GetUserProfile retrieves a user's profile together with their most recent
// posts for the profile page
func (s *userServiceImpl) GetUserProfile(ctx context.Context, id string) (*dto.UserProfileDetailResponse, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}

	posts, err := s.postStore.ListByAuthor(ctx, id, profilePostCount)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", id).Msg("Failed to retrieve profile posts")
		return nil, err
	}

	response := dto.UserProfileDetailResponse{
		UserProfileResponse: dto.ToUserProfileResponse(user),
		RecentPosts:         make([]dto.PostResponse, 0, len(posts)),
	}
	for _, post := range posts {
		response.RecentPosts = append(response.RecentPosts, dto.ToPostResponse(post))
	}

	return &response, nil
}

// UpdateProfile updates the caller's bio and, when a file is attached, their
// avatar
func (s *userServiceImpl) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest, avatar *multipart.FileHeader) (*dto.UserProfileResponse, error) {
	if req.Bio != nil && len(*req.Bio) > maxBioLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("bio exceeds %d characters", maxBioLength))
	}

	var avatarURL *string
	if avatar != nil {
		url, err := s.fileStorage.UploadFile(avatar, profileMediaFolder)
		if err != nil {
			s.logger.Error().Err(err).Str("userID", id).Msg("Failed to upload avatar")
			return nil, err
		}
		avatarURL = &url
	}

	updated, err := s.userStore.UpdateProfile(ctx, id, req.Bio, avatarURL)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}

	return s.GetUserByID(ctx, id)
}

// UpdateLastLogin stamps the user's last login time
func (s *userServiceImpl) UpdateLastLogin(ctx context.Context, id string) error {
	updated, err := s.userStore.UpdateLastLogin(ctx, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.NewResourceNotFoundError("user not found")
	}
	return nil
}

// GenerateAvatar builds a deterministic initials avatar as an SVG data URL.
// The background hue is derived from a hash of the full name, so the same
// name always yields the same color.
func (s *userServiceImpl) GenerateAvatar(firstName, lastName string) string {
	initials := ""
	if name := strings.TrimSpace(firstName); name != "" {
		initials += strings.ToUpper(name[:1])
	}
	if name := strings.TrimSpace(lastName); name != "" {
		initials += strings.ToUpper(name[:1])
	}
	if initials == "" {
		initials = "?"
	}

	sum := md5.Sum([]byte(firstName + lastName))
	hue := int(sum[0]) * 360 / 256

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="128" height="128">`+
			`<rect width="128" height="128" fill="hsl(%d, 60%%, 55%%)"/>`+
			`<text x="50%%" y="50%%" dy=".1em" fill="#fff" font-family="sans-serif" font-size="56" text-anchor="middle" dominant-baseline="middle">%s</text>`+
			`</svg>`,
		hue, initials,
	)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
