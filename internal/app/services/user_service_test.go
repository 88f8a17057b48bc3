package services

import (
	"context"
	"encoding/base64"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

type userFixture struct {
	svc   UserService
	users *fakeUserStore
	posts *fakePostStore
}

func newUserFixture(users ...*models.User) *userFixture {
	f := &userFixture{
		users: newFakeUserStore(users...),
		posts: &fakePostStore{},
	}
	f.svc = NewUserService(f.users, f.posts, &fakeFileStorage{}, zerolog.Nop())
	return f
}

func TestGetUserByID_NotFound(t *testing.T) {
	f := newUserFixture()

	_, err := f.svc.GetUserByID(context.Background(), "ghost")

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestGetUserProfile_IncludesRecentPosts(t *testing.T) {
	f := newUserFixture(&models.User{ID: "u1", FirstName: "Ada", Role: models.RoleStudent})
	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < profilePostCount+2; i++ {
		require.NoError(t, f.posts.Create(ctx, &models.Post{
			ID: uuid.New(), AuthorID: "u1", Content: "p",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	// Another author's posts never show up on the profile
	require.NoError(t, f.posts.Create(ctx, &models.Post{ID: uuid.New(), AuthorID: "u2", CreatedAt: base}))

	profile, err := f.svc.GetUserProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Len(t, profile.RecentPosts, profilePostCount)
}

func TestUpdateProfile_BioTooLong(t *testing.T) {
	f := newUserFixture(&models.User{ID: "u1"})
	bio := strings.Repeat("b", maxBioLength+1)

	_, err := f.svc.UpdateProfile(context.Background(), "u1", &dto.UpdateProfileRequest{Bio: &bio}, nil)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	f := newUserFixture()
	bio := "hello"

	_, err := f.svc.UpdateProfile(context.Background(), "ghost", &dto.UpdateProfileRequest{Bio: &bio}, nil)

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestUpdateProfile_BioAndAvatar(t *testing.T) {
	f := newUserFixture(&models.User{ID: "u1", FirstName: "Ada"})
	bio := "CS sophomore"
	avatar := &multipart.FileHeader{Filename: "me.png"}

	profile, err := f.svc.UpdateProfile(context.Background(), "u1", &dto.UpdateProfileRequest{Bio: &bio}, avatar)

	require.NoError(t, err)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "CS sophomore", *profile.Bio)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, "/uploads/profiles/me.png", *profile.AvatarURL)
}

func TestUpdateProfile_KeepsAvatarWithoutUpload(t *testing.T) {
	existing := "/uploads/profiles/old.png"
	f := newUserFixture(&models.User{ID: "u1", AvatarURL: &existing})
	bio := "new bio"

	profile, err := f.svc.UpdateProfile(context.Background(), "u1", &dto.UpdateProfileRequest{Bio: &bio}, nil)

	require.NoError(t, err)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, existing, *profile.AvatarURL)
}

func TestUpdateLastLogin(t *testing.T) {
	user := &models.User{ID: "u1"}
	f := newUserFixture(user)

	require.NoError(t, f.svc.UpdateLastLogin(context.Background(), "u1"))
	assert.NotNil(t, user.LastLoginAt)

	err := f.svc.UpdateLastLogin(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestGenerateAvatar_DeterministicDataURL(t *testing.T) {
	f := newUserFixture()

	first := f.svc.GenerateAvatar("Ada", "Yilmaz")
	second := f.svc.GenerateAvatar("Ada", "Yilmaz")
	other := f.svc.GenerateAvatar("Kemal", "Demir")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "data:image/svg+xml;base64,"))
}

func TestGenerateAvatar_Initials(t *testing.T) {
	f := newUserFixture()

	decoded := decodeAvatar(t, f.svc.GenerateAvatar("ada", "yilmaz"))
	assert.Contains(t, decoded, ">AY</text>")

	decoded = decodeAvatar(t, f.svc.GenerateAvatar("", ""))
	assert.Contains(t, decoded, ">?</text>")
}

func decodeAvatar(t *testing.T, dataURL string) string {
	t.Helper()
	const prefix = "data:image/svg+xml;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	return string(raw)
}
