package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/campushub/internal/app/auth"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

type postFixture struct {
	svc     PostService
	posts   *fakePostStore
	likes   *fakeLikeStore
	users   *fakeUserStore
	storage *fakeFileStorage
}

func newPostFixture(users ...*models.User) *postFixture {
	f := &postFixture{
		posts:   &fakePostStore{},
		likes:   &fakeLikeStore{},
		users:   newFakeUserStore(users...),
		storage: &fakeFileStorage{},
	}
	f.svc = NewPostService(f.posts, f.likes, f.users, f.storage, auth.NewAuthorizationService(), zerolog.Nop())
	return f
}

func (f *postFixture) seedPost(t *testing.T, authorID string) *models.Post {
	t.Helper()
	post := &models.Post{ID: uuid.New(), AuthorID: authorID, Content: "hello", CreatedAt: time.Now().UTC()}
	require.NoError(t, f.posts.Create(context.Background(), post))
	return post
}

func TestCreatePost_EmptyWithoutMedia(t *testing.T) {
	f := newPostFixture()

	_, err := f.svc.CreatePost(context.Background(), "u1", &dto.CreatePostRequest{Content: "   "}, nil)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreatePost_ContentTooLong(t *testing.T) {
	f := newPostFixture()

	req := &dto.CreatePostRequest{Content: strings.Repeat("a", maxPostContentLength+1)}
	_, err := f.svc.CreatePost(context.Background(), "u1", req, nil)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreatePost_EmptyContentAllowedWithMedia(t *testing.T) {
	f := newPostFixture()
	media := &multipart.FileHeader{Filename: "photo.png"}

	post, err := f.svc.CreatePost(context.Background(), "u1", &dto.CreatePostRequest{}, media)

	require.NoError(t, err)
	require.NotNil(t, post.MediaURL)
	assert.Equal(t, "/uploads/posts/photo.png", *post.MediaURL)
	assert.Empty(t, post.Content)
}

func TestCreatePost_TrimsContent(t *testing.T) {
	f := newPostFixture()

	post, err := f.svc.CreatePost(context.Background(), "u1", &dto.CreatePostRequest{Content: "  hi there  "}, nil)

	require.NoError(t, err)
	assert.Equal(t, "hi there", post.Content)
	require.Len(t, f.posts.posts, 1)
	assert.Equal(t, "u1", f.posts.posts[0].AuthorID)
}

func TestGetFeed_NewestFirstWithPagination(t *testing.T) {
	f := newPostFixture()
	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, f.posts.Create(ctx, &models.Post{
			ID: uuid.New(), AuthorID: "u1", Content: string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	feed, err := f.svc.GetFeed(ctx, 1, 3)

	require.NoError(t, err)
	require.Len(t, feed.Posts, 3)
	assert.Equal(t, "e", feed.Posts[0].Content)
	assert.Equal(t, "d", feed.Posts[1].Content)
	assert.Equal(t, int64(5), feed.PaginationInfo.TotalItems)
	assert.Equal(t, 2, feed.PaginationInfo.TotalPages)

	second, err := f.svc.GetFeed(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, second.Posts, 2)
	assert.Equal(t, "b", second.Posts[0].Content)
}

func TestGetPostByID_NotFound(t *testing.T) {
	f := newPostFixture()

	_, err := f.svc.GetPostByID(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestDeletePost_AuthorizationMatrix(t *testing.T) {
	tests := []struct {
		name      string
		requester *models.User
		expect    bool
	}{
		{"author may delete", &models.User{ID: "author", Role: models.RoleStudent}, true},
		{"admin may delete", &models.User{ID: "admin", Role: models.RoleAdmin}, true},
		{"teacher may delete", &models.User{ID: "teacher", Role: models.RoleTeacher}, true},
		{"other student may not", &models.User{ID: "other", Role: models.RoleStudent}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newPostFixture(tc.requester)
			post := f.seedPost(t, "author")

			deleted, err := f.svc.DeletePost(context.Background(), post.ID, tc.requester.ID)

			require.NoError(t, err)
			assert.Equal(t, tc.expect, deleted)

			remaining, err := f.posts.GetByID(context.Background(), post.ID)
			require.NoError(t, err)
			if tc.expect {
				assert.Nil(t, remaining)
			} else {
				assert.NotNil(t, remaining)
			}
		})
	}
}

func TestDeletePost_RoleReadPerCall(t *testing.T) {
	requester := &models.User{ID: "other", Role: models.RoleStudent}
	f := newPostFixture(requester)
	post := f.seedPost(t, "author")
	ctx := context.Background()

	deleted, err := f.svc.DeletePost(ctx, post.ID, "other")
	require.NoError(t, err)
	require.False(t, deleted)

	// A role change takes effect on the next call without restarting anything
	requester.Role = models.RoleAdmin

	deleted, err = f.svc.DeletePost(ctx, post.ID, "other")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeletePost_AbsentPostReturnsFalse(t *testing.T) {
	f := newPostFixture(&models.User{ID: "u1", Role: models.RoleAdmin})

	deleted, err := f.svc.DeletePost(context.Background(), uuid.New(), "u1")

	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLikePost_IdempotentPair(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "author")
	ctx := context.Background()

	liked, err := f.svc.LikePost(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.True(t, liked)

	// Second like from the same user is a no-op
	liked, err = f.svc.LikePost(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.False(t, liked)

	count, err := f.svc.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLikePost_UnknownPost(t *testing.T) {
	f := newPostFixture()

	_, err := f.svc.LikePost(context.Background(), uuid.New(), "u1")

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestUnlikePost_RoundTrip(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "author")
	ctx := context.Background()

	unliked, err := f.svc.UnlikePost(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.False(t, unliked)

	_, err = f.svc.LikePost(ctx, post.ID, "u1")
	require.NoError(t, err)

	hasLiked, err := f.svc.HasLiked(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.True(t, hasLiked)

	unliked, err = f.svc.UnlikePost(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.True(t, unliked)

	hasLiked, err = f.svc.HasLiked(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.False(t, hasLiked)
}
