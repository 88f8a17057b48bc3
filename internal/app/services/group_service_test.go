package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

func newGroupFixture(users ...*models.User) (GroupService, *fakeGroupStore) {
	store := &fakeGroupStore{users: newFakeUserStore(users...)}
	return NewGroupService(store, zerolog.Nop()), store
}

func TestCreateGroup_ValidationErrors(t *testing.T) {
	svc, _ := newGroupFixture()
	ctx := context.Background()
	longDesc := strings.Repeat("d", maxGroupDescriptionLength+1)

	tests := []struct {
		name string
		req  dto.CreateGroupRequest
	}{
		{"blank name", dto.CreateGroupRequest{Name: "  ", Code: "go-club"}},
		{"blank code", dto.CreateGroupRequest{Name: "Go Club", Code: " "}},
		{"name too long", dto.CreateGroupRequest{Name: strings.Repeat("n", maxGroupNameLength+1), Code: "go-club"}},
		{"code too long", dto.CreateGroupRequest{Name: "Go Club", Code: strings.Repeat("c", maxGroupCodeLength+1)}},
		{"description too long", dto.CreateGroupRequest{Name: "Go Club", Code: "go-club", Description: &longDesc}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateGroup(ctx, "owner", &tc.req)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestCreateGroup_OwnerIsFirstMember(t *testing.T) {
	svc, store := newGroupFixture()

	group, err := svc.CreateGroup(context.Background(), "owner", &dto.CreateGroupRequest{Name: " Go Club ", Code: " go-club "})

	require.NoError(t, err)
	assert.Equal(t, "Go Club", group.Name)
	assert.Equal(t, "go-club", group.Code)
	assert.Equal(t, 1, group.MemberCount)

	require.Len(t, store.memberships, 1)
	assert.Equal(t, models.GroupRoleOwner, store.memberships[0].Role)
	assert.Equal(t, "owner", store.memberships[0].UserID)
}

func TestCreateGroup_TakenCode(t *testing.T) {
	svc, _ := newGroupFixture()
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "owner", &dto.CreateGroupRequest{Name: "Go Club", Code: "go-club"})
	require.NoError(t, err)

	_, err = svc.CreateGroup(ctx, "someone-else", &dto.CreateGroupRequest{Name: "Another Club", Code: "go-club"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestJoinGroup_UnknownGroup(t *testing.T) {
	svc, _ := newGroupFixture()

	_, err := svc.JoinGroup(context.Background(), uuid.New(), "u1")

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestJoinGroup_SecondJoinIsNoOp(t *testing.T) {
	svc, store := newGroupFixture()
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, "owner", &dto.CreateGroupRequest{Name: "Go Club", Code: "go-club"})
	require.NoError(t, err)

	joined, err := svc.JoinGroup(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.True(t, joined)

	joined, err = svc.JoinGroup(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.False(t, joined)

	// The owner already holds a membership, joining again changes nothing
	joined, err = svc.JoinGroup(ctx, created.ID, "owner")
	require.NoError(t, err)
	assert.False(t, joined)
	assert.Len(t, store.memberships, 2)
}

func TestLeaveGroup_ReportsMembershipRemoval(t *testing.T) {
	svc, _ := newGroupFixture()
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, "owner", &dto.CreateGroupRequest{Name: "Go Club", Code: "go-club"})
	require.NoError(t, err)

	left, err := svc.LeaveGroup(ctx, created.ID, "stranger")
	require.NoError(t, err)
	assert.False(t, left)

	// Owners may leave their own group
	left, err = svc.LeaveGroup(ctx, created.ID, "owner")
	require.NoError(t, err)
	assert.True(t, left)

	left, err = svc.LeaveGroup(ctx, created.ID, "owner")
	require.NoError(t, err)
	assert.False(t, left)
}

func TestGetGroupByCode_NotFound(t *testing.T) {
	svc, _ := newGroupFixture()

	_, err := svc.GetGroupByCode(context.Background(), "missing")

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestGetGroupByCode_IncludesMembers(t *testing.T) {
	svc, _ := newGroupFixture(
		&models.User{ID: "owner", FirstName: "Ada"},
		&models.User{ID: "u1", FirstName: "Kemal"},
	)
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, "owner", &dto.CreateGroupRequest{Name: "Go Club", Code: "go-club"})
	require.NoError(t, err)
	_, err = svc.JoinGroup(ctx, created.ID, "u1")
	require.NoError(t, err)

	detail, err := svc.GetGroupByCode(ctx, "go-club")

	require.NoError(t, err)
	assert.Equal(t, 2, detail.MemberCount)
	require.Len(t, detail.Members, 2)
	// Owner sorts first
	assert.Equal(t, string(models.GroupRoleOwner), detail.Members[0].Role)
	require.NotNil(t, detail.Members[0].User)
	assert.Equal(t, "Ada", detail.Members[0].User.FirstName)
}

func TestGetUserGroups_MemberCountsPopulated(t *testing.T) {
	svc, _ := newGroupFixture()
	ctx := context.Background()

	first, err := svc.CreateGroup(ctx, "owner", &dto.CreateGroupRequest{Name: "Go Club", Code: "go-club"})
	require.NoError(t, err)
	_, err = svc.CreateGroup(ctx, "other", &dto.CreateGroupRequest{Name: "Chess Club", Code: "chess"})
	require.NoError(t, err)

	_, err = svc.JoinGroup(ctx, first.ID, "u1")
	require.NoError(t, err)

	groups, err := svc.GetUserGroups(ctx, "owner")

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "go-club", groups[0].Code)
	assert.Equal(t, 2, groups[0].MemberCount)
}

func TestGetGroupMembers_UnknownGroup(t *testing.T) {
	svc, _ := newGroupFixture()

	_, err := svc.GetGroupMembers(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
