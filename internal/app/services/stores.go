package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// Store interfaces consumed by the services. The concrete repositories
// satisfy them; they are declared here so services depend only on the
// operations they actually use.

// UserStore provides user persistence
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id string, bio *string, avatarURL *string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) (bool, error)
}

// PostStore provides post persistence
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListFeed(ctx context.Context, offset uint64, limit int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string, count int) ([]*models.Post, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CommentStore provides comment persistence
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, skip, take int) ([]*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// LikeStore provides like persistence
type LikeStore interface {
	Insert(ctx context.Context, like *models.Like) (bool, error)
	Delete(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	Exists(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}

// FriendRequestStore provides friend request persistence
type FriendRequestStore interface {
	Insert(ctx context.Context, request *models.FriendRequest) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.FriendRequestStatus) (bool, error)
	ListFriends(ctx context.Context, userID string, limit int) ([]*models.User, error)
	ListPendingForReceiver(ctx context.Context, userID string) ([]*models.FriendRequest, error)
	AreFriends(ctx context.Context, userID1, userID2 string) (bool, error)
}

// MessageStore provides direct message persistence
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	GetConversation(ctx context.Context, userID1, userID2 string, offset, limit int) ([]*models.Message, error)
	ListUnread(ctx context.Context, userID string) ([]*models.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID, receiverID string) (bool, error)
	ListConversationPartners(ctx context.Context, userID string) ([]string, error)
	GetLastMessage(ctx context.Context, userID1, userID2 string) (*models.Message, error)
	CountUnreadFrom(ctx context.Context, receiverID, senderID string) (int, error)
}

// GroupStore provides group and membership persistence
type GroupStore interface {
	CreateWithOwner(ctx context.Context, group *models.Group, ownerMembership *models.UserGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	GetByCode(ctx context.Context, code string) (*models.Group, error)
	Join(ctx context.Context, membership *models.UserGroup) (bool, error)
	Leave(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Group, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*models.UserGroup, error)
	IsMember(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
}

// ReportStore provides moderation report persistence
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	ListByStatus(ctx context.Context, status models.ReportStatus) ([]*models.Report, error)
	ExistsForContent(ctx context.Context, reporterID string, contentID uuid.UUID, contentType models.ReportContentType) (bool, error)
}
