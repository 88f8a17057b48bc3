package repositories

import (
	"github.com/selim/campushub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	PostRepository          *PostRepository
	CommentRepository       *CommentRepository
	LikeRepository          *LikeRepository
	FriendRequestRepository *FriendRequestRepository
	MessageRepository       *MessageRepository
	GroupRepository         *GroupRepository
	ReportRepository        *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(database.Pool),
		PostRepository:          NewPostRepository(database.Pool),
		CommentRepository:       NewCommentRepository(database.Pool),
		LikeRepository:          NewLikeRepository(database.Pool),
		FriendRequestRepository: NewFriendRequestRepository(database.Pool),
		MessageRepository:       NewMessageRepository(database.Pool),
		GroupRepository:         NewGroupRepository(database),
		ReportRepository:        NewReportRepository(database.Pool),
	}
}
