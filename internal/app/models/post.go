package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a user post in the feed
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	MediaURL  *string   `json:"mediaUrl,omitempty" db:"media_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Edited    bool      `json:"edited" db:"edited"`

	// Related entities
	Author   *User      `json:"author,omitempty"`
	Comments []*Comment `json:"comments,omitempty"`
	Likes    []*Like    `json:"likes,omitempty"`
}

// Comment represents a comment on a post
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}

// Like represents a single user's like on a post.
// At most one row exists per (post, user) pair.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
