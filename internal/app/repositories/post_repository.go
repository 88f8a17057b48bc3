package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/campushub/internal/app/models"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, author_id, content, media_url, created_at, edited)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.AuthorID,
		post.Content,
		post.MediaURL,
		post.CreatedAt,
		post.Edited,
	)
	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// GetByID retrieves a post with its author, likes and comments (comment
// authors populated). Returns nil without error when no row exists.
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := `
		SELECT
			p.id, p.author_id, p.content, p.media_url, p.created_at, p.edited,
			u.id, u.first_name, u.last_name, u.avatar_url, u.bio, u.role, u.created_at, u.last_login_at
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.id = $1
	`

	var post models.Post
	var author models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Content,
		&post.MediaURL,
		&post.CreatedAt,
		&post.Edited,
		&author.ID,
		&author.FirstName,
		&author.LastName,
		&author.AvatarURL,
		&author.Bio,
		&author.Role,
		&author.CreatedAt,
		&author.LastLoginAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	post.Author = &author

	likesByPost, err := r.loadLikes(ctx, []uuid.UUID{post.ID})
	if err != nil {
		return nil, err
	}
	post.Likes = likesByPost[post.ID]

	commentsByPost, err := r.loadComments(ctx, []uuid.UUID{post.ID})
	if err != nil {
		return nil, err
	}
	post.Comments = commentsByPost[post.ID]

	return &post, nil
}

// ListFeed retrieves all posts ordered by creation time descending, with
// authors, likes and comments populated for count display.
func (r *PostRepository) ListFeed(ctx context.Context, offset uint64, limit int) ([]*models.Post, error) {
	queryBuilder := squirrel.Select(
		"p.id", "p.author_id", "p.content", "p.media_url", "p.created_at", "p.edited",
		"u.id", "u.first_name", "u.last_name", "u.avatar_url", "u.bio", "u.role", "u.created_at", "u.last_login_at",
	).
		From("posts p").
		Join("users u ON p.author_id = u.id").
		OrderBy("p.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.listPosts(ctx, queryBuilder)
}

// ListByAuthor retrieves a single author's posts, newest first, capped at count
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string, count int) ([]*models.Post, error) {
	queryBuilder := squirrel.Select(
		"p.id", "p.author_id", "p.content", "p.media_url", "p.created_at", "p.edited",
		"u.id", "u.first_name", "u.last_name", "u.avatar_url", "u.bio", "u.role", "u.created_at", "u.last_login_at",
	).
		From("posts p").
		Join("users u ON p.author_id = u.id").
		Where("p.author_id = ?", authorID).
		OrderBy("p.created_at DESC").
		Limit(uint64(count)).
		PlaceholderFormat(squirrel.Dollar)

	return r.listPosts(ctx, queryBuilder)
}

// CountAll returns the total number of posts, for feed pagination
func (r *PostRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}

	return count, nil
}

// Delete removes a post; dependent comments and likes cascade in the schema.
// Returns false when no row matched.
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting post: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// listPosts executes a post list query and populates likes and comments
func (r *PostRepository) listPosts(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*models.Post, error) {
	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	var postIDs []uuid.UUID
	for rows.Next() {
		var post models.Post
		var author models.User
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Content,
			&post.MediaURL,
			&post.CreatedAt,
			&post.Edited,
			&author.ID,
			&author.FirstName,
			&author.LastName,
			&author.AvatarURL,
			&author.Bio,
			&author.Role,
			&author.CreatedAt,
			&author.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		post.Author = &author
		posts = append(posts, &post)
		postIDs = append(postIDs, post.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	likesByPost, err := r.loadLikes(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	commentsByPost, err := r.loadComments(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.Likes = likesByPost[post.ID]
		post.Comments = commentsByPost[post.ID]
	}

	return posts, nil
}

// loadLikes fetches the like rows for a set of posts keyed by post id
func (r *PostRepository) loadLikes(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]*models.Like, error) {
	query := squirrel.Select("id", "post_id", "user_id", "created_at").
		From("likes").
		Where(squirrel.Eq{"post_id": postIDs}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading likes: %w", err)
	}
	defer rows.Close()

	likes := make(map[uuid.UUID][]*models.Like)
	for rows.Next() {
		var like models.Like
		if err := rows.Scan(&like.ID, &like.PostID, &like.UserID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning like row: %w", err)
		}
		likes[like.PostID] = append(likes[like.PostID], &like)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like rows: %w", err)
	}

	return likes, nil
}

// loadComments fetches the comment rows for a set of posts, newest first,
// with their authors populated
func (r *PostRepository) loadComments(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]*models.Comment, error) {
	query := squirrel.Select(
		"c.id", "c.post_id", "c.author_id", "c.content", "c.created_at",
		"u.id", "u.first_name", "u.last_name", "u.avatar_url", "u.bio", "u.role", "u.created_at", "u.last_login_at",
	).
		From("comments c").
		Join("users u ON c.author_id = u.id").
		Where(squirrel.Eq{"c.post_id": postIDs}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading comments: %w", err)
	}
	defer rows.Close()

	comments := make(map[uuid.UUID][]*models.Comment)
	for rows.Next() {
		var comment models.Comment
		var author models.User
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
			&author.ID,
			&author.FirstName,
			&author.LastName,
			&author.AvatarURL,
			&author.Bio,
			&author.Role,
			&author.CreatedAt,
			&author.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comment.Author = &author
		comments[comment.PostID] = append(comments[comment.PostID], &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}
