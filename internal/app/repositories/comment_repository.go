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

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment with its author populated.
// Returns nil without error when no row exists.
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `
		SELECT
			c.id, c.post_id, c.author_id, c.content, c.created_at,
			u.id, u.first_name, u.last_name, u.avatar_url, u.bio, u.role, u.created_at, u.last_login_at
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.id = $1
	`

	var comment models.Comment
	var author models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
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
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}
	comment.Author = &author

	return &comment, nil
}

// ListByPost retrieves a post's comments, newest first, with authors populated
func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID, skip, take int) ([]*models.Comment, error) {
	queryBuilder := squirrel.Select(
		"c.id", "c.post_id", "c.author_id", "c.content", "c.created_at",
		"u.id", "u.first_name", "u.last_name", "u.avatar_url", "u.bio", "u.role", "u.created_at", "u.last_login_at",
	).
		From("comments c").
		Join("users u ON c.author_id = u.id").
		Where("c.post_id = ?", postID).
		OrderBy("c.created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(take)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
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
		comments = append(comments, &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// Delete removes a comment. Returns false when no row matched.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting comment: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
