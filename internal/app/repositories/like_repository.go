package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/campushub/internal/app/models"
)

// LikeRepository handles database operations for post likes
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert adds a like for a (post, user) pair. The insert is conditional on the
// unique constraint, so a concurrent duplicate resolves to the same false a
// losing existence check would produce. Returns false when the pair already
// holds a like.
func (r *LikeRepository) Insert(ctx context.Context, like *models.Like) (bool, error) {
	query := `
		INSERT INTO likes (id, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT likes_post_id_user_id_key DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, like.ID, like.PostID, like.UserID, like.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("error inserting like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete removes the like for a (post, user) pair. Returns false when no like
// existed.
func (r *LikeRepository) Delete(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("error deleting like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Exists reports whether the (post, user) pair holds a like
func (r *LikeRepository) Exists(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID).Scan(&exists)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error checking like: %w", err)
	}

	return true, nil
}

// CountByPost returns the number of likes on a post
func (r *LikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}

	return count, nil
}
