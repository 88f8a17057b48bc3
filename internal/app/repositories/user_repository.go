package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/campushub/internal/app/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// userColumns is the canonical column list for scanning a user row
const userColumns = `id, first_name, last_name, avatar_url, bio, role, created_at, last_login_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.AvatarURL,
		&user.Bio,
		&user.Role,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves a user by their externally issued id.
// Returns nil without error when no row exists.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// Create inserts a user row for an externally issued identity
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, avatar_url, bio, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.AvatarURL,
		user.Bio,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// UpdateProfile updates the bio and, when provided, the avatar URL
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, bio *string, avatarURL *string) (bool, error) {
	query := `
		UPDATE users
		SET bio = $1,
		    avatar_url = COALESCE($2, avatar_url)
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, bio, avatarURL, id)
	if err != nil {
		return false, fmt.Errorf("error updating profile: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) (bool, error) {
	result, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return false, fmt.Errorf("error updating last login: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
