package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/db"
	"github.com/selim/campushub/internal/pkg/apperrors"
	"github.com/selim/campushub/internal/pkg/dberrors"
)

// GroupRepository handles database operations for groups and memberships
type GroupRepository struct {
	db *db.PostgresDB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(database *db.PostgresDB) *GroupRepository {
	return &GroupRepository{db: database}
}

// CreateWithOwner inserts the group and its Owner membership in one
// transaction. A duplicate join code surfaces as ErrConflict.
func (r *GroupRepository) CreateWithOwner(ctx context.Context, group *models.Group, ownerMembership *models.UserGroup) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO groups (id, name, code, description, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, group.ID, group.Name, group.Code, group.Description, group.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO user_groups (group_id, user_id, role, joined_at)
			VALUES ($1, $2, $3, $4)
		`, ownerMembership.GroupID, ownerMembership.UserID, ownerMembership.Role, ownerMembership.JoinedAt)
		return err
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "groups_code_key") {
			return apperrors.NewConflictError("a group with this code already exists")
		}
		return fmt.Errorf("error creating group: %w", err)
	}

	return nil
}

// GetByID retrieves a group without memberships. Returns nil without error
// when no row exists.
func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	query := `SELECT id, name, code, description, created_at FROM groups WHERE id = $1`

	var group models.Group
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.Code,
		&group.Description,
		&group.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	return &group, nil
}

// GetByCode retrieves a group by its join code with memberships and member
// users populated. Returns nil without error when no row exists.
func (r *GroupRepository) GetByCode(ctx context.Context, code string) (*models.Group, error) {
	query := `SELECT id, name, code, description, created_at FROM groups WHERE code = $1`

	var group models.Group
	err := r.db.Pool.QueryRow(ctx, query, code).Scan(
		&group.ID,
		&group.Name,
		&group.Code,
		&group.Description,
		&group.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	memberships, err := r.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	group.Memberships = memberships

	return &group, nil
}

// Join adds a membership unless the user is already a member. Returns false
// when the membership already exists.
func (r *GroupRepository) Join(ctx context.Context, membership *models.UserGroup) (bool, error) {
	query := `
		INSERT INTO user_groups (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_id, user_id) DO NOTHING
	`

	result, err := r.db.Pool.Exec(ctx, query,
		membership.GroupID,
		membership.UserID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return false, fmt.Errorf("error joining group: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Leave removes a membership. Returns false when the user was not a member.
func (r *GroupRepository) Leave(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM user_groups WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("error leaving group: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListByUser retrieves the groups a user belongs to, newest membership first
func (r *GroupRepository) ListByUser(ctx context.Context, userID string) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.code, g.description, g.created_at
		FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1
		ORDER BY ug.joined_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		err := rows.Scan(&group.ID, &group.Name, &group.Code, &group.Description, &group.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, &group)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	return groups, nil
}

// ListMembers retrieves a group's memberships with member users populated,
// owners first then by join time
func (r *GroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*models.UserGroup, error) {
	query := `
		SELECT
			ug.group_id, ug.user_id, ug.role, ug.joined_at,
			u.id, u.first_name, u.last_name, u.avatar_url, u.bio, u.role, u.created_at, u.last_login_at
		FROM user_groups ug
		JOIN users u ON ug.user_id = u.id
		WHERE ug.group_id = $1
		ORDER BY CASE WHEN ug.role = 'Owner' THEN 0 ELSE 1 END, ug.joined_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing group members: %w", err)
	}
	defer rows.Close()

	var memberships []*models.UserGroup
	for rows.Next() {
		var membership models.UserGroup
		var user models.User
		err := rows.Scan(
			&membership.GroupID,
			&membership.UserID,
			&membership.Role,
			&membership.JoinedAt,
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
			return nil, fmt.Errorf("error scanning membership row: %w", err)
		}
		membership.User = &user
		memberships = append(memberships, &membership)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return memberships, nil
}

// IsMember reports whether the user belongs to the group
func (r *GroupRepository) IsMember(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	var exists int
	err := r.db.Pool.QueryRow(ctx, `SELECT 1 FROM user_groups WHERE group_id = $1 AND user_id = $2`, groupID, userID).Scan(&exists)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error checking membership: %w", err)
	}

	return true, nil
}
