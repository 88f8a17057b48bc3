package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/pkg/dberrors"
)

// FriendRequestRepository handles database operations for friend requests
type FriendRequestRepository struct {
	db *pgxpool.Pool
}

// NewFriendRequestRepository creates a new FriendRequestRepository
func NewFriendRequestRepository(db *pgxpool.Pool) *FriendRequestRepository {
	return &FriendRequestRepository{db: db}
}

// Insert adds a pending friend request unless a row already exists for the
// unordered pair in either direction. The symmetric existence check and the
// insert execute as one statement; the ordered unique constraint backs it so
// a racing duplicate fails instead of silently succeeding. Returns false when
// the pair is already occupied.
func (r *FriendRequestRepository) Insert(ctx context.Context, request *models.FriendRequest) (bool, error) {
	query := `
		INSERT INTO friend_requests (id, sender_id, receiver_id, status, created_at)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE (sender_id = $2 AND receiver_id = $3)
			   OR (sender_id = $3 AND receiver_id = $2)
		)
		ON CONFLICT ON CONSTRAINT friend_requests_sender_id_receiver_id_key DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		request.ID,
		request.SenderID,
		request.ReceiverID,
		request.Status,
		request.CreatedAt,
	)
	if err != nil {
		// The reverse-direction race lands on the unique constraint
		if dberrors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting friend request: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// UpdateStatus transitions a request out of Pending. Returns false when the
// row does not exist or is no longer Pending; responded_at is only stamped on
// a successful transition.
func (r *FriendRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.FriendRequestStatus) (bool, error) {
	query := `
		UPDATE friend_requests
		SET status = $1, responded_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, status, id, models.FriendRequestPending)
	if err != nil {
		return false, fmt.Errorf("error updating friend request status: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListFriends materializes the derived friendship set for a user: the other
// party of every Accepted request the user appears in, capped at limit.
// No secondary ordering is applied beyond the cap.
func (r *FriendRequestRepository) ListFriends(ctx context.Context, userID string, limit int) ([]*models.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.avatar_url, u.bio, u.role, u.created_at, u.last_login_at
		FROM friend_requests fr
		JOIN users u ON u.id = CASE WHEN fr.sender_id = $1 THEN fr.receiver_id ELSE fr.sender_id END
		WHERE fr.status = $2 AND (fr.sender_id = $1 OR fr.receiver_id = $1)
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, models.FriendRequestAccepted, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing friends: %w", err)
	}
	defer rows.Close()

	var friends []*models.User
	for rows.Next() {
		friend, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning friend row: %w", err)
		}
		friends = append(friends, friend)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friend rows: %w", err)
	}

	return friends, nil
}

// ListPendingForReceiver retrieves the Pending requests addressed to a user,
// newest first, with senders populated
func (r *FriendRequestRepository) ListPendingForReceiver(ctx context.Context, userID string) ([]*models.FriendRequest, error) {
	query := `
		SELECT
			fr.id, fr.sender_id, fr.receiver_id, fr.status, fr.created_at, fr.responded_at,
			u.id, u.first_name, u.last_name, u.avatar_url, u.bio, u.role, u.created_at, u.last_login_at
		FROM friend_requests fr
		JOIN users u ON fr.sender_id = u.id
		WHERE fr.receiver_id = $1 AND fr.status = $2
		ORDER BY fr.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID, models.FriendRequestPending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending friend requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.FriendRequest
	for rows.Next() {
		var request models.FriendRequest
		var sender models.User
		err := rows.Scan(
			&request.ID,
			&request.SenderID,
			&request.ReceiverID,
			&request.Status,
			&request.CreatedAt,
			&request.RespondedAt,
			&sender.ID,
			&sender.FirstName,
			&sender.LastName,
			&sender.AvatarURL,
			&sender.Bio,
			&sender.Role,
			&sender.CreatedAt,
			&sender.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning friend request row: %w", err)
		}
		request.Sender = &sender
		requests = append(requests, &request)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friend request rows: %w", err)
	}

	return requests, nil
}

// AreFriends reports whether an Accepted request exists between the two users
// in either direction
func (r *FriendRequestRepository) AreFriends(ctx context.Context, userID1, userID2 string) (bool, error) {
	query := `
		SELECT 1 FROM friend_requests
		WHERE status = $1
		  AND ((sender_id = $2 AND receiver_id = $3) OR (sender_id = $3 AND receiver_id = $2))
	`

	var exists int
	err := r.db.QueryRow(ctx, query, models.FriendRequestAccepted, userID1, userID2).Scan(&exists)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error checking friendship: %w", err)
	}

	return true, nil
}
