package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/campushub/internal/app/models"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageColumns = `m.id, m.sender_id, m.receiver_id, m.content, m.media_url, m.sent_at, m.is_read`

func scanMessageWithParties(rows pgx.Rows) (*models.Message, error) {
	var message models.Message
	var sender, receiver models.User
	err := rows.Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.Content,
		&message.MediaURL,
		&message.SentAt,
		&message.IsRead,
		&sender.ID,
		&sender.FirstName,
		&sender.LastName,
		&sender.AvatarURL,
		&sender.Bio,
		&sender.Role,
		&sender.CreatedAt,
		&sender.LastLoginAt,
		&receiver.ID,
		&receiver.FirstName,
		&receiver.LastName,
		&receiver.AvatarURL,
		&receiver.Bio,
		&receiver.Role,
		&receiver.CreatedAt,
		&receiver.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	message.Sender = &sender
	message.Receiver = &receiver
	return &message, nil
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, media_url, sent_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.MediaURL,
		message.SentAt,
		message.IsRead,
	)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetByID retrieves a single message. Returns nil without error when no row
// exists.
func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	query := `SELECT id, sender_id, receiver_id, content, media_url, sent_at, is_read FROM messages WHERE id = $1`

	var message models.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.Content,
		&message.MediaURL,
		&message.SentAt,
		&message.IsRead,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return &message, nil
}

// GetConversation retrieves the messages exchanged between two users in either
// direction, newest first, with both parties populated
func (r *MessageRepository) GetConversation(ctx context.Context, userID1, userID2 string, offset, limit int) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `,
			s.id, s.first_name, s.last_name, s.avatar_url, s.bio, s.role, s.created_at, s.last_login_at,
			rc.id, rc.first_name, rc.last_name, rc.avatar_url, rc.bio, rc.role, rc.created_at, rc.last_login_at
		FROM messages m
		JOIN users s ON m.sender_id = s.id
		JOIN users rc ON m.receiver_id = rc.id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.sent_at DESC
		OFFSET $3 LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, userID1, userID2, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessageWithParties(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// ListUnread retrieves a user's unread incoming messages, newest first, with
// both parties populated
func (r *MessageRepository) ListUnread(ctx context.Context, userID string) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `,
			s.id, s.first_name, s.last_name, s.avatar_url, s.bio, s.role, s.created_at, s.last_login_at,
			rc.id, rc.first_name, rc.last_name, rc.avatar_url, rc.bio, rc.role, rc.created_at, rc.last_login_at
		FROM messages m
		JOIN users s ON m.sender_id = s.id
		JOIN users rc ON m.receiver_id = rc.id
		WHERE m.receiver_id = $1 AND m.is_read = FALSE
		ORDER BY m.sent_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing unread messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessageWithParties(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// MarkRead flips a message to read, but only for its receiver. Returns false
// when the message does not exist or the caller is not the receiver.
func (r *MessageRepository) MarkRead(ctx context.Context, id uuid.UUID, receiverID string) (bool, error) {
	query := `UPDATE messages SET is_read = TRUE WHERE id = $1 AND receiver_id = $2`

	result, err := r.db.Exec(ctx, query, id, receiverID)
	if err != nil {
		return false, fmt.Errorf("error marking message read: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListConversationPartners returns the distinct ids of every user the given
// user has exchanged messages with
func (r *MessageRepository) ListConversationPartners(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversation partners: %w", err)
	}
	defer rows.Close()

	var partners []string
	for rows.Next() {
		var partnerID string
		if err := rows.Scan(&partnerID); err != nil {
			return nil, fmt.Errorf("error scanning partner row: %w", err)
		}
		partners = append(partners, partnerID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", err)
	}

	return partners, nil
}

// GetLastMessage retrieves the most recent message between two users with both
// parties populated. Returns nil without error when the pair never messaged.
func (r *MessageRepository) GetLastMessage(ctx context.Context, userID1, userID2 string) (*models.Message, error) {
	messages, err := r.GetConversation(ctx, userID1, userID2, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	return messages[0], nil
}

// CountUnreadFrom returns the number of unread messages a user has from one
// specific sender
func (r *MessageRepository) CountUnreadFrom(ctx context.Context, receiverID, senderID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM messages
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE
	`

	var count int
	if err := r.db.QueryRow(ctx, query, receiverID, senderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}

	return count, nil
}
