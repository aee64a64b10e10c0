package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazi-link/job-portal/internal/domain"
)

// ChatRoomRepository encapsulates chat room persistence.
type ChatRoomRepository interface {
	Create(ctx context.Context, room *domain.ChatRoom) error
	GetByID(ctx context.Context, id string) (*domain.ChatRoom, error)
	GetByTriple(ctx context.Context, seekerID, otherUserID string, applicationID *string) (*domain.ChatRoom, error)
	ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatRoom, error)
	Touch(ctx context.Context, id string) error
}

// ChatMessageRepository encapsulates chat message persistence.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *domain.ChatMessage) error
	ListByRoom(ctx context.Context, roomID string, limit, offset int) ([]domain.ChatMessage, error)
	MarkRoomRead(ctx context.Context, roomID, readerID string) error
}

// ChatNotificationRepository encapsulates chat notification persistence.
type ChatNotificationRepository interface {
	Create(ctx context.Context, notification *domain.ChatNotification) error
	ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]domain.ChatNotification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkRoomRead(ctx context.Context, roomID, recipientID string) error
}

type chatRoomRepository struct {
	pool *pgxpool.Pool
}

// NewChatRoomRepository instantiates repository.
func NewChatRoomRepository(pool *pgxpool.Pool) ChatRoomRepository {
	return &chatRoomRepository{pool: pool}
}

const roomColumns = `r.id, r.seeker_id, s.user_id, r.other_user_id, r.application_id, r.chat_type,
               r.title, r.active, r.created_at, r.updated_at`

const roomSelect = `SELECT ` + roomColumns + ` FROM chat_rooms r JOIN seeker_profiles s ON s.id = r.seeker_id`

func (r *chatRoomRepository) Create(ctx context.Context, room *domain.ChatRoom) error {
	const query = `
        INSERT INTO chat_rooms (seeker_id, other_user_id, application_id, chat_type, title, active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		room.SeekerID,
		room.OtherUserID,
		room.ApplicationID,
		room.ChatType,
		room.Title,
		room.Active,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *chatRoomRepository) GetByID(ctx context.Context, id string) (*domain.ChatRoom, error) {
	row := r.pool.QueryRow(ctx, roomSelect+` WHERE r.id=$1`, id)
	return scanRoomRow(row)
}

func (r *chatRoomRepository) GetByTriple(ctx context.Context, seekerID, otherUserID string, applicationID *string) (*domain.ChatRoom, error) {
	query := roomSelect + ` WHERE r.seeker_id=$1 AND r.other_user_id=$2 AND `
	args := []any{seekerID, otherUserID}
	if applicationID == nil {
		query += `r.application_id IS NULL`
	} else {
		query += `r.application_id=$3`
		args = append(args, *applicationID)
	}
	row := r.pool.QueryRow(ctx, query, args...)
	return scanRoomRow(row)
}

func (r *chatRoomRepository) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatRoom, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := roomSelect + ` WHERE (s.user_id=$1 OR r.other_user_id=$1) AND r.active
        ORDER BY r.updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChatRoom
	for rows.Next() {
		room, err := scanRoomRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *room)
	}
	return result, rows.Err()
}

func (r *chatRoomRepository) Touch(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE chat_rooms SET updated_at=NOW() WHERE id=$1`, id)
	return err
}

func scanRoomRow(row rowScanner) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	if err := row.Scan(
		&room.ID,
		&room.SeekerID,
		&room.SeekerUserID,
		&room.OtherUserID,
		&room.ApplicationID,
		&room.ChatType,
		&room.Title,
		&room.Active,
		&room.CreatedAt,
		&room.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &room, nil
}

type chatMessageRepository struct {
	pool *pgxpool.Pool
}

// NewChatMessageRepository instantiates repository.
func NewChatMessageRepository(pool *pgxpool.Pool) ChatMessageRepository {
	return &chatMessageRepository{pool: pool}
}

func (r *chatMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	const query = `
        INSERT INTO chat_messages (room_id, sender_id, message_type, body)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		message.RoomID,
		message.SenderID,
		message.MessageType,
		message.Body,
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *chatMessageRepository) ListByRoom(ctx context.Context, roomID string, limit, offset int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `SELECT id, room_id, sender_id, message_type, body, read, created_at
        FROM chat_messages WHERE room_id=$1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, roomID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChatMessage
	for rows.Next() {
		var message domain.ChatMessage
		if err := rows.Scan(
			&message.ID,
			&message.RoomID,
			&message.SenderID,
			&message.MessageType,
			&message.Body,
			&message.Read,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, message)
	}
	return result, rows.Err()
}

// MarkRoomRead marks every message in the room not sent by the reader as read.
func (r *chatMessageRepository) MarkRoomRead(ctx context.Context, roomID, readerID string) error {
	const query = `UPDATE chat_messages SET read=true
        WHERE room_id=$1 AND NOT read AND (sender_id IS NULL OR sender_id <> $2)`
	_, err := r.pool.Exec(ctx, query, roomID, readerID)
	return err
}

type chatNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewChatNotificationRepository instantiates repository.
func NewChatNotificationRepository(pool *pgxpool.Pool) ChatNotificationRepository {
	return &chatNotificationRepository{pool: pool}
}

func (r *chatNotificationRepository) Create(ctx context.Context, notification *domain.ChatNotification) error {
	const query = `
        INSERT INTO chat_notifications (recipient_id, sender_id, room_id, notification_type, title, message)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		notification.RecipientID,
		notification.SenderID,
		notification.RoomID,
		notification.NotificationType,
		notification.Title,
		notification.Message,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *chatNotificationRepository) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]domain.ChatNotification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT id, recipient_id, sender_id, room_id, notification_type, title, message, read, created_at
        FROM chat_notifications WHERE recipient_id=$1`
	if unreadOnly {
		query += ` AND NOT read`
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChatNotification
	for rows.Next() {
		var notification domain.ChatNotification
		if err := rows.Scan(
			&notification.ID,
			&notification.RecipientID,
			&notification.SenderID,
			&notification.RoomID,
			&notification.NotificationType,
			&notification.Title,
			&notification.Message,
			&notification.Read,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}

func (r *chatNotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE chat_notifications SET read=true WHERE id=$1 AND recipient_id=$2`, id, recipientID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *chatNotificationRepository) MarkRoomRead(ctx context.Context, roomID, recipientID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE chat_notifications SET read=true WHERE room_id=$1 AND recipient_id=$2 AND NOT read`,
		roomID, recipientID)
	return err
}
