package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ContactRepository serves contact lookups for the notification
// dispatcher. User accounts themselves are owned by the identity
// layer; this is a read-only view.
type ContactRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContactRepo(db *dbpg.DB) *ContactRepository {
	return &ContactRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ContactRepository) Contact(ctx context.Context, userID string) (*domain.UserContact, error) {
	query := `SELECT id, username, email, phone, telegram_chat_id
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	var (
		c     domain.UserContact
		email sql.NullString
		phone sql.NullString
	)
	if err = row.Scan(&c.UserID, &c.Username, &email, &phone, &c.TelegramChatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	c.Email = email.String
	c.Phone = phone.String

	return &c, nil
}
