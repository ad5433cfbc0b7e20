// Package exchanges provides the PostgreSQL-backed repository for the
// chat exchange log.
package exchanges

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/chatkeeper/internal/dbx"
	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
)

// PostgresRepository implements exchange storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one exchange row and fills in the store-assigned id and
// creation time.
func (r *PostgresRepository) Create(ctx context.Context, exchange *models.Exchange) (*models.Exchange, error) {
	query := `
		INSERT INTO exchanges (user_id, user_message, bot_response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		exchange.UserID, exchange.UserMessage, exchange.BotResponse).Scan(&exchange.ID, &exchange.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return exchange, nil
}

// ListByUser returns all exchanges for userID, oldest first. Ordering is a
// convenience; callers must not rely on it.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Exchange, error) {
	query := `
		SELECT id, user_id, user_message, bot_response, created_at
		FROM exchanges
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select exchanges: %w", err)
	}
	defer rows.Close()

	var result []*models.Exchange
	for rows.Next() {
		var item models.Exchange
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.UserMessage, &item.BotResponse, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
