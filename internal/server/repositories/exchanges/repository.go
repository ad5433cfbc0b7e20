// Package exchanges declares the server-side repository contract for logged
// chat turns.
package exchanges

import (
	"context"

	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
)

type Repository interface {
	// Create appends one chat turn. The store assigns id and created_at.
	Create(ctx context.Context, exchange *models.Exchange) (*models.Exchange, error)

	// ListByUser returns every exchange owned by userID. There is no
	// pagination; callers must assume unbounded result size.
	ListByUser(ctx context.Context, userID string) ([]*models.Exchange, error)
}
