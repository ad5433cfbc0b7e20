package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/chatkeeper/internal/inference"
	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
	"github.com/dmitrijs2005/chatkeeper/internal/server/repositories/repomanager"
)

// ChatService forwards a user message to the inference gateway and, only when
// the gateway answers, appends the exchange to the log.
type ChatService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     inference.Gateway
}

// NewChatService constructs a ChatService.
func NewChatService(db *sql.DB, m repomanager.RepositoryManager, gw inference.Gateway) *ChatService {
	return &ChatService{
		db:          db,
		repomanager: m,
		gateway:     gw,
	}
}

// SendMessage performs one chat turn for userID. The gateway is called first;
// on failure nothing is persisted and the gateway error (wrapping
// inference.ErrCompletion) is returned as-is.
func (s *ChatService) SendMessage(ctx context.Context, userID, message string) (*models.Exchange, error) {
	response, err := s.gateway.Complete(ctx, message)
	if err != nil {
		return nil, err
	}

	exchange := &models.Exchange{
		UserID:      userID,
		UserMessage: message,
		BotResponse: response,
	}
	repo := s.repomanager.Exchanges(s.db)
	saved, err := repo.Create(ctx, exchange)
	if err != nil {
		return nil, fmt.Errorf("error saving exchange: %w", err)
	}
	return saved, nil
}

// History returns every logged exchange owned by userID.
func (s *ChatService) History(ctx context.Context, userID string) ([]*models.Exchange, error) {
	repo := s.repomanager.Exchanges(s.db)
	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing exchanges: %w", err)
	}
	return result, nil
}
