// Package users declares the server-side repository contract for registered
// user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A username collision yields
	// common.ErrorAlreadyExists; the uniqueness check is delegated to the
	// store's unique index, not a preceding read.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user record for the given username, or
	// common.ErrorNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
