// Package repomanager wires concrete repositories to a DB handle and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/chatkeeper/internal/dbx"
	"github.com/dmitrijs2005/chatkeeper/internal/server/repositories/exchanges"
	"github.com/dmitrijs2005/chatkeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/chatkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Exchanges(db dbx.DBTX) exchanges.Repository
}
