// Package repomanager vends repositories bound to a connection or a
// transaction, so services can run several of them inside one dbx.WithTx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/recommendations"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/reminders"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Records(db dbx.DBTX) records.Repository
	Recommendations(db dbx.DBTX) recommendations.Repository
	Reminders(db dbx.DBTX) reminders.Repository
}
