package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studynotes/internal/dbx"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/questions"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/subjects"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against the pool or inside a transaction handle.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Subjects(db dbx.DBTX) subjects.Repository
	Questions(db dbx.DBTX) questions.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Attachments(db dbx.DBTX) attachments.Repository
}
