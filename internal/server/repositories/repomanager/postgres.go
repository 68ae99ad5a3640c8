// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studynotes/internal/dbx"
	"github.com/dmitrijs2005/studynotes/internal/server/migrations"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/questions"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/subjects"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Subjects returns a subjects.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Subjects(db dbx.DBTX) subjects.Repository {
	return subjects.NewPostgresRepository(db)
}

// Questions returns a questions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Questions(db dbx.DBTX) questions.Repository {
	return questions.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// Attachments returns an attachments.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Attachments(db dbx.DBTX) attachments.Repository {
	return attachments.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
