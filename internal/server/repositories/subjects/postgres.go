// Package subjects provides the PostgreSQL-backed repository for subjects.
// Every query carries the owner predicate, so a row that exists but belongs
// to another user behaves exactly like a row that does not exist.
package subjects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/dbx"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

// PostgresRepository implements subject storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a subject owned by ownerID. The FK on user_id is the only
// user-existence check; the caller-resolved identity is trusted.
func (r *PostgresRepository) Create(ctx context.Context, name string, ownerID int64) (*models.Subject, error) {
	query := `
		INSERT INTO subjects (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	subject := &models.Subject{Name: name, OwnerID: ownerID}
	if err := r.db.QueryRowContext(ctx, query, name, ownerID).Scan(&subject.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return subject, nil
}

// ListByOwner returns all subjects owned by ownerID; none is an empty slice.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Subject, error) {
	query := `
		SELECT id, name, user_id FROM subjects
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Subject{}
	for rows.Next() {
		var item models.Subject
		if err := rows.Scan(&item.ID, &item.Name, &item.OwnerID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByIDForOwner returns the subject matching both id and owner, or
// common.ErrorNotFound when it does not exist or belongs to someone else.
func (r *PostgresRepository) GetByIDForOwner(ctx context.Context, subjectID int64, ownerID int64) (*models.Subject, error) {
	query := `
		SELECT id, name, user_id FROM subjects
		WHERE id = $1 AND user_id = $2
	`
	subject := &models.Subject{}
	err := r.db.QueryRowContext(ctx, query, subjectID, ownerID).Scan(&subject.ID, &subject.Name, &subject.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return subject, nil
}

// UpdateName renames the subject in a single statement guarded by the
// composite id+owner predicate. Reports whether a row changed.
func (r *PostgresRepository) UpdateName(ctx context.Context, subjectID int64, ownerID int64, name string) (bool, error) {
	query := `
		UPDATE subjects SET name = $1
		WHERE id = $2 AND user_id = $3
	`
	res, err := r.db.ExecContext(ctx, query, name, subjectID, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// Delete removes the subject row matching both id and owner. The question
// cascade runs before this inside the same transaction (see the subject
// service); this statement only touches the subject row itself.
func (r *PostgresRepository) Delete(ctx context.Context, subjectID int64, ownerID int64) (bool, error) {
	query := `
		DELETE FROM subjects
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, subjectID, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
