// Package attachments provides the PostgreSQL-backed repository for question
// attachments. Ownership follows the same chain as questions, one join
// further out: attachment -> question -> subject -> user.
package attachments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/dbx"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

// PostgresRepository implements attachment storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an attachment row under questionID, gated on the question's
// subject belonging to ownerID in the same statement. A question that is
// absent or not owned yields common.ErrorForbidden.
func (r *PostgresRepository) Create(ctx context.Context, questionID int64, ownerID int64, fileName, storageKey string) (*models.Attachment, error) {
	query := `
		INSERT INTO attachments (question_id, file_name, storage_key)
		SELECT q.id, $3, $4
		FROM questions q
		INNER JOIN subjects s ON s.id = q.subject_id
		WHERE q.id = $1 AND s.user_id = $2
		RETURNING id, created_at
	`
	a := &models.Attachment{QuestionID: questionID, FileName: fileName, StorageKey: storageKey}
	err := r.db.QueryRowContext(ctx, query, questionID, ownerID, fileName, storageKey).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorForbidden
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// ListByQuestion returns the attachments of questionID when ownerID owns the
// question's subject; otherwise an empty slice.
func (r *PostgresRepository) ListByQuestion(ctx context.Context, questionID int64, ownerID int64) ([]*models.Attachment, error) {
	query := `
		SELECT a.id, a.question_id, a.file_name, a.storage_key, a.created_at
		FROM attachments a
		INNER JOIN questions q ON q.id = a.question_id
		INNER JOIN subjects s ON s.id = q.subject_id
		WHERE a.question_id = $1 AND s.user_id = $2
		ORDER BY a.id
	`
	rows, err := r.db.QueryContext(ctx, query, questionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Attachment{}
	for rows.Next() {
		var item models.Attachment
		if err := rows.Scan(&item.ID, &item.QuestionID, &item.FileName, &item.StorageKey, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByIDForOwner returns the attachment when the ownership chain ends at
// ownerID, otherwise common.ErrorNotFound.
func (r *PostgresRepository) GetByIDForOwner(ctx context.Context, attachmentID int64, ownerID int64) (*models.Attachment, error) {
	query := `
		SELECT a.id, a.question_id, a.file_name, a.storage_key, a.created_at
		FROM attachments a
		INNER JOIN questions q ON q.id = a.question_id
		INNER JOIN subjects s ON s.id = q.subject_id
		WHERE a.id = $1 AND s.user_id = $2
	`
	a := &models.Attachment{}
	err := r.db.QueryRowContext(ctx, query, attachmentID, ownerID).
		Scan(&a.ID, &a.QuestionID, &a.FileName, &a.StorageKey, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// Delete removes the attachment row, owner-gated through the chain.
func (r *PostgresRepository) Delete(ctx context.Context, attachmentID int64, ownerID int64) (bool, error) {
	query := `
		DELETE FROM attachments a
		USING questions q, subjects s
		WHERE a.id = $1 AND q.id = a.question_id AND s.id = q.subject_id AND s.user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, attachmentID, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
