// Package questions provides the PostgreSQL-backed repository for questions.
//
// Questions carry no user reference: the owner is the owner of the parent
// subject. Every statement here joins through subjects and embeds the owner
// predicate, so an ownership check can never be separated from the mutation
// it guards.
package questions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/dbx"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

// PostgresRepository implements question storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a question under subjectID, but only when that subject is
// owned by ownerID: the insert and the ownership gate are one statement.
// When the subject is missing or owned by someone else no row is produced
// and common.ErrorForbidden is returned, indistinguishably.
func (r *PostgresRepository) Create(ctx context.Context, subjectID int64, ownerID int64, title, answer string, isLearned bool) (*models.Question, error) {
	query := `
		INSERT INTO questions (subject_id, title, answer, is_learned)
		SELECT s.id, $3, $4, $5
		FROM subjects s
		WHERE s.id = $1 AND s.user_id = $2
		RETURNING id
	`
	question := &models.Question{SubjectID: subjectID, Title: title, Answer: answer, IsLearned: isLearned}
	err := r.db.QueryRowContext(ctx, query, subjectID, ownerID, title, answer, isLearned).Scan(&question.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorForbidden
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return question, nil
}

// ListBySubject returns the questions of subjectID when ownerID owns it.
// A subject that is absent or belongs to another user yields an empty slice,
// never an error and never someone else's rows.
func (r *PostgresRepository) ListBySubject(ctx context.Context, subjectID int64, ownerID int64) ([]*models.Question, error) {
	query := `
		SELECT q.id, q.subject_id, q.title, q.answer, q.is_learned
		FROM questions q
		INNER JOIN subjects s ON s.id = q.subject_id
		WHERE q.subject_id = $1 AND s.user_id = $2
		ORDER BY q.id
	`
	rows, err := r.db.QueryContext(ctx, query, subjectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Question{}
	for rows.Next() {
		var item models.Question
		if err := rows.Scan(&item.ID, &item.SubjectID, &item.Title, &item.Answer, &item.IsLearned); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByIDForOwner returns the question when its parent subject belongs to
// ownerID, otherwise common.ErrorNotFound.
func (r *PostgresRepository) GetByIDForOwner(ctx context.Context, questionID int64, ownerID int64) (*models.Question, error) {
	query := `
		SELECT q.id, q.subject_id, q.title, q.answer, q.is_learned
		FROM questions q
		INNER JOIN subjects s ON s.id = q.subject_id
		WHERE q.id = $1 AND s.user_id = $2
	`
	question := &models.Question{}
	err := r.db.QueryRowContext(ctx, query, questionID, ownerID).
		Scan(&question.ID, &question.SubjectID, &question.Title, &question.Answer, &question.IsLearned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return question, nil
}

// Update overwrites title and answer; isLearned only when non-nil, otherwise
// the stored value is kept (partial update, unlike Create's default-to-false).
// The owner predicate is part of the UPDATE itself.
func (r *PostgresRepository) Update(ctx context.Context, questionID int64, ownerID int64, title, answer string, isLearned *bool) (bool, error) {
	query := `
		UPDATE questions q
		SET title = $3, answer = $4, is_learned = COALESCE($5, q.is_learned)
		FROM subjects s
		WHERE q.id = $1 AND q.subject_id = s.id AND s.user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, questionID, ownerID, title, answer, isLearned)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// SetLearned unconditionally overwrites the learned flag, owner-gated the
// same way as Update.
func (r *PostgresRepository) SetLearned(ctx context.Context, questionID int64, ownerID int64, isLearned bool) (bool, error) {
	query := `
		UPDATE questions q
		SET is_learned = $3
		FROM subjects s
		WHERE q.id = $1 AND q.subject_id = s.id AND s.user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, questionID, ownerID, isLearned)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// Delete removes the question when ownerID owns its subject.
func (r *PostgresRepository) Delete(ctx context.Context, questionID int64, ownerID int64) (bool, error) {
	query := `
		DELETE FROM questions q
		USING subjects s
		WHERE q.id = $1 AND q.subject_id = s.id AND s.user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, questionID, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// DeleteAllForSubject is the cascade primitive used by subject deletion.
// The owner predicate keeps it a no-op (count 0) for subjects the caller
// does not own.
func (r *PostgresRepository) DeleteAllForSubject(ctx context.Context, subjectID int64, ownerID int64) (int64, error) {
	query := `
		DELETE FROM questions q
		USING subjects s
		WHERE q.subject_id = $1 AND s.id = q.subject_id AND s.user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, subjectID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
