package subjects

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/studynotes/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+subjects\s*\(name,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`

	mock.ExpectQuery(q).
		WithArgs("Math", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	got, err := repo.Create(context.Background(), "Math", 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 || got.Name != "Math" || got.OwnerID != 1 {
		t.Fatalf("unexpected subject: %+v", got)
	}
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*name,\s*user_id\s+FROM\s+subjects\s+WHERE\s+user_id\s*=\s*\$1`

	rows := sqlmock.NewRows([]string{"id", "name", "user_id"}).
		AddRow(int64(1), "Math", int64(1)).
		AddRow(int64(2), "History", int64(1))
	mock.ExpectQuery(q).WithArgs(int64(1)).WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Math" || got[1].Name != "History" {
		t.Fatalf("unexpected subjects: %+v", got)
	}
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*name,\s*user_id\s+FROM\s+subjects`

	mock.ExpectQuery(q).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}))

	got, err := repo.ListByOwner(context.Background(), 99)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestGetByIDForOwner_OtherUsersSubjectIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*name,\s*user_id\s+FROM\s+subjects\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`

	// The same answer whether the row is absent or owned by someone else.
	mock.ExpectQuery(q).WithArgs(int64(5), int64(2)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDForOwner(context.Background(), 5, 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateName_OwnedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+subjects\s+SET\s+name\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`

	mock.ExpectExec(q).
		WithArgs("Algebra", int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateName(context.Background(), 5, 1, "Algebra")
	if err != nil || !ok {
		t.Fatalf("UpdateName = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestUpdateName_NotOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+subjects\s+SET\s+name`

	mock.ExpectExec(q).
		WithArgs("Algebra", int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.UpdateName(context.Background(), 5, 2, "Algebra")
	if err != nil || ok {
		t.Fatalf("UpdateName = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+subjects\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`

	mock.ExpectExec(q).WithArgs(int64(5), int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(int64(5), int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 5, 1)
	if err != nil || !ok {
		t.Fatalf("first Delete = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = repo.Delete(context.Background(), 5, 1)
	if err != nil || ok {
		t.Fatalf("second Delete = (%v, %v), want (false, nil)", ok, err)
	}
}
