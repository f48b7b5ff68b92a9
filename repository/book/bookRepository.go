package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mattox0/tp02-MethodoTest/model"
)

type Book = model.Book

type Repo interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	Insert(ctx context.Context, name, author string) (int64, error)
	MarkReserved(ctx context.Context, id int64) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]Book, error) {
	const q = `
SELECT id, title, author, reserved
FROM books`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Author, &b.Reserved); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) GetByID(ctx context.Context, id int64) (*Book, error) {
	const q = `
SELECT id, title, author, reserved
FROM books
WHERE id=$1`
	var b Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.Author, &b.Reserved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repo) Insert(ctx context.Context, name, author string) (int64, error) {
	const q = `
INSERT INTO books (title, author, reserved)
VALUES ($1,$2,FALSE)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, name, author).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// MarkReserved flips the flag only while it is still false. Zero rows
// affected means the id is unknown or the book was already reserved.
func (r *repo) MarkReserved(ctx context.Context, id int64) (int64, error) {
	const q = `
UPDATE books
SET reserved = TRUE
WHERE id = $1
AND reserved = FALSE`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
