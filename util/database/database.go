package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// New opens a pgx-backed *sql.DB and verifies the connection.
func New(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the books table if it is missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	const q = `
CREATE TABLE IF NOT EXISTS books (
	id       BIGSERIAL PRIMARY KEY,
	title    TEXT NOT NULL,
	author   TEXT NOT NULL,
	reserved BOOLEAN NOT NULL DEFAULT FALSE
)`
	_, err := db.ExecContext(ctx, q)
	return err
}
