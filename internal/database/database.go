// Package database is the gateway to the external PostgreSQL store.
// All SQL lives here; handler code only sees the Store interface.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("запись не найдена")

type Database struct {
	conn *sql.DB
}

// NewDatabase opens the connection pool. The pool is lazy: no connection is
// dialed until the first query, so the server boots even while the database
// is down. /test is the liveness check. The schema is managed outside this
// process and is assumed to exist.
func NewDatabase(connURL string) (*Database, error) {
	conn, err := sql.Open("postgres", connURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия пула соединений: %w", err)
	}

	slog.Info("Пул соединений PostgreSQL инициализирован")
	return &Database{conn: conn}, nil
}

func (d *Database) Close() error {
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}

// Now proves liveness by checking out a dedicated connection and asking
// the server for its clock.
func (d *Database) Now(ctx context.Context) (time.Time, error) {
	conn, err := d.conn.Conn(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer conn.Close()

	var now time.Time
	if err := conn.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
