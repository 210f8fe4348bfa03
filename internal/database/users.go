package database

import (
	"context"
	"database/sql"
	"errors"
)

// CreateUser inserts a new user row and returns the assigned id.
// A duplicate login violates the unique constraint and surfaces as a plain
// error; callers map it to their registration failure response.
func (d *Database) CreateUser(ctx context.Context, login, hashedPassword string) (User, error) {
	var u User
	err := d.conn.QueryRowContext(ctx,
		"INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id, login",
		login, hashedPassword,
	).Scan(&u.ID, &u.Login)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (d *Database) GetUserByLogin(ctx context.Context, login string) (User, error) {
	var u User
	err := d.conn.QueryRowContext(ctx,
		"SELECT id, login, password FROM users WHERE login = $1",
		login,
	).Scan(&u.ID, &u.Login, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
