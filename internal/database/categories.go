package database

import (
	"context"
	"database/sql"
	"errors"
)

func (d *Database) GetUserCategories(ctx context.Context, userID int) ([]Category, error) {
	rows, err := d.conn.QueryContext(ctx,
		"SELECT id, name FROM categories WHERE user_id = $1",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		c := Category{UserID: userID}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryName resolves a category's display name, scoped to its owner.
func (d *Database) GetCategoryName(ctx context.Context, categoryID, userID int) (string, error) {
	var name string
	err := d.conn.QueryRowContext(ctx,
		"SELECT name FROM categories WHERE id = $1 AND user_id = $2",
		categoryID, userID,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}
