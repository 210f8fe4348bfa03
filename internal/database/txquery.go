package database

import (
	"fmt"
	"strings"
	"time"
)

// TransactionFilter selects a user's transactions, optionally narrowed to one
// category and/or a date window. The zero value of the optional fields means
// "no predicate".
type TransactionFilter struct {
	UserID     int
	CategoryID *int
	Since      *time.Time
}

// Build emits the query text and its bound arguments in one step. Input
// values never appear in the SQL text itself; each predicate appends the next
// positional parameter.
func (f TransactionFilter) Build() (string, []any) {
	fragments := []string{
		"SELECT user_id, category_id, amount, date, description FROM transactions WHERE user_id = $1",
	}
	args := []any{f.UserID}

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		fragments = append(fragments, fmt.Sprintf("AND category_id = $%d", len(args)))
	}

	if f.Since != nil {
		args = append(args, *f.Since)
		fragments = append(fragments, fmt.Sprintf("AND date >= $%d::timestamp", len(args)))
	}

	fragments = append(fragments, "ORDER BY category_id, date DESC")
	return strings.Join(fragments, " "), args
}
