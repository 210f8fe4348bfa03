package database

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

func (d *Database) GetTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	query, args := filter.Build()

	rows, err := d.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		// only user_id carries a constraint in the schema; every other
		// column may be NULL and still has to come back as a row
		var (
			categoryID  sql.NullInt64
			amount      decimal.NullDecimal
			date        sql.NullTime
			description sql.NullString
		)
		if err := rows.Scan(&t.UserID, &categoryID, &amount, &date, &description); err != nil {
			return nil, err
		}
		t.CategoryID = int(categoryID.Int64)
		t.Amount = amount.Decimal
		t.Date = date.Time
		t.Description = description.String
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
