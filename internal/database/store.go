package database

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int
	Login    string
	Password string
}

type Category struct {
	ID     int
	UserID int
	Name   string
}

type Transaction struct {
	UserID      int
	CategoryID  int
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Store is the read/write surface the handlers depend on. *Database is the
// PostgreSQL implementation; tests substitute an in-memory one.
type Store interface {
	CreateUser(ctx context.Context, login, hashedPassword string) (User, error)
	GetUserByLogin(ctx context.Context, login string) (User, error)
	GetUserCategories(ctx context.Context, userID int) ([]Category, error)
	GetCategoryName(ctx context.Context, categoryID, userID int) (string, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	Now(ctx context.Context) (time.Time, error)
}

var _ Store = (*Database)(nil)
