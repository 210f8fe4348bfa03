package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types. Password hashes never appear here.

type User struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Transaction struct {
	UserID       int             `json:"user_id"`
	CategoryID   int             `json:"category_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	CategoryName string          `json:"category_name"`
}
