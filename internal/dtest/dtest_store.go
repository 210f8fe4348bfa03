package dtest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/inekruz/dserver/internal/database"
)

// errDuplicateLogin mimics the driver error a unique-constraint violation
// produces.
var errDuplicateLogin = errors.New(`pq: duplicate key value violates unique constraint "users_login_key"`)

// Store is an in-memory database.Store. Setting Err makes every operation
// fail with it, for exercising the 500 paths.
type Store struct {
	mu           sync.Mutex
	nextUserID   int
	users        []database.User
	categories   []database.Category
	transactions []database.Transaction

	Err error
}

var _ database.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{nextUserID: 1}
}

// SEEDING

func (s *Store) AddCategory(c database.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
}

func (s *Store) AddTransaction(t database.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)
}

// STORE IMPLEMENTATION

func (s *Store) CreateUser(ctx context.Context, login, hashedPassword string) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return database.User{}, s.Err
	}

	for _, u := range s.users {
		if u.Login == login {
			return database.User{}, errDuplicateLogin
		}
	}

	u := database.User{ID: s.nextUserID, Login: login, Password: hashedPassword}
	s.nextUserID++
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return database.User{}, s.Err
	}

	for _, u := range s.users {
		if u.Login == login {
			return u, nil
		}
	}
	return database.User{}, database.ErrNotFound
}

func (s *Store) GetUserCategories(ctx context.Context, userID int) ([]database.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	categories := make([]database.Category, 0)
	for _, c := range s.categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (s *Store) GetCategoryName(ctx context.Context, categoryID, userID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}

	for _, c := range s.categories {
		if c.ID == categoryID && c.UserID == userID {
			return c.Name, nil
		}
	}
	return "", database.ErrNotFound
}

func (s *Store) GetTransactions(ctx context.Context, filter database.TransactionFilter) ([]database.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	transactions := make([]database.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.CategoryID != nil && t.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Since != nil && t.Date.Before(*filter.Since) {
			continue
		}
		transactions = append(transactions, t)
	}

	// category_id ascending, date descending, like the real query
	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].CategoryID != transactions[j].CategoryID {
			return transactions[i].CategoryID < transactions[j].CategoryID
		}
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions, nil
}

func (s *Store) Now(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return time.Time{}, s.Err
	}
	return time.Now(), nil
}
