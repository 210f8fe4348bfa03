// Package dtest provides request builders and an in-memory store for
// exercising the API surface in tests.
package dtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
)

// ========== MIDDLEWARE ==========

func headerJSON(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withToken(req *http.Request, token string) *http.Request {
	// raw token, no "Bearer " prefix
	req.Header.Set("Authorization", token)
	return req
}

// USER AUTH

func Register(login, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"login":"%v","password":"%v"}`, login, password))
	req := httptest.NewRequest(http.MethodPost, "/register", payload)
	return headerJSON(req)
}

func Login(login, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"login":"%v","password":"%v"}`, login, password))
	req := httptest.NewRequest(http.MethodPost, "/login", payload)
	return headerJSON(req)
}

func Protected(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token == "" {
		return req
	}
	return withToken(req, token)
}

func GetUserID(login string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"login":"%v"}`, login))
	req := httptest.NewRequest(http.MethodPost, "/get-user-id", payload)
	return headerJSON(req)
}

// CATEGORIES

func Categories(rawUserID string) *http.Request {
	path := "/categories"
	if rawUserID != "" {
		path += "?user_id=" + rawUserID
	}
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func GetCategories(userID int) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"user_id":%v}`, userID))
	req := httptest.NewRequest(http.MethodPost, "/get-categories", payload)
	return headerJSON(req)
}

// TRANSACTIONS

func GetTransactions(userID int, category, srok string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"user_id":%v,"category":"%v","srok":"%v"}`, userID, category, srok))
	req := httptest.NewRequest(http.MethodPost, "/getTransactions", payload)
	return headerJSON(req)
}

// STATE

func Test() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/test", nil)
}

func Preflight(path string) *http.Request {
	return httptest.NewRequest(http.MethodOptions, path, nil)
}
