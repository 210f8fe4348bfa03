// Package api handles routes and their associated handlers
package api

import (
	"net/http"
)

func SetupMux(cfg *APIConfig) http.Handler {
	mux := http.NewServeMux()

	// REGISTER API HANDLERS
	// ======================

	// User authentication
	mux.HandleFunc("POST /register", cfg.handleRegister)
	mux.HandleFunc("POST /login", cfg.handleLogin)
	mux.HandleFunc("GET /protected", cfg.handleProtected)
	mux.HandleFunc("POST /get-user-id", cfg.handleGetUserID)
	// Categories
	mux.HandleFunc("GET /categories", cfg.handleCategories)
	mux.HandleFunc("POST /get-categories", cfg.handleGetCategories)
	// Transactions
	mux.HandleFunc("POST /getTransactions", cfg.handleGetTransactions)
	// Liveness
	mux.HandleFunc("GET /test", cfg.handleTest)

	// CORS wraps the whole mux so error responses and preflight
	// requests carry the headers too.
	return cfg.middlewareCORS(cfg.middlewareRequestLog(mux))
}
