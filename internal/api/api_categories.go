package api

import (
	"net/http"
	"strconv"
)

// handleCategories serves GET /categories?user_id=…; no token is required,
// the caller supplies the user id directly (compatibility behavior).
func (cfg *APIConfig) handleCategories(w http.ResponseWriter, r *http.Request) {
	rawUserID := r.URL.Query().Get("user_id")
	if rawUserID == "" {
		respondWithError(w, http.StatusBadRequest, msgUserIDRequired, nil)
		return
	}
	userID, err := strconv.Atoi(rawUserID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, msgUserIDRequired, err)
		return
	}

	categories, err := cfg.fetchCategories(r, userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, msgCategoriesError, err)
		return
	}

	respondWithJSON(w, http.StatusOK, categories)
}

// handleGetCategories is the POST variant; the user id arrives in the body
// and the list is wrapped in a "categories" object.
func (cfg *APIConfig) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		UserID int `json:"user_id"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil || rqPayload.UserID == 0 {
		respondWithError(w, http.StatusBadRequest, msgUserIDRequired, err)
		return
	}

	categories, err := cfg.fetchCategories(r, rqPayload.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, msgCategoriesError, err)
		return
	}

	type rspSchema struct {
		Categories []Category `json:"categories"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Categories: categories})
}

func (cfg *APIConfig) fetchCategories(r *http.Request, userID int) ([]Category, error) {
	dbCategories, err := cfg.db.GetUserCategories(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(dbCategories))
	for _, c := range dbCategories {
		categories = append(categories, Category{ID: c.ID, Name: c.Name})
	}
	return categories, nil
}
