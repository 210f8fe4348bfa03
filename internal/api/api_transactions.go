package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/inekruz/dserver/internal/database"
)

// Sentinel request values. "всё" turns the category filter off; the srok
// ("term") strings select the date window.
const (
	categoryAll      = "всё"
	categoryAllLabel = "Всё"

	srokMonth   = "месяц"
	srokQuarter = "три месяца"
	srokYear    = "год"
	srokAllTime = "всё время"
)

// cutoffForSrok computes the date cutoff with calendar arithmetic, not fixed
// 30-day windows. Unrecognized values apply no cutoff, same as "всё время" —
// a quirk deployed clients rely on.
func cutoffForSrok(srok string, now time.Time) *time.Time {
	var cutoff time.Time
	switch srok {
	case srokMonth:
		cutoff = now.AddDate(0, -1, 0)
	case srokQuarter:
		cutoff = now.AddDate(0, -3, 0)
	case srokYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &cutoff
}

func (cfg *APIConfig) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		UserID   int    `json:"user_id"`
		Category string `json:"category"`
		Srok     string `json:"srok"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil || rqPayload.UserID == 0 || rqPayload.Category == "" || rqPayload.Srok == "" {
		respondWithError(w, http.StatusBadRequest, msgFieldsRequired, err)
		return
	}

	filter := database.TransactionFilter{
		UserID: rqPayload.UserID,
		Since:  cutoffForSrok(rqPayload.Srok, time.Now()),
	}

	if rqPayload.Category != categoryAll {
		categoryID, err := strconv.Atoi(rqPayload.Category)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, msgFieldsRequired, err)
			return
		}
		filter.CategoryID = &categoryID
	}

	dbTransactions, err := cfg.db.GetTransactions(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, msgTxnsError, err)
		return
	}

	// With a specific category a second lookup supplies the display name;
	// without one every row carries the literal "Всё".
	categoryName := categoryAllLabel
	if filter.CategoryID != nil {
		categoryName, err = cfg.db.GetCategoryName(r.Context(), *filter.CategoryID, rqPayload.UserID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, msgTxnsError, err)
			return
		}
	}

	transactions := make([]Transaction, 0, len(dbTransactions))
	for _, t := range dbTransactions {
		transactions = append(transactions, Transaction{
			UserID:       t.UserID,
			CategoryID:   t.CategoryID,
			Amount:       t.Amount,
			Date:         t.Date,
			Description:  t.Description,
			CategoryName: categoryName,
		})
	}

	respondWithJSON(w, http.StatusOK, transactions)
}
