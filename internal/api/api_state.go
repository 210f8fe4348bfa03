package api

import (
	"log/slog"
	"net/http"
	"time"
)

// handleTest proves end-to-end liveness by asking the database for its clock.
// Unlike the JSON endpoints it speaks plain text, including on failure.
func (cfg *APIConfig) handleTest(w http.ResponseWriter, r *http.Request) {
	now, err := cfg.db.Now(r.Context())
	if err != nil {
		slog.Error("ошибка подключения к БД: " + err.Error())
		respondWithText(w, http.StatusInternalServerError, msgDBError)
		return
	}
	respondWithText(w, http.StatusOK, msgServerAlive+now.Format(time.RFC3339))
}
