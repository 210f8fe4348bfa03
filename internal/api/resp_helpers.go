package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

func decodePayload[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	defer r.Body.Close()
	if err != nil {
		return v, fmt.Errorf("failure decoding request payload: %w", err)
	}
	return v, err
}

// respondWithError logs the underlying cause server-side and sends the fixed
// wire message as {"message": ...}; internal detail never reaches the client.
func respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	errorMessage := fmt.Sprintf("%d %s; %s", code, http.StatusText(code), msg)
	if err != nil {
		errorMessage += fmt.Sprintf(": %s", err.Error())
	}
	slog.Error(errorMessage, slog.Int("HTTP Status Code", code))

	type errorResponse struct {
		Message string `json:"message"`
	}
	respondWithJSON(w, code, errorResponse{
		Message: msg,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("could not marshal JSON for response: " + err.Error())
		w.WriteHeader(500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(data)
	if err != nil {
		slog.Error("could not write to header from JSON payload: " + err.Error())
	}
}

func respondWithText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(msg)); err != nil {
		slog.Error(err.Error())
	}
}
