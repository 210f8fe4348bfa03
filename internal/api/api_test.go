package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inekruz/dserver/internal/auth"
	"github.com/inekruz/dserver/internal/database"
	"github.com/inekruz/dserver/internal/dtest"
)

// ---------------
// HELPER FUNCS
// ---------------

const testSecret = "very-secret-secret"

func newTestMux(store database.Store) http.Handler {
	cfg := &APIConfig{db: store, secret: testSecret}
	return SetupMux(cfg)
}

func Call(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func DecodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ---------------
// TESTING
// ---------------

// Register, log in, and reach the protected route with the issued token
func Test_RegisterLoginProtected(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	w := Call(mux, dtest.Register("alice", "p@ss"))
	assert.Equal(t, http.StatusCreated, w.Code)
	body := DecodeBody(t, w)
	assert.Equal(t, "Пользователь зарегистрирован", body["message"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "alice", user["login"])

	w = Call(mux, dtest.Login("alice", "p@ss"))
	assert.Equal(t, http.StatusOK, w.Code)
	body = DecodeBody(t, w)
	assert.Equal(t, "Успешный вход", body["message"])
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	w = Call(mux, dtest.Protected(token))
	assert.Equal(t, http.StatusOK, w.Code)
	body = DecodeBody(t, w)
	assert.Equal(t, "Доступ разрешён", body["message"])
	assert.Equal(t, float64(1), body["userId"])
}

func Test_RegisterMissingFields(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "Empty password", req: dtest.Register("alice", "")},
		{name: "Empty login", req: dtest.Register("", "p@ss")},
		{name: "Empty body", req: httptest.NewRequest(http.MethodPost, "/register", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Call(mux, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Логин и пароль обязательны.", DecodeBody(t, w)["message"])
		})
	}
}

// Duplicate logins keep returning 500, for compatibility with deployed clients
func Test_RegisterDuplicateLogin(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	w := Call(mux, dtest.Register("alice", "p@ss"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = Call(mux, dtest.Register("alice", "other"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ошибка регистрации пользователя", DecodeBody(t, w)["message"])
}

// Unknown login and wrong password must be indistinguishable on the wire
func Test_LoginEnumerationSafe(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	w := Call(mux, dtest.Register("alice", "p@ss"))
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPass := Call(mux, dtest.Login("alice", "x"))
	unknownUser := Call(mux, dtest.Login("nobody", "x"))

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPass.Body.Bytes(), unknownUser.Body.Bytes())
	assert.Equal(t, "Неверный логин или пароль.", DecodeBody(t, wrongPass)["message"])
}

func Test_ProtectedTokenErrors(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	validToken, err := auth.MakeJWT(1, testSecret, time.Hour)
	require.NoError(t, err)
	expiredToken, err := auth.MakeJWT(1, testSecret, -time.Minute)
	require.NoError(t, err)
	foreignToken, err := auth.MakeJWT(1, "another-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		wantMessage string
	}{
		{name: "Absent header", token: "", wantMessage: "Токен не предоставлен"},
		{name: "Garbage token", token: "not.a.jwt", wantMessage: "Неверный токен"},
		{name: "Expired token", token: expiredToken, wantMessage: "Неверный токен"},
		{name: "Wrong secret", token: foreignToken, wantMessage: "Неверный токен"},
		{name: "Tampered signature", token: validToken[:len(validToken)-3] + "xyz", wantMessage: "Неверный токен"},
		{name: "Bearer prefix not stripped", token: "Bearer " + validToken, wantMessage: "Неверный токен"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Call(mux, dtest.Protected(tt.token))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.wantMessage, DecodeBody(t, w)["message"])
		})
	}
}

func Test_GetUserID(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	w := Call(mux, dtest.Register("alice", "p@ss"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = Call(mux, dtest.GetUserID("alice"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), DecodeBody(t, w)["user_id"])

	w = Call(mux, dtest.GetUserID("nobody"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Пользователь не найден.", DecodeBody(t, w)["message"])

	w = Call(mux, dtest.GetUserID(""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Логин обязателен.", DecodeBody(t, w)["message"])
}

func Test_Categories(t *testing.T) {
	store := dtest.NewStore()
	store.AddCategory(database.Category{ID: 7, UserID: 1, Name: "Продукты"})
	store.AddCategory(database.Category{ID: 8, UserID: 1, Name: "Транспорт"})
	store.AddCategory(database.Category{ID: 9, UserID: 2, Name: "Чужая"})
	mux := newTestMux(store)

	// query-string variant returns a bare array scoped to the user
	w := Call(mux, dtest.Categories("1"))
	assert.Equal(t, http.StatusOK, w.Code)
	var categories []Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Продукты", categories[0].Name)

	// body variant wraps the same list
	w = Call(mux, dtest.GetCategories(1))
	assert.Equal(t, http.StatusOK, w.Code)
	body := DecodeBody(t, w)
	wrapped, ok := body["categories"].([]any)
	require.True(t, ok)
	assert.Len(t, wrapped, 2)

	// missing user_id
	w = Call(mux, dtest.Categories(""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Не указан user_id.", DecodeBody(t, w)["message"])

	// a user with no categories gets an empty array, not null
	w = Call(mux, dtest.Categories("3"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func Test_CategoriesStoreError(t *testing.T) {
	store := dtest.NewStore()
	store.Err = assert.AnError
	mux := newTestMux(store)

	w := Call(mux, dtest.Categories("1"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ошибка получения категорий", DecodeBody(t, w)["message"])
}

func Test_TestEndpoint(t *testing.T) {
	store := dtest.NewStore()
	mux := newTestMux(store)

	w := Call(mux, dtest.Test())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Сервер работает. Текущее время: "))

	store.Err = assert.AnError
	w = Call(mux, dtest.Test())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ошибка подключения к базе данных", w.Body.String())
}

func Test_CORSHeadersOnEveryResponse(t *testing.T) {
	mux := newTestMux(dtest.NewStore())

	// error responses carry the headers too
	w := Call(mux, dtest.GetUserID(""))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	// preflight is accepted for any path
	w = Call(mux, dtest.Preflight("/getTransactions"))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
