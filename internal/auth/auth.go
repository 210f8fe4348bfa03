// Package auth provides functions for handling password hashing and JWT authentication
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost the stored hashes were produced with.
const BcryptCost = 10

// ErrInvalidToken is the single opaque error every verification failure
// collapses into; callers must not learn why a token was rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Claims carries the integer user id under the "userId" key the deployed
// clients expect.
type Claims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

func MakeJWT(userID int, tokenSecret string, expiresIn time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn).UTC()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(tokenSecret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

func ValidateJWT(tokenString, tokenSecret string) (int, error) {
	jwtClaims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method: " + token.Method.Alg())
		}
		return []byte(tokenSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return jwtClaims.UserID, nil
}

// GetRawToken reads the Authorization header verbatim. Clients send the bare
// token with no "Bearer " prefix, so no scheme stripping happens here.
func GetRawToken(headers http.Header) (string, error) {
	authSlice, ok := headers["Authorization"]
	if !ok || len(authSlice) == 0 || authSlice[0] == "" {
		return "", errors.New("authorization header missing or empty")
	}
	return authSlice[0], nil
}
