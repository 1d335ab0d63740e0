package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SignToken issues an HS256 access token for the given user. Token
// issuance is not part of the API surface; this exists for the seeder and
// for tests exercising the access gate.
func SignToken(secret string, userID uint, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    "access",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
