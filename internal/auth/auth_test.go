package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentnest/server/internal/apperrors"
)

const testSecret = "test-secret"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("pass2021.not.secure", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pass2021.not.secure", hash)

	assert.NoError(t, CheckPassword(hash, "pass2021.not.secure"))

	err = CheckPassword(hash, "wrong-password")
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func setupGateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	router := gin.New()
	router.Use(Middleware(testSecret, logger))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	return router
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	router := setupGateRouter(t)

	token, err := SignToken(testSecret, 7, time.Hour)
	require.NoError(t, err)

	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId": 7}`, w.Body.String())
}

func TestMiddlewareRejections(t *testing.T) {
	router := setupGateRouter(t)

	expired, err := SignToken(testSecret, 7, -time.Hour)
	require.NoError(t, err)

	wrongSecret, err := SignToken("other-secret", 7, time.Hour)
	require.NoError(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(7),
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	refreshString, err := refresh.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"Missing header", ""},
		{"Not a bearer header", "Basic abc"},
		{"Garbage token", "Bearer not.a.token"},
		{"Expired token", "Bearer " + expired},
		{"Wrong secret", "Bearer " + wrongSecret},
		{"Wrong token type", "Bearer " + refreshString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doProtected(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}
