package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func probeUserID(secret []byte, req *http.Request) int {
	e := echo.New()
	rec := httptest.NewRecorder()
	got := -1

	handler := Auth(secret)(func(ctx echo.Context) error {
		got = authenticatedUserID(ctx)
		return ctx.NoContent(http.StatusOK)
	})
	_ = handler(e.NewContext(req, rec))
	return got
}

func TestAuth_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	token := signToken(t, secret, jwt.MapClaims{
		"user_id": 5,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, 5, probeUserID(secret, req))
}

func TestAuth_NoHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, 0, probeUserID([]byte("test-secret"), req))
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, []byte("other-secret"), jwt.MapClaims{"user_id": 5})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, 0, probeUserID([]byte("test-secret"), req))
}

func TestAuth_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token := signToken(t, secret, jwt.MapClaims{
		"user_id": 5,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, 0, probeUserID(secret, req))
}

func TestAuth_MissingUserIDClaim(t *testing.T) {
	secret := []byte("test-secret")
	token := signToken(t, secret, jwt.MapClaims{"sub": "someone"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, 0, probeUserID(secret, req))
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler := RequestLogger(zaptest.NewLogger(t))(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
