// interfaces/api/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

const testSecret = "test-secret"

func newAuthedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if apperrors.IsCode(err, apperrors.CodeUnauthenticated) {
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/me", Protected(testSecret), func(c *fiber.Ctx) error {
		userID, err := GetUserUUID(c)
		if err != nil {
			return err
		}
		return c.SendString(userID.String())
	})
	return app
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice", testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateToken(userID, "alice", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, testSecret)
	assert.Error(t, err)
}

func TestProtectedAcceptsBearerHeader(t *testing.T) {
	app := newAuthedApp(t)
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedAcceptsQueryToken(t *testing.T) {
	// Websocket upgrades from browsers cannot carry an Authorization header.
	app := newAuthedApp(t)
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRejectsMissingAndBadTokens(t *testing.T) {
	app := newAuthedApp(t)

	cases := map[string]*http.Request{
		"no token":     httptest.NewRequest(http.MethodGet, "/me", nil),
		"garbage":      httptest.NewRequest(http.MethodGet, "/me?token=not-a-jwt", nil),
		"empty bearer": httptest.NewRequest(http.MethodGet, "/me", nil),
	}
	cases["empty bearer"].Header.Set(fiber.HeaderAuthorization, "Bearer ")

	for name, req := range cases {
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
}
