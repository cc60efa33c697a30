// interfaces/api/middleware/auth.go
package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

const userIDKey = "user_id"

// Claims is the JWT payload. Subject carries the user id.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a JWT for the given user with the given secret and TTL.
func GenerateToken(userID uuid.UUID, username, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a JWT string and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Protected returns the bearer-token middleware. On success the verified
// user id is stored in locals under "user_id" as a uuid.UUID.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == "" || tokenStr == header {
			// Browsers cannot set headers on websocket upgrades; allow the
			// token as a query parameter on that path.
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			return apperrors.Unauthorized("missing bearer token")
		}

		claims, err := ParseToken(tokenStr, secret)
		if err != nil {
			return apperrors.Unauthorized("invalid or expired token")
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return apperrors.Unauthorized("malformed token subject")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// GetUserUUID reads the authenticated user id placed in locals by Protected.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.Unauthorized("not authenticated")
	}
	return userID, nil
}
