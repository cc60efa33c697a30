// testutil/db.go
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pairchat/gofiber-dm-api/domain/models"
)

var userSeq atomic.Int64

// NewTestDB opens a private in-memory sqlite database with the full schema
// migrated. Each call gets its own database, so tests never share state.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Relationship{},
		&models.Message{},
		&models.PushSubscription{},
	))
	return db
}

// NewUser inserts a user with a unique username and returns it.
func NewUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := userSeq.Add(1)
	user := &models.User{
		ID:           uuid.New(),
		Username:     fmt.Sprintf("user%d", n),
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "x",
		DisplayName:  fmt.Sprintf("User %d", n),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
