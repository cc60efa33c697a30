// database/migration.go
package database

import (
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigration migrates every model to the database. Tables without
// foreign keys go first.
func RunMigration(db *gorm.DB, log *zap.Logger) error {
	log.Info("running auto migration")

	err := db.AutoMigrate(
		&models.User{},

		&models.Relationship{},
		&models.Message{},
		&models.PushSubscription{},
	)
	if err != nil {
		log.Error("auto migration failed", zap.Error(err))
		return err
	}

	log.Info("auto migration complete")
	return nil
}

// CreateIndices adds indices that gorm tags do not cover.
func CreateIndices(db *gorm.DB, log *zap.Logger) error {
	log.Info("creating indices")

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_messages_receiver_unread ON messages(receiver_id, is_read) WHERE is_read = false").Error; err != nil {
		// partial indexes are a postgres feature; sqlite in tests gets the
		// plain composite index from the model tags instead
		log.Warn("partial unread index not created", zap.Error(err))
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_relationships_status ON relationships(status)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_push_subscriptions_user_id ON push_subscriptions(user_id)").Error; err != nil {
		return err
	}

	log.Info("indices ready")
	return nil
}
