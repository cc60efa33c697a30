// domain/models/push_subscription.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription - one Web Push endpoint registered by a user's browser or
// device. Endpoint is unique; re-subscribing upserts by endpoint. Rows are
// deleted on unsubscribe or when delivery reports the endpoint gone.
type PushSubscription struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Endpoint string    `json:"endpoint" gorm:"type:text;not null;uniqueIndex:idx_push_subscriptions_endpoint"`

	// Client key material, opaque to the server.
	P256dh string `json:"p256dh" gorm:"type:text;not null"`
	Auth   string `json:"auth" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
