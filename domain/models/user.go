// domain/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/types"
)

// User - a registered identity. Registration and credential flows live in an
// external service; this model exists because fanout and relationship views
// join against it.
type User struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Username        string      `json:"username" gorm:"type:varchar(50);not null;unique"`
	Email           string      `json:"email,omitempty" gorm:"type:varchar(255);unique"`
	PasswordHash    string      `json:"-" gorm:"type:text"`
	DisplayName     string      `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	ProfileImageURL string      `json:"profile_image_url,omitempty" gorm:"type:text"`
	Phone           string      `json:"phone,omitempty" gorm:"type:varchar(32)"`
	Settings        types.JSONB `json:"settings,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
