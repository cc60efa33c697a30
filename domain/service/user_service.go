// domain/service/user_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/dto"
)

// UserService is the thin read surface other components join against.
// Profile editing and credential flows live in an external collaborator.
type UserService interface {
	Profile(id uuid.UUID) (*dto.UserBasicDTO, error)
	Search(username string) (*dto.UserBasicDTO, error)
}
