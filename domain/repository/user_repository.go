// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByIDs(ids []uuid.UUID) ([]*models.User, error)
}
