package repository

import "github.com/facturapro/facturapro-api/internal/domain/entity"

// UserRepository acceso al usuario local (login mock).
type UserRepository interface {
	GetByEmail(email string) (*entity.User, error)
}
