package localstore

import (
	"strings"

	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre el almacén local.
type UserRepository struct {
	s *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// GetByEmail devuelve el usuario local si el email coincide (sin distinguir
// mayúsculas), o nil si no.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if strings.EqualFold(r.s.user.Email, email) {
		user := r.s.user
		return &user, nil
	}
	return nil, nil
}
