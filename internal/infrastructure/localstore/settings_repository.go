package localstore

import (
	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// SettingsRepository implementa repository.SettingsRepository sobre el
// almacén local (registro único).
type SettingsRepository struct {
	s *Store
}

// NewSettingsRepository construye el repositorio.
func NewSettingsRepository(s *Store) *SettingsRepository {
	return &SettingsRepository{s: s}
}

// Get devuelve el perfil de negocio.
func (r *SettingsRepository) Get() (*entity.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	settings := r.s.settings
	return &settings, nil
}

// Update reemplaza el perfil completo.
func (r *SettingsRepository) Update(settings *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings = *settings
	return r.s.persist(keySettings, r.s.settings)
}
