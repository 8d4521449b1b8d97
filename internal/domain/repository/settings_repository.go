package repository

import "github.com/facturapro/facturapro-api/internal/domain/entity"

// SettingsRepository acceso al registro único de configuración.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Update(s *entity.Settings) error
}
