package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/facturapro/facturapro-api/internal/application/dto"
	"github.com/facturapro/facturapro-api/internal/domain"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/internal/domain/repository"
)

// SettingsUseCase casos de uso del perfil de negocio (registro único).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el perfil de negocio.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Update reemplaza el perfil completo.
func (uc *SettingsUseCase) Update(in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if in.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxRate.LessThan(decimal.Zero) || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.Settings{
		BusinessName: in.BusinessName,
		TaxID:        in.TaxID,
		Address:      in.Address,
		PostalCode:   in.PostalCode,
		City:         in.City,
		Country:      in.Country,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		Currency:     in.Currency,
		TaxRate:      in.TaxRate,
		LogoURL:      in.LogoURL,
	}
	if err := uc.repo.Update(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BusinessName: s.BusinessName,
		TaxID:        s.TaxID,
		Address:      s.Address,
		PostalCode:   s.PostalCode,
		City:         s.City,
		Country:      s.Country,
		Phone:        s.Phone,
		Email:        s.Email,
		Website:      s.Website,
		Currency:     s.Currency,
		TaxRate:      s.TaxRate,
		LogoURL:      s.LogoURL,
	}
}
