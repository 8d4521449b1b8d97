package dto

import "github.com/shopspring/decimal"

// SettingsRequest body para PUT /api/settings (reemplazo completo).
type SettingsRequest struct {
	BusinessName string          `json:"business_name"`
	TaxID        string          `json:"tax_id"`
	Address      string          `json:"address,omitempty"`
	PostalCode   string          `json:"postal_code,omitempty"`
	City         string          `json:"city,omitempty"`
	Country      string          `json:"country,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	Website      string          `json:"website,omitempty"`
	Currency     string          `json:"currency"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	LogoURL      string          `json:"logo_url,omitempty"`
}

// SettingsResponse perfil de negocio en respuestas.
type SettingsResponse = SettingsRequest
