package entity

import "github.com/shopspring/decimal"

// Settings es el perfil de negocio (registro único de configuración).
// TaxRate es el IVA por defecto como porcentaje (0–100) que aplica el flujo
// de nueva factura.
type Settings struct {
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
