package entity

import "github.com/shopspring/decimal"

// Product representa un producto o servicio facturable del catálogo.
// TaxRate se guarda como porcentaje (0–100), igual que lo captura el formulario.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}
