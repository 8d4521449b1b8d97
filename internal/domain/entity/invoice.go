package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Cualquier estado puede pasar a cualquier otro por
// acción explícita del usuario; no hay estado terminal.
const (
	StatusPending   = "pendiente"
	StatusPaid      = "pagada"
	StatusCancelled = "cancelada"
)

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid || s == StatusCancelled
}

// InvoiceLine es una línea de detalle de una factura. Product es una copia
// desnormalizada del producto en el momento de agregar la línea: ediciones o
// bajas posteriores del producto no alteran facturas ya guardadas.
type InvoiceLine struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Product   Product         `json:"product"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Invoice representa una factura guardada. Customer es una copia desnormalizada
// del cliente en el momento de la emisión.
type Invoice struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"` // FAC-YYYYMMDD-NNN
	Date       time.Time       `json:"date"`   // fecha de emisión
	CustomerID string          `json:"customer_id"`
	Customer   Customer        `json:"customer"`
	Lines      []InvoiceLine   `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}
