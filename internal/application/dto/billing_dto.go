package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices. Date en formato
// YYYY-MM-DD; vacío = hoy.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Date       string               `json:"date,omitempty"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea solicitada: producto y cantidad. El precio unitario
// lo fija el motor con el precio actual del producto.
type InvoiceItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// SetStatusRequest body para PATCH /api/invoices/:id/status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceResponse factura con detalle.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	Date         string                `json:"date"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	Lines        []InvoiceLineResponse `json:"lines"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	TaxTotal     decimal.Decimal       `json:"tax_total"`
	Total        decimal.Decimal       `json:"total"`
	Status       string                `json:"status"`
	CreatedAt    string                `json:"created_at"`
}

// InvoiceLineResponse línea de detalle en la respuesta, con la copia del
// producto vigente al emitir.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CreateCustomerRequest body para POST /api/customers (y PUT /:id).
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	TaxID      string `json:"tax_id"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TaxID      string `json:"tax_id"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
