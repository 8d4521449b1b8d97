// Package billing contiene el motor de totales de factura: mantiene la
// secuencia de líneas de una factura en edición y recalcula los agregados
// (subtotal, IVA, total) desde cero tras cada mutación.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturapro/facturapro-api/internal/domain"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// NormalizeRate convierte una tasa expresada como porcentaje (16) a fracción
// (0.16). Una tasa <= 1 se asume ya fraccionaria.
func NormalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}

// Draft es una factura en edición. Los agregados se recalculan completos tras
// cada mutación; nunca se parchean incrementalmente.
type Draft struct {
	taxRate  decimal.Decimal // fracción, ej. 0.16
	nextID   func() string
	lines    []entity.InvoiceLine
	subtotal decimal.Decimal
	taxTotal decimal.Decimal
	total    decimal.Decimal
}

// NewDraft crea un borrador vacío. taxRate acepta porcentaje o fracción;
// nextID genera los IDs de línea.
func NewDraft(taxRate decimal.Decimal, nextID func() string) *Draft {
	return &Draft{
		taxRate:  NormalizeRate(taxRate),
		nextID:   nextID,
		subtotal: decimal.Zero,
		taxTotal: decimal.Zero,
		total:    decimal.Zero,
	}
}

// Lines devuelve una copia de las líneas actuales.
func (d *Draft) Lines() []entity.InvoiceLine {
	out := make([]entity.InvoiceLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Subtotal devuelve la suma de los subtotales de línea.
func (d *Draft) Subtotal() decimal.Decimal { return d.subtotal }

// TaxTotal devuelve el IVA sobre el subtotal.
func (d *Draft) TaxTotal() decimal.Decimal { return d.taxTotal }

// Total devuelve subtotal + IVA.
func (d *Draft) Total() decimal.Decimal { return d.total }

// AddLine agrega una línea con el producto indicado: cantidad 1, precio
// unitario el precio actual del producto. Con producto nil (catálogo vacío)
// es un no-op y devuelve nil.
func (d *Draft) AddLine(p *entity.Product) *entity.InvoiceLine {
	if p == nil {
		return nil
	}
	line := entity.InvoiceLine{
		ID:        d.nextID(),
		ProductID: p.ID,
		Product:   *p,
		Quantity:  1,
		UnitPrice: p.Price,
		Subtotal:  p.Price,
	}
	d.lines = append(d.lines, line)
	d.recompute()
	return &d.lines[len(d.lines)-1]
}

// RemoveLine elimina la línea con ese ID y recalcula los agregados sobre las
// restantes. ID desconocido es un no-op.
func (d *Draft) RemoveLine(lineID string) {
	kept := d.lines[:0]
	for _, line := range d.lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	d.lines = kept
	d.recompute()
}

// SetQuantity fija la cantidad de una línea y recalcula su subtotal y los
// agregados. Cantidades menores a 1 se rechazan sin modificar el estado.
func (d *Draft) SetQuantity(lineID string, quantity int64) {
	if quantity < 1 {
		return
	}
	for i := range d.lines {
		if d.lines[i].ID == lineID {
			d.lines[i].Quantity = quantity
			d.lines[i].Subtotal = d.lines[i].UnitPrice.Mul(decimal.NewFromInt(quantity))
			d.recompute()
			return
		}
	}
}

// SetProduct reemplaza el producto de una línea: actualiza la copia
// desnormalizada y el precio unitario al precio actual del producto, y
// recalcula subtotal de línea y agregados. Con producto nil es un no-op.
func (d *Draft) SetProduct(lineID string, p *entity.Product) {
	if p == nil {
		return
	}
	for i := range d.lines {
		if d.lines[i].ID == lineID {
			d.lines[i].ProductID = p.ID
			d.lines[i].Product = *p
			d.lines[i].UnitPrice = p.Price
			d.lines[i].Subtotal = p.Price.Mul(decimal.NewFromInt(d.lines[i].Quantity))
			d.recompute()
			return
		}
	}
}

// recompute recalcula los tres agregados desde la secuencia completa de
// líneas. Se invoca tras cada mutación para evitar cualquier deriva.
func (d *Draft) recompute() {
	subtotal := decimal.Zero
	for _, line := range d.lines {
		subtotal = subtotal.Add(line.Subtotal)
	}
	d.subtotal = subtotal
	d.taxTotal = subtotal.Mul(d.taxRate)
	d.total = d.subtotal.Add(d.taxTotal)
}

// ValidateForSave verifica las condiciones mínimas para guardar: cliente
// seleccionado y al menos una línea.
func (d *Draft) ValidateForSave(customerID string) error {
	if customerID == "" || len(d.lines) == 0 {
		return domain.ErrValidation
	}
	return nil
}

// Commit valida el borrador y construye la factura inmutable: estado
// pendiente, copia desnormalizada del cliente y agregados actuales. No tiene
// efectos secundarios; persistir es responsabilidad del que llama.
func (d *Draft) Commit(id string, number string, date time.Time, customer *entity.Customer, now time.Time) (*entity.Invoice, error) {
	customerID := ""
	if customer != nil {
		customerID = customer.ID
	}
	if err := d.ValidateForSave(customerID); err != nil {
		return nil, err
	}
	return &entity.Invoice{
		ID:         id,
		Number:     number,
		Date:       date,
		CustomerID: customerID,
		Customer:   *customer,
		Lines:      d.Lines(),
		Subtotal:   d.subtotal,
		TaxTotal:   d.taxTotal,
		Total:      d.total,
		Status:     entity.StatusPending,
		CreatedAt:  now,
	}, nil
}
