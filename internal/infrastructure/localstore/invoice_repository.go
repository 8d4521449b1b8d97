package localstore

import (
	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// InvoiceRepository implementa repository.InvoiceRepository sobre el almacén
// local. Update, Delete y SetStatus sobre un ID inexistente son no-op
// silenciosos (comportamiento documentado del almacén).
type InvoiceRepository struct {
	s *Store
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(s *Store) *InvoiceRepository {
	return &InvoiceRepository{s: s}
}

// List devuelve una copia de la colección de facturas.
func (r *InvoiceRepository) List() ([]entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Invoice, len(r.s.invoices))
	copy(out, r.s.invoices)
	return out, nil
}

// GetByID devuelve la factura o nil si no existe.
func (r *InvoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.invoices {
		if r.s.invoices[i].ID == id {
			inv := r.s.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

// Create agrega la factura a la colección. La identidad la aporta el que
// llama y debe ser única.
func (r *InvoiceRepository) Create(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices = append(r.s.invoices, *inv)
	return r.s.persist(keyInvoices, r.s.invoices)
}

// Update reemplaza el registro completo cuyo ID coincide.
func (r *InvoiceRepository) Update(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.invoices {
		if r.s.invoices[i].ID == inv.ID {
			r.s.invoices[i] = *inv
			return r.s.persist(keyInvoices, r.s.invoices)
		}
	}
	return nil
}

// Delete elimina el registro cuyo ID coincide.
func (r *InvoiceRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.invoices {
		if r.s.invoices[i].ID == id {
			r.s.invoices = append(r.s.invoices[:i], r.s.invoices[i+1:]...)
			return r.s.persist(keyInvoices, r.s.invoices)
		}
	}
	return nil
}

// SetStatus actualiza únicamente el estado de una factura.
func (r *InvoiceRepository) SetStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.invoices {
		if r.s.invoices[i].ID == id {
			r.s.invoices[i].Status = status
			return r.s.persist(keyInvoices, r.s.invoices)
		}
	}
	return nil
}
