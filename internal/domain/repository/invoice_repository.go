package repository

import "github.com/facturapro/facturapro-api/internal/domain/entity"

// InvoiceRepository acceso a la colección de facturas.
// SetStatus es un update de conveniencia restringido al campo estado.
type InvoiceRepository interface {
	List() ([]entity.Invoice, error)
	GetByID(id string) (*entity.Invoice, error)
	Create(inv *entity.Invoice) error
	Update(inv *entity.Invoice) error
	Delete(id string) error
	SetStatus(id, status string) error
}
