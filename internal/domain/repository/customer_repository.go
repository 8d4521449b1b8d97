package repository

import "github.com/facturapro/facturapro-api/internal/domain/entity"

// CustomerRepository acceso a la colección de clientes.
type CustomerRepository interface {
	List() ([]entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(c *entity.Customer) error
	Update(c *entity.Customer) error
	Delete(id string) error
}
