package repository

import "github.com/facturapro/facturapro-api/internal/domain/entity"

// ProductRepository acceso a la colección de productos.
// Update y Delete sobre un ID inexistente son no-op silenciosos (comportamiento
// documentado del almacén: el que llama garantiza la existencia).
type ProductRepository interface {
	List() ([]entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Create(p *entity.Product) error
	Update(p *entity.Product) error
	Delete(id string) error
}
