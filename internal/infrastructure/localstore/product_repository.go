package localstore

import (
	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository sobre el almacén
// local.
type ProductRepository struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

// List devuelve una copia de la colección de productos.
func (r *ProductRepository) List() ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			p := r.s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Create agrega el producto a la colección.
func (r *ProductRepository) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, *p)
	return r.s.persist(keyProducts, r.s.products)
}

// Update reemplaza el registro completo cuyo ID coincide; no-op si no existe.
func (r *ProductRepository) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == p.ID {
			r.s.products[i] = *p
			return r.s.persist(keyProducts, r.s.products)
		}
	}
	return nil
}

// Delete elimina el registro cuyo ID coincide; no-op si no existe. Las copias
// embebidas en facturas guardadas no se tocan.
func (r *ProductRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return r.s.persist(keyProducts, r.s.products)
		}
	}
	return nil
}
