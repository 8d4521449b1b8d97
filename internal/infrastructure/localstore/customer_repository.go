package localstore

import (
	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// CustomerRepository implementa repository.CustomerRepository sobre el
// almacén local.
type CustomerRepository struct {
	s *Store
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(s *Store) *CustomerRepository {
	return &CustomerRepository{s: s}
}

// List devuelve una copia de la colección de clientes.
func (r *CustomerRepository) List() ([]entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Customer, len(r.s.customers))
	copy(out, r.s.customers)
	return out, nil
}

// GetByID devuelve el cliente o nil si no existe.
func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.customers {
		if r.s.customers[i].ID == id {
			c := r.s.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

// Create agrega el cliente a la colección.
func (r *CustomerRepository) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers = append(r.s.customers, *c)
	return r.s.persist(keyCustomers, r.s.customers)
}

// Update reemplaza el registro completo cuyo ID coincide; no-op si no existe.
func (r *CustomerRepository) Update(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.customers {
		if r.s.customers[i].ID == c.ID {
			r.s.customers[i] = *c
			return r.s.persist(keyCustomers, r.s.customers)
		}
	}
	return nil
}

// Delete elimina el registro cuyo ID coincide; no-op si no existe. No hay
// borrado en cascada: las facturas que embebieron una copia del cliente no
// se alteran.
func (r *CustomerRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.customers {
		if r.s.customers[i].ID == id {
			r.s.customers = append(r.s.customers[:i], r.s.customers[i+1:]...)
			return r.s.persist(keyCustomers, r.s.customers)
		}
	}
	return nil
}
