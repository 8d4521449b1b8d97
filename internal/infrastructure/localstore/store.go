// Package localstore implementa el almacén local de la aplicación: cuatro
// valores JSON independientes (facturas, clientes, productos, configuración)
// más el usuario local, cada uno en su propio archivo bajo el directorio de
// datos. Cada mutación serializa la colección afectada completa de forma
// síncrona; la carga ocurre una sola vez al abrir. Si una clave no existe se
// usa el dataset inicial; si está corrupta se restaura el dataset inicial y
// se sobreescribe la entrada, nunca se aborta la carga.
package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/pkg/logger"
)

// Claves lógicas del almacén; cada una se carga y guarda por separado.
const (
	keyInvoices  = "facturas"
	keyCustomers = "clientes"
	keyProducts  = "productos"
	keySettings  = "configuracion"
	keyUser      = "usuario"
)

// Store mantiene las colecciones en memoria y las espeja a disco en cada
// mutación. El mutex cubre la mutación y su serialización como una unidad.
type Store struct {
	mu  sync.RWMutex
	dir string
	log *logger.Logger

	invoices  []entity.Invoice
	customers []entity.Customer
	products  []entity.Product
	settings  entity.Settings
	user      entity.User
}

// Open carga (o siembra) todas las claves desde dir.
func Open(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, log: log}
	seed := SeedData()
	if err := load(s, keyInvoices, &s.invoices, seed.Invoices); err != nil {
		return nil, err
	}
	if err := load(s, keyCustomers, &s.customers, seed.Customers); err != nil {
		return nil, err
	}
	if err := load(s, keyProducts, &s.products, seed.Products); err != nil {
		return nil, err
	}
	if err := load(s, keySettings, &s.settings, seed.Settings); err != nil {
		return nil, err
	}
	if err := load(s, keyUser, &s.user, seed.User); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Reset descarta todas las colecciones y vuelve al dataset inicial,
// sobreescribiendo los archivos. Lo usa el comando de siembra.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := SeedData()
	s.invoices = seed.Invoices
	s.customers = seed.Customers
	s.products = seed.Products
	s.settings = seed.Settings
	s.user = seed.User

	for key, v := range map[string]any{
		keyInvoices:  s.invoices,
		keyCustomers: s.customers,
		keyProducts:  s.products,
		keySettings:  s.settings,
		keyUser:      s.user,
	} {
		if err := s.persist(key, v); err != nil {
			return err
		}
	}
	return nil
}

// load deserializa una clave en dst. Clave ausente: siembra fallback. Clave
// corrupta: se restaura el dataset inicial y se limpia la entrada.
func load[T any](s *Store, key string, dst *T, fallback T) error {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		*dst = fallback
		return s.persist(key, *dst)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Str("key", key).Err(err).
			Msg("datos persistidos corruptos; restaurando dataset inicial")
		*dst = fallback
		return s.persist(key, *dst)
	}
	return nil
}

// persist serializa el valor completo de una clave a su archivo.
func (s *Store) persist(key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), raw, 0o644)
}
