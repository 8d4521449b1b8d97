// Package idgen abstrae la generación de identidades de entidad. La identidad
// la genera el cliente del almacén; un UUID garantiza unicidad incluso bajo
// creación secuencial rápida, cosa que un timestamp no puede.
package idgen

import "github.com/google/uuid"

// Generator genera identidades únicas para entidades nuevas.
type Generator interface {
	NewID() string
}

// UUID implementa Generator con UUID v4.
type UUID struct{}

// NewUUID construye el generador por defecto.
func NewUUID() UUID { return UUID{} }

// NewID devuelve un UUID v4 en texto.
func (UUID) NewID() string { return uuid.New().String() }
