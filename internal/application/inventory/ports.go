package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Clock devuelve la hora actual; se inyecta para fijar fechas en pruebas.
type Clock func() time.Time

// IDGenerator genera identificadores de transacción.
type IDGenerator func() string

// Option configura un Store.
type Option func(*Store)

// WithClock reemplaza el reloj del Store.
func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

// WithIDGenerator reemplaza el generador de IDs de transacción.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

func defaultIDGenerator() string {
	return uuid.New().String()
}
