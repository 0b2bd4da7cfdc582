package repository

import (
	"context"

	"github.com/jhoicas/hardware-store/internal/domain/entity"
)

// DatabaseRepository define el puerto de persistencia de la tienda (DIP).
// Load y Save trabajan con las tres colecciones completas; el formato es responsabilidad del adaptador.
type DatabaseRepository interface {
	// Load devuelve el snapshot guardado, o uno vacío si aún no existe.
	Load(ctx context.Context) (*entity.Snapshot, error)
	// Save reemplaza el contenido guardado por snap.
	Save(ctx context.Context, snap *entity.Snapshot) error
}

// Quarantiner lo implementan los adaptadores que pueden apartar un contenido rechazado al cargar,
// para que el primer Save de una sesión vacía no lo sobrescriba.
type Quarantiner interface {
	// Quarantine mueve el contenido actual fuera del lugar que usa Save y devuelve dónde quedó.
	Quarantine(ctx context.Context) (string, error)
}
