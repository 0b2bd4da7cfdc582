package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrRoleMismatch      = errors.New("el usuario no tiene el rol requerido")
	ErrStaleIndex        = errors.New("índice desactualizado")
	ErrCancelled         = errors.New("operación cancelada por el usuario")

	// Variantes de ErrNotFound; errors.Is(err, ErrNotFound) sigue siendo true.
	ErrItemNotFound = fmt.Errorf("artículo: %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("usuario: %w", ErrNotFound)
)
