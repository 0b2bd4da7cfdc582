package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hardware-store/internal/domain"
	rules "github.com/jhoicas/hardware-store/internal/domain/inventory"
)

// Parser convierte el valor crudo de un campo. El mensaje de error se muestra al operador.
type Parser[T any] func(raw string) (T, error)

// Ask pide f hasta que parse acepte el valor; cada rechazo se muestra y se vuelve a pedir el mismo campo.
// Solo la cancelación o un error de lectura terminan el ciclo.
func Ask[T any](ctx context.Context, in Input, out Output, f Field, parse Parser[T]) (T, error) {
	for {
		raw, err := in.Prompt(ctx, f)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		out.Show(err.Error())
	}
}

// AskOnce pide f una sola vez. Un valor rechazado se muestra y se devuelve como error.
func AskOnce[T any](ctx context.Context, in Input, out Output, f Field, parse Parser[T]) (T, error) {
	var zero T
	raw, err := in.Prompt(ctx, f)
	if err != nil {
		return zero, err
	}
	v, err := parse(raw)
	if err != nil {
		out.Show(err.Error())
		return zero, err
	}
	return v, nil
}

// fieldError rechazo de un valor; envuelve domain.ErrInvalidInput.
type fieldError struct {
	msg string
}

func (e *fieldError) Error() string { return e.msg }
func (e *fieldError) Unwrap() error { return domain.ErrInvalidInput }

func invalid(format string, args ...any) error {
	return &fieldError{msg: fmt.Sprintf(format, args...)}
}

// ── Parsers ───────────────────────────────────────────────────────────────────

func parseItemID(raw string) (string, error) {
	if !rules.ValidItemID(raw) {
		return "", invalid("ID inválido: debe tener exactamente 5 caracteres alfanuméricos.")
	}
	return raw, nil
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("Entrada inválida: debe ser un número entero.")
	}
	return n, nil
}

func parsePositiveInt(raw string) (int, error) {
	n, err := parseInt(raw)
	if err != nil {
		return 0, err
	}
	if !rules.ValidQuantity(n) {
		return 0, invalid("Cantidad inválida: debe ser mayor que 0 y como máximo %d.", rules.MaxQuantity)
	}
	return n, nil
}

// restockParser acepta cantidades que no llevan el stock actual por encima de rules.MaxQuantity.
func restockParser(current int) Parser[int] {
	return func(raw string) (int, error) {
		n, err := parsePositiveInt(raw)
		if err != nil {
			return 0, err
		}
		if !rules.CanRestock(current, n) {
			return 0, invalid("Cantidad inválida: hay %d en stock y el máximo es %d; puede agregar hasta %d.",
				current, rules.MaxQuantity, rules.MaxQuantity-current)
		}
		return n, nil
	}
}

func parseUserID(raw string) (int, error) {
	n, err := parseInt(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, invalid("ID de usuario inválido: debe ser un entero positivo.")
	}
	return n, nil
}

func parseNonNegativeDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalid("Entrada inválida: debe ser un número.")
	}
	if !rules.ValidAmount(d) {
		return decimal.Zero, invalid("Monto inválido: no puede ser negativo.")
	}
	return d, nil
}

func parseNonEmpty(raw string) (string, error) {
	if raw == "" {
		return "", invalid("El valor no puede estar vacío.")
	}
	return raw, nil
}

func parseText(raw string) (string, error) { return raw, nil }

func parseSSN(raw string) (int, error) {
	n, err := parseInt(raw)
	if err != nil {
		return 0, err
	}
	if !rules.ValidSSN(n) {
		return 0, invalid("SSN inválido: debe ser un número de 9 dígitos entre %d y %d.", rules.MinSSN, rules.MaxSSN)
	}
	return n, nil
}

// choiceParser acepta un número entre 1 y n y devuelve el índice (desde 0) de la opción.
func choiceParser(n int) Parser[int] {
	return func(raw string) (int, error) {
		i, err := parseInt(raw)
		if err != nil {
			return 0, err
		}
		if i < 1 || i > n {
			return 0, invalid("Opción inválida: elija un número entre 1 y %d.", n)
		}
		return i - 1, nil
	}
}
