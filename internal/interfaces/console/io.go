// Package console implementa la interfaz de operador de la ferretería: menú, un handler por comando
// y los límites de entrada/salida sobre los que se apoyan.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/hardware-store/internal/domain"
)

// CancelToken es lo que el operador escribe para abandonar la operación en curso.
const CancelToken = ":q"

// FieldKind tipo de valor que espera un campo.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInteger
	FieldFloat
	FieldConfirmation
	FieldChoice
)

// Field describe un dato a pedir al operador. Choices solo aplica a FieldChoice y se muestra numerado desde 1.
type Field struct {
	Label   string
	Kind    FieldKind
	Choices []string
}

// Input límite de entrada. Prompt devuelve el valor crudo o domain.ErrCancelled si el operador cancela.
type Input interface {
	Prompt(ctx context.Context, f Field) (string, error)
}

// Output límite de salida.
type Output interface {
	Show(text string)
}

// Terminal implementa Input y Output sobre un lector y un escritor de líneas.
type Terminal struct {
	sc *bufio.Scanner
	w  io.Writer
}

var (
	_ Input  = (*Terminal)(nil)
	_ Output = (*Terminal)(nil)
)

// NewTerminal construye la terminal; típicamente os.Stdin y os.Stdout.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{sc: bufio.NewScanner(r), w: w}
}

// Prompt muestra la etiqueta (y las opciones numeradas) y lee una línea.
// Fin de entrada o CancelToken devuelven domain.ErrCancelled.
func (t *Terminal) Prompt(ctx context.Context, f Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(f.Label)
	b.WriteString("\n")
	for i, c := range f.Choices {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, c)
	}
	fmt.Fprintf(&b, "(%s para cancelar) > ", CancelToken)
	fmt.Fprint(t.w, b.String())

	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("leer entrada: %w", err)
		}
		fmt.Fprintln(t.w)
		return "", domain.ErrCancelled
	}
	line := strings.TrimSpace(t.sc.Text())
	if line == CancelToken {
		return "", domain.ErrCancelled
	}
	return line, nil
}

// Show escribe el texto seguido de salto de línea.
func (t *Terminal) Show(text string) {
	fmt.Fprintln(t.w, text)
}
