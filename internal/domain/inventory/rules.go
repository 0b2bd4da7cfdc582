// Package inventory contiene las reglas de dominio de la ferretería (servicios de dominio sin estado).
package inventory

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Rango válido de un SSN (9 dígitos).
const (
	MinSSN = 100000000
	MaxSSN = 999999999
)

// MaxQuantity es el stock máximo de un artículo; coincide con la columna INT de Postgres.
const MaxQuantity = math.MaxInt32

var itemIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{5}$`)

// ValidItemID indica si el ID tiene exactamente 5 caracteres alfanuméricos.
func ValidItemID(id string) bool {
	return itemIDPattern.MatchString(id)
}

// ValidSSN indica si el SSN es un entero positivo de 9 dígitos.
func ValidSSN(ssn int) bool {
	return ssn >= MinSSN && ssn <= MaxSSN
}

// ValidQuantity cantidades de alta, reposición y venta deben estar entre 1 y MaxQuantity.
func ValidQuantity(q int) bool {
	return q > 0 && q <= MaxQuantity
}

// CanRestock indica si sumar amount a current deja el stock dentro de MaxQuantity.
func CanRestock(current, amount int) bool {
	return ValidQuantity(amount) && current >= 0 && amount <= MaxQuantity-current
}

// ValidAmount precios y salarios no pueden ser negativos.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative()
}

// NameMatcher compara nombres ignorando mayúsculas/minúsculas (case folding Unicode).
type NameMatcher struct {
	fragment string
}

// NewNameMatcher prepara el fragmento a buscar.
func NewNameMatcher(fragment string) *NameMatcher {
	return &NameMatcher{fragment: fold(fragment)}
}

// Match indica si name contiene el fragmento.
func (m *NameMatcher) Match(name string) bool {
	return strings.Contains(fold(name), m.fragment)
}

// cases.Caser no es seguro para uso concurrente; se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}
