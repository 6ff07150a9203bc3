// Package validation convierte texto ingresado por el operador en valores tipados
// que respetan las invariantes del inventario. Son funciones puras; los ciclos de
// reintento viven en la capa de consola.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventario/internal/domain"
	"github.com/jhoicas/inventario/internal/domain/entity"
)

// ParseNonNegativeInt interpreta raw como entero base 10 >= 0.
func ParseNonNegativeInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q no es un entero", domain.ErrInvalidInput, raw)
	}
	if n < 0 {
		return 0, domain.ErrNegativeValue
	}
	return n, nil
}

// ParseNonNegativePrice interpreta raw como número decimal >= 0 representable como float64.
func ParseNonNegativePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q no es un número", domain.ErrInvalidInput, raw)
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("%w: %q fuera de rango", domain.ErrInvalidInput, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, domain.ErrNegativeValue
	}
	return d, nil
}

// RequireNonBlank devuelve raw sin espacios en los extremos, o ErrEmptyName si queda vacío.
func RequireNonBlank(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", domain.ErrEmptyName
	}
	return s, nil
}

// NormalizeCategory pasa a minúsculas y quita las marcas diacríticas
// (descomposición NFD y eliminación de marcas combinantes): "Almacén" -> "almacen".
func NormalizeCategory(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return s
}

// ParseCategory normaliza raw y exige que pertenezca al conjunto cerrado de categorías.
func ParseCategory(raw string) (string, error) {
	c := NormalizeCategory(raw)
	if !entity.IsCategory(c) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidCategory, raw)
	}
	return c, nil
}
