package entity

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario/internal/domain"
)

// Product representa un producto del inventario. ID lo asigna el almacén y no cambia.
type Product struct {
	ID          int64
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	Category    string
}

// Validate comprueba las invariantes persistidas: nombre no vacío, cantidad y precio no negativos.
// La categoría no se valida aquí; el conjunto cerrado solo aplica al crear.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrEmptyName
	}
	if p.Quantity < 0 || p.Price.IsNegative() {
		return domain.ErrNegativeValue
	}
	return nil
}
