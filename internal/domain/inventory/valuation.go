package inventory

import "github.com/shopspring/decimal"

// Line una existencia a valorizar: cantidad en stock y precio unitario.
type Line struct {
	Quantity int
	Price    decimal.Decimal
}

// LineValue valoriza una existencia (servicio de dominio).
// Valor = Cantidad * Precio; cantidades negativas valen cero.
func LineValue(quantity int, price decimal.Decimal) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(quantity)).Mul(price)
}

// TotalValue suma el valor de todas las existencias.
func TotalValue(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineValue(l.Quantity, l.Price))
	}
	return total
}
