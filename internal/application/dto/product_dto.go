package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para dar de alta un producto.
type CreateProductRequest struct {
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	Category    string // se normaliza y debe pertenecer al conjunto cerrado
}

// UpdateProductRequest entrada para actualizar un producto. nil = conservar el valor actual.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Quantity    *int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	Category    string
}
