package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("producto no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrEmptyName       = errors.New("el nombre no puede estar vacío")
	ErrNegativeValue   = errors.New("el valor no puede ser negativo")
	ErrInvalidCategory = errors.New("categoría no encontrada")
)
