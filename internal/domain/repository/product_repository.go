package repository

import (
	"context"

	"github.com/jhoicas/inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Es el único acceso al estado persistido; cada escritura es una sola sentencia confirmada al instante.
type ProductRepository interface {
	// Create inserta el producto y devuelve el ID asignado por el almacén.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindByID devuelve cero o un producto.
	FindByID(ctx context.Context, id int64) ([]*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update reemplaza todos los campos mutables; devuelve filas afectadas (0 o 1).
	Update(ctx context.Context, product *entity.Product) (int64, error)
	// Delete elimina por ID; devuelve filas afectadas (0 o 1).
	Delete(ctx context.Context, id int64) (int64, error)
	// SearchByName y SearchByCategory buscan subcadenas distinguiendo mayúsculas.
	SearchByName(ctx context.Context, text string) ([]*entity.Product, error)
	SearchByCategory(ctx context.Context, text string) ([]*entity.Product, error)
	// ListLowStock devuelve los productos con cantidad <= limit.
	ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}
