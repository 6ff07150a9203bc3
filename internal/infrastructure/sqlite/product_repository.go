package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/inventario/internal/domain"
	"github.com/jhoicas/inventario/internal/domain/entity"
	"github.com/jhoicas/inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ErrCorruptRow indica una fila que no se puede convertir en producto.
var ErrCorruptRow = errors.New("fila de producto inválida")

// productRow es la fila de la tabla productos.
type productRow struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	Nombre      string         `gorm:"column:nombre"`
	Descripcion sql.NullString `gorm:"column:descripcion"`
	Cantidad    int            `gorm:"column:cantidad"`
	Precio      float64        `gorm:"column:precio"`
	Categoria   sql.NullString `gorm:"column:categoria"`
}

func (productRow) TableName() string { return "productos" }

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto y devuelve el ID autoincremental.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	row, err := toRow(product)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, translate("insert product", err)
	}
	return row.ID, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity()
}

// FindByID devuelve el producto como lista de cero o un elemento.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) ([]*entity.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return []*entity.Product{p}, nil
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.find(ctx, "list products", r.db.WithContext(ctx))
}

// Update reemplaza nombre, descripción, cantidad, precio y categoría.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	row, err := toRow(product)
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&productRow{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"nombre":      row.Nombre,
		"descripcion": row.Descripcion,
		"categoria":   row.Categoria,
		"precio":      row.Precio,
		"cantidad":    row.Cantidad,
	})
	if res.Error != nil {
		return 0, translate("update product", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete product: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// SearchByName usa instr() para que la búsqueda distinga mayúsculas y no interprete % ni _.
func (r *ProductRepo) SearchByName(ctx context.Context, text string) ([]*entity.Product, error) {
	return r.find(ctx, "search products by name", r.db.WithContext(ctx).Where("instr(nombre, ?) > 0", text))
}

// SearchByCategory busca la subcadena en la categoría almacenada.
func (r *ProductRepo) SearchByCategory(ctx context.Context, text string) ([]*entity.Product, error) {
	return r.find(ctx, "search products by category", r.db.WithContext(ctx).Where("instr(categoria, ?) > 0", text))
}

// ListLowStock devuelve los productos con cantidad <= limit.
func (r *ProductRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.find(ctx, "list low stock", r.db.WithContext(ctx).Where("cantidad <= ?", limit))
}

// Count devuelve el total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&productRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Close libera la conexión SQLite.
func (r *ProductRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *ProductRepo) find(ctx context.Context, op string, q *gorm.DB) ([]*entity.Product, error) {
	var rows []productRow
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toEntity()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, p)
	}
	return list, nil
}

// translate convierte violaciones de CHECK en ErrInvalidInput.
func translate(op string, err error) error {
	if strings.Contains(err.Error(), "CHECK constraint failed") {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// toRow rechaza precios que no entran en un REAL finito.
func toRow(p *entity.Product) (productRow, error) {
	price := p.Price.InexactFloat64()
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return productRow{}, fmt.Errorf("%w: precio %s fuera de rango", domain.ErrInvalidInput, p.Price)
	}
	return productRow{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: sql.NullString{String: p.Description, Valid: true},
		Cantidad:    p.Quantity,
		Precio:      price,
		Categoria:   sql.NullString{String: p.Category, Valid: true},
	}, nil
}

// toEntity falla si la fila guarda un precio no finito (archivos escritos por otras versiones).
func (r productRow) toEntity() (*entity.Product, error) {
	if math.IsInf(r.Precio, 0) || math.IsNaN(r.Precio) {
		return nil, fmt.Errorf("%w: producto %d con precio no finito", ErrCorruptRow, r.ID)
	}
	return &entity.Product{
		ID:          r.ID,
		Name:        r.Nombre,
		Description: r.Descripcion.String,
		Quantity:    r.Cantidad,
		Price:       decimal.NewFromFloat(r.Precio),
		Category:    r.Categoria.String,
	}, nil
}
