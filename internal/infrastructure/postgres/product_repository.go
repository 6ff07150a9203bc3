package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario/internal/domain/entity"
	"github.com/jhoicas/inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const selectProducts = `
	SELECT id, nombre, COALESCE(descripcion, ''), cantidad, precio, COALESCE(categoria, '')
	FROM productos`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q     Querier
	close func()
}

// NewProductRepository construye el adaptador de persistencia para productos sobre el pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{q: pool, close: pool.Close}
}

// Create persiste un nuevo producto y devuelve el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO productos (nombre, descripcion, cantidad, precio, categoria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Quantity, product.Price, product.Category,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert product", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, selectProducts+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
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
	return r.query(ctx, "list products", selectProducts+` ORDER BY id`)
}

// Update reemplaza todos los campos mutables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, categoria = $4, precio = $5, cantidad = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Category, product.Price, product.Quantity,
	)
	if err != nil {
		return 0, translate("update product", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SearchByName busca la subcadena distinguiendo mayúsculas (strpos no interpreta comodines).
func (r *ProductRepo) SearchByName(ctx context.Context, text string) ([]*entity.Product, error) {
	return r.query(ctx, "search products by name",
		selectProducts+` WHERE strpos(nombre, $1) > 0 ORDER BY id`, text)
}

// SearchByCategory busca la subcadena en la categoría almacenada.
func (r *ProductRepo) SearchByCategory(ctx context.Context, text string) ([]*entity.Product, error) {
	return r.query(ctx, "search products by category",
		selectProducts+` WHERE strpos(categoria, $1) > 0 ORDER BY id`, text)
}

// ListLowStock devuelve los productos con cantidad <= limit.
func (r *ProductRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.query(ctx, "list low stock",
		selectProducts+` WHERE cantidad <= $1 ORDER BY id`, limit)
}

// Count devuelve el total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Close cierra el pool.
func (r *ProductRepo) Close() error {
	if r.close != nil {
		r.close()
	}
	return nil
}

func (r *ProductRepo) query(ctx context.Context, op, sql string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price, &p.Category); err != nil {
		return nil, err
	}
	return &p, nil
}
