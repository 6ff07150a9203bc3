package usecase

import (
	"context"

	"github.com/jhoicas/inventario/internal/application/dto"
	"github.com/jhoicas/inventario/internal/domain"
	"github.com/jhoicas/inventario/internal/domain/entity"
	"github.com/jhoicas/inventario/internal/domain/repository"
	"github.com/jhoicas/inventario/internal/domain/validation"
)

// ProductUseCase casos de uso del inventario. Cada método es una unidad de trabajo de una sola escritura.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto. La categoría se normaliza y se valida contra el conjunto cerrado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, err := validation.RequireNonBlank(in.Name)
	if err != nil {
		return nil, err
	}
	category, err := validation.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Category:    category,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return toList(uc.repo.List(ctx))
}

// Update reemplaza los campos indicados y persiste los cinco campos mutables en una sola sentencia.
// La categoría no se vuelve a validar contra el conjunto cerrado.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	n, err := uc.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. ErrNotFound si no había fila con ese ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SearchByID devuelve cero o un producto.
func (uc *ProductUseCase) SearchByID(ctx context.Context, id int64) ([]dto.ProductResponse, error) {
	return toList(uc.repo.FindByID(ctx, id))
}

// SearchByName busca por subcadena del nombre (distingue mayúsculas). text no puede estar vacío.
func (uc *ProductUseCase) SearchByName(ctx context.Context, text string) ([]dto.ProductResponse, error) {
	text, err := validation.RequireNonBlank(text)
	if err != nil {
		return nil, err
	}
	return toList(uc.repo.SearchByName(ctx, text))
}

// SearchByCategory busca por subcadena de la categoría. text no puede estar vacío.
func (uc *ProductUseCase) SearchByCategory(ctx context.Context, text string) ([]dto.ProductResponse, error) {
	text, err := validation.RequireNonBlank(text)
	if err != nil {
		return nil, err
	}
	return toList(uc.repo.SearchByCategory(ctx, text))
}

// LowStock devuelve los productos con cantidad <= threshold.
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	if threshold < 0 {
		return nil, domain.ErrNegativeValue
	}
	return toList(uc.repo.ListLowStock(ctx, threshold))
}

// Count devuelve el total de productos registrados.
func (uc *ProductUseCase) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

func toList(list []*entity.Product, err error) ([]dto.ProductResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Category:    p.Category,
	}
}
