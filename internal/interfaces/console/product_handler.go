package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario/internal/application/dto"
	"github.com/jhoicas/inventario/internal/application/usecase"
	"github.com/jhoicas/inventario/internal/domain"
	"github.com/jhoicas/inventario/internal/domain/validation"
	"github.com/jhoicas/inventario/pkg/logger"
)

// ProductHandler atiende cada opción del menú: pide los datos, llama al caso de uso e informa el resultado.
// Solo devuelve error cuando la entrada se cierra o no se puede escribir la salida.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	reports  *usecase.ReportUseCase
	p        *Prompter
	renderer Renderer
	log      *logger.Logger
}

// NewProductHandler construye el handler. reports puede ser nil.
func NewProductHandler(uc *usecase.ProductUseCase, reports *usecase.ReportUseCase, p *Prompter, renderer Renderer, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, reports: reports, p: p, renderer: renderer, log: log}
}

// Add da de alta un producto. Cada dato se vuelve a pedir hasta que sea válido.
func (h *ProductHandler) Add(ctx context.Context) error {
	name, err := h.p.ReadNonBlank("Ingrese el nombre del producto: ", "El nombre no puede estar vacío.")
	if err != nil {
		return err
	}
	description, err := h.p.ReadLine("Ingrese una descripción: ")
	if err != nil {
		return err
	}
	quantity, _, err := h.p.ReadNonNegativeInt("Ingrese la cantidad: ", false)
	if err != nil {
		return err
	}
	price, err := h.p.ReadNonNegativePrice("Ingrese el precio: ")
	if err != nil {
		return err
	}
	category, err := h.p.ReadCategory("Ingrese la categoría: ")
	if err != nil {
		return err
	}

	created, err := h.uc.Create(ctx, dto.CreateProductRequest{
		Name:        name,
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		Price:       price,
		Category:    category,
	})
	if err != nil {
		return h.fail("agregar producto", "No se pudo agregar el producto.", err)
	}
	h.log.Info().Int64("id", created.ID).Str("category", created.Category).Msg("producto agregado")
	h.p.Successln("Producto agregado exitosamente.")
	return nil
}

// List muestra todos los productos con el precio en formato moneda.
func (h *ProductHandler) List(ctx context.Context) error {
	items, err := h.uc.List(ctx)
	if err != nil {
		return h.fail("listar productos", "No se pudieron listar los productos.", err)
	}
	if len(items) == 0 {
		h.p.Errorln("\nNo hay productos registrados.")
		return nil
	}
	h.p.Println("\n" + h.p.style.Info("Lista de productos:"))
	return h.render(items, PriceCurrency)
}

// Update reemplaza los campos del producto; una respuesta vacía conserva el valor actual.
// Precio y cantidad se interpretan una sola vez: si no son válidos la actualización se cancela.
func (h *ProductHandler) Update(ctx context.Context) error {
	id, _, err := h.p.ReadNonNegativeInt("Ingrese el ID del producto a actualizar: ", false)
	if err != nil {
		return err
	}
	current, err := h.uc.GetByID(ctx, int64(id))
	if err != nil {
		return h.fail("obtener producto", "No se pudo obtener el producto.", err)
	}
	if current == nil {
		h.p.Errorln("\nProducto no encontrado. Verifique el ID ingresado.")
		return nil
	}

	h.p.Println("\n" + h.p.style.Prompt("Detalles actuales del producto:"))
	h.p.Println(fmt.Sprintf("ID: %d", current.ID))
	h.p.Println("Nombre: " + current.Name)
	h.p.Println("Descripción: " + current.Description)
	h.p.Println("Categoría: " + current.Category)
	h.p.Println("Precio: $" + current.Price.StringFixed(2))
	h.p.Println(fmt.Sprintf("Cantidad: %d", current.Quantity))

	var answers [5]string
	prompts := [5]string{
		"Nuevo nombre (dejar vacío para mantener el actual): ",
		"Nueva descripción (dejar vacío para mantener la actual): ",
		"Nueva categoría (dejar vacío para mantener la actual): ",
		"Nuevo precio (dejar vacío para mantener el actual): ",
		"Nueva cantidad (dejar vacío para mantener la actual): ",
	}
	for i, prompt := range prompts {
		if answers[i], err = h.p.ReadLine(h.p.style.Success(prompt)); err != nil {
			return err
		}
		answers[i] = strings.TrimSpace(answers[i])
	}

	var in dto.UpdateProductRequest
	if answers[0] != "" {
		in.Name = &answers[0]
	}
	if answers[1] != "" {
		in.Description = &answers[1]
	}
	if answers[2] != "" {
		in.Category = &answers[2]
	}
	if answers[3] != "" {
		price, err := validation.ParseNonNegativePrice(answers[3])
		if err != nil {
			h.log.Warn().Int("id", id).Str("value", answers[3]).Msg("precio inválido en actualización")
			h.p.Errorln("\n" + msgInvalidFloat)
			h.p.Errorln("No se pudo actualizar el producto.")
			return nil
		}
		in.Price = &price
	}
	if answers[4] != "" {
		quantity, err := validation.ParseNonNegativeInt(answers[4])
		if err != nil {
			h.log.Warn().Int("id", id).Str("value", answers[4]).Msg("cantidad inválida en actualización")
			h.p.Errorln("\n" + msgInvalidInt)
			h.p.Errorln("No se pudo actualizar el producto.")
			return nil
		}
		in.Quantity = &quantity
	}

	if _, err := h.uc.Update(ctx, int64(id), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.p.Errorln("\nNo se pudo actualizar el producto.")
			return nil
		}
		return h.fail("actualizar producto", "No se pudo actualizar el producto.", err)
	}
	h.log.Info().Int("id", id).Msg("producto actualizado")
	h.p.Successln("Producto actualizado correctamente.")
	return nil
}

// Delete elimina un producto por ID.
func (h *ProductHandler) Delete(ctx context.Context) error {
	id, _, err := h.p.ReadNonNegativeInt("Ingrese el ID del producto a eliminar: ", false)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(ctx, int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.p.Errorln("\nProducto no encontrado.")
			return nil
		}
		return h.fail("eliminar producto", "No se pudo eliminar el producto.", err)
	}
	h.log.Info().Int("id", id).Msg("producto eliminado")
	h.p.Successln("Producto eliminado exitosamente.")
	return nil
}

// Search busca por ID, nombre o categoría. Una opción inválida no ejecuta ninguna consulta.
func (h *ProductHandler) Search(ctx context.Context) error {
	h.p.Println("1. Buscar por ID")
	h.p.Println("2. Buscar por nombre")
	h.p.Println("3. Buscar por categoría")
	option, _, err := h.p.ReadNonNegativeInt("Seleccione una opción: ", false)
	if err != nil {
		return err
	}

	var items []dto.ProductResponse
	switch option {
	case 1:
		id, _, err := h.p.ReadNonNegativeInt("Ingrese el ID del producto: ", false)
		if err != nil {
			return err
		}
		items, err = h.uc.SearchByID(ctx, int64(id))
		if err != nil {
			return h.fail("buscar producto", "No se pudo realizar la búsqueda.", err)
		}
	case 2:
		name, err := h.p.ReadNonBlank("Ingrese el nombre del producto: ", "El nombre no puede estar vacío.")
		if err != nil {
			return err
		}
		items, err = h.uc.SearchByName(ctx, name)
		if err != nil {
			return h.fail("buscar producto", "No se pudo realizar la búsqueda.", err)
		}
	case 3:
		category, err := h.p.ReadNonBlank("Ingrese la categoría: ", "La categoría no puede estar vacía.")
		if err != nil {
			return err
		}
		items, err = h.uc.SearchByCategory(ctx, category)
		if err != nil {
			return h.fail("buscar producto", "No se pudo realizar la búsqueda.", err)
		}
	default:
		h.p.Errorln("\nOpción inválida.")
		return nil
	}

	if len(items) == 0 {
		h.p.Errorln("\nNo se encontraron productos.")
		return nil
	}
	return h.render(items, PriceRaw)
}

// LowStock muestra los productos con cantidad menor o igual al límite y, si hay destino, exporta el PDF.
func (h *ProductHandler) LowStock(ctx context.Context) error {
	threshold, _, err := h.p.ReadNonNegativeInt("Ingrese el límite de stock: ", false)
	if err != nil {
		return err
	}
	items, err := h.uc.LowStock(ctx, threshold)
	if err != nil {
		return h.fail("reporte bajo stock", "No se pudo generar el reporte.", err)
	}
	if len(items) == 0 {
		h.p.Errorln("\nNo hay productos con bajo stock.")
		return nil
	}
	h.p.Println("\n" + h.p.style.Info("Productos con bajo stock:"))
	if err := h.render(items, PriceRaw); err != nil {
		return err
	}

	if h.reports.Enabled() {
		path, err := h.reports.ExportLowStock(ctx, threshold, items)
		if err != nil {
			h.log.Error().Err(err).Msg("exportar reporte bajo stock")
			h.p.Errorln("No se pudo exportar el reporte PDF.")
			return nil
		}
		h.log.Info().Str("path", path).Int("items", len(items)).Msg("reporte bajo stock exportado")
		h.p.Println(h.p.style.Info("Reporte exportado: " + path))
	}
	return nil
}

func (h *ProductHandler) render(items []dto.ProductResponse, format PriceFormat) error {
	return h.renderer.Render(h.p.Out(), productHeaders, productRows(items, format))
}

// fail informa al operador y registra el error; el menú continúa.
func (h *ProductHandler) fail(op, message string, err error) error {
	h.log.Error().Err(err).Str("op", op).Msg("operación fallida")
	h.p.Errorln("\n" + message)
	return nil
}
