package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jhoicas/inventario/internal/application/dto"
)

// Renderer dibuja una tabla a partir de encabezados y filas ya formateadas.
type Renderer interface {
	Render(w io.Writer, headers []string, rows [][]string) error
}

var productHeaders = []string{"ID", "Nombre", "Descripción", "Cantidad", "Precio", "Categoría"}

// PriceFormat decide cómo se muestra el precio en una tabla de productos.
type PriceFormat int

const (
	PriceCurrency PriceFormat = iota // $2.50
	PriceRaw                         // 2.5
)

func productRows(items []dto.ProductResponse, format PriceFormat) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		price := p.Price.String()
		if format == PriceCurrency {
			price = "$" + p.Price.StringFixed(2)
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Description,
			strconv.Itoa(p.Quantity),
			price,
			p.Category,
		})
	}
	return rows
}

// GridRenderer dibuja tablas con bordes de caja; el ancho de columna considera caracteres anchos y tildes.
type GridRenderer struct{}

// Render implementa Renderer.
func (GridRenderer) Render(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) {
				widths[i] = max(widths[i], runewidth.StringWidth(r[i]))
			}
		}
	}

	var b strings.Builder
	b.WriteString(border(widths, "╒", "╤", "╕", "═"))
	b.WriteString(line(widths, headers))
	b.WriteString(border(widths, "╞", "╪", "╡", "═"))
	for i, r := range rows {
		if i > 0 {
			b.WriteString(border(widths, "├", "┼", "┤", "─"))
		}
		b.WriteString(line(widths, r))
	}
	b.WriteString(border(widths, "╘", "╧", "╛", "═"))

	_, err := fmt.Fprint(w, b.String())
	return err
}

func border(widths []int, left, mid, right, fill string) string {
	parts := make([]string, len(widths))
	for i, wd := range widths {
		parts[i] = strings.Repeat(fill, wd+2)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func line(widths []int, cells []string) string {
	parts := make([]string, len(widths))
	for i, wd := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = " " + runewidth.FillRight(cell, wd) + " "
	}
	return "│" + strings.Join(parts, "│") + "│\n"
}
