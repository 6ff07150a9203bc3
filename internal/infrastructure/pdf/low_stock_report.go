// Package pdf genera el reporte de bajo stock en PDF.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  Reporte de bajo stock     Límite + Fecha     │
//	│  ──────────────────────────────────────────   │
//	│  ID | Nombre | Descripción | Cant. | Precio | Categoría │
//	│  ──────────────────────────────────────────   │
//	│  Total de productos        Valor en stock     │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario/internal/application/dto"
	"github.com/jhoicas/inventario/internal/application/usecase"
	"github.com/jhoicas/inventario/internal/domain/inventory"
)

var _ usecase.LowStockReportGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.LowStockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateLowStockPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockPDF(_ context.Context, threshold int, items []dto.ProductResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de bajo stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(threshold, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Total de productos: %d", len(items)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Valor en stock: $"+stockValue(items).StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(threshold int, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Reporte de bajo stock", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Límite de stock: "+strconv.Itoa(threshold), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Nombre", 3, align.Left),
		h("Descripción", 3, align.Left),
		h("Cantidad", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Categoría", 2, align.Left),
	)
}

func tableRows(items []dto.ProductResponse) []core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	rows := make([]core.Row, 0, len(items))
	for _, p := range items {
		rows = append(rows, row.New(7).Add(
			cell(strconv.FormatInt(p.ID, 10), 1, align.Center),
			cell(p.Name, 3, align.Left),
			cell(p.Description, 3, align.Left),
			cell(strconv.Itoa(p.Quantity), 1, align.Center),
			cell("$"+p.Price.StringFixed(2), 2, align.Right),
			cell(p.Category, 2, align.Left),
		))
	}
	return rows
}

func stockValue(items []dto.ProductResponse) decimal.Decimal {
	lines := make([]inventory.Line, 0, len(items))
	for _, p := range items {
		lines = append(lines, inventory.Line{Quantity: p.Quantity, Price: p.Price})
	}
	return inventory.TotalValue(lines)
}
