package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario/internal/application/dto"
	"github.com/jhoicas/inventario/internal/infrastructure/pdf"
)

func TestGenerateLowStockPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()
	items := []dto.ProductResponse{
		{ID: 1, Name: "Leche", Description: "Entera", Quantity: 2, Price: decimal.RequireFromString("2.5"), Category: "almacen"},
		{ID: 4, Name: "Jabón", Quantity: 0, Price: decimal.RequireFromString("1.2"), Category: "perfumeria"},
	}

	doc, err := gen.GenerateLowStockPDF(context.Background(), 3, items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateLowStockPDF_Empty(t *testing.T) {
	doc, err := pdf.NewMarotoReportGenerator().GenerateLowStockPDF(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
