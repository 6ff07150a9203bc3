package usecase

import (
	"context"

	"github.com/jhoicas/inventario/internal/application/dto"
)

// LowStockReportGenerator genera el documento del reporte de bajo stock (puerto hacia infraestructura).
type LowStockReportGenerator interface {
	GenerateLowStockPDF(ctx context.Context, threshold int, items []dto.ProductResponse) ([]byte, error)
}
