package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/inventario/internal/application/dto"
)

// ReportUseCase exporta reportes a disco. Sin directorio configurado no hace nada.
type ReportUseCase struct {
	generator LowStockReportGenerator
	dir       string
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(generator LowStockReportGenerator, dir string) *ReportUseCase {
	return &ReportUseCase{generator: generator, dir: dir, now: time.Now}
}

// Enabled indica si hay destino configurado para exportar.
func (uc *ReportUseCase) Enabled() bool {
	return uc != nil && uc.generator != nil && uc.dir != ""
}

// ExportLowStock escribe el PDF del reporte de bajo stock y devuelve la ruta del archivo.
func (uc *ReportUseCase) ExportLowStock(ctx context.Context, threshold int, items []dto.ProductResponse) (string, error) {
	if !uc.Enabled() {
		return "", nil
	}
	doc, err := uc.generator.GenerateLowStockPDF(ctx, threshold, items)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de reportes: %w", err)
	}
	path := filepath.Join(uc.dir, fmt.Sprintf("bajo_stock_%s.pdf", uc.now().Format("20060102_150405")))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("escribir reporte: %w", err)
	}
	return path, nil
}
