package ports

import (
	"context"

	"github.com/jortizdev/stockvista-api/internal/application/dto"
)

// DeadStockPDFGenerator puerto de salida para exportar el reporte de stock
// muerto como documento PDF.
type DeadStockPDFGenerator interface {
	GenerateDeadStockPDF(ctx context.Context, report *dto.DeadStockReport) ([]byte, error)
}
