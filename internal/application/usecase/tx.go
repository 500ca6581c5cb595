package usecase

import (
	"context"

	"github.com/jortizdev/stockvista-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que registrar la venta, descontar
// el stock y actualizar LastSoldAt sea una unidad atómica por producto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
