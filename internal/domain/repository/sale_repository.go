package repository

import (
	"context"
	"time"

	"github.com/jortizdev/stockvista-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// El log de ventas es append-only: las agregaciones se recalculan desde él.
type SaleRepository interface {
	Append(ctx context.Context, sale *entity.Sale) error
	ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error)
}
