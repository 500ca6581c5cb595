package repository

import (
	"context"
	"time"

	"github.com/jortizdev/stockvista-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La unicidad de SKU la garantiza el store (constraint único); el motor de
// reportes confía en ese invariante para usar el SKU como identidad visible.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// DecrementQuantity descuenta stock de forma atómica; devuelve
	// domain.ErrInsufficientStock si el resultado quedara negativo.
	DecrementQuantity(ctx context.Context, id string, amount int) error
	SetLastSold(ctx context.Context, id string, ts time.Time) error
}
