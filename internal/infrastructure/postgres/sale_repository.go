package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jortizdev/stockvista-api/internal/domain/entity"
	"github.com/jortizdev/stockvista-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las ventas son un registro inmutable: solo inserción y lectura por rango.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Append registra una venta. No hay update ni delete sobre esta tabla.
func (r *SaleRepo) Append(ctx context.Context, sale *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (id, product_id, quantity, unit_price, timestamp)
		 VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.ProductID, sale.Quantity, sale.UnitPrice, sale.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListSince devuelve las ventas con timestamp >= since, de la más antigua a
// la más nueva. El orden ascendente importa: los desempates del top de
// productos respetan orden de registro.
func (r *SaleRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, product_id, quantity, unit_price, timestamp
		 FROM sales WHERE timestamp >= $1 ORDER BY timestamp ASC, id ASC`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
