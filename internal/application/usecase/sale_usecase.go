package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
	"github.com/jortizdev/stockvista-api/internal/domain/repository"
)

const (
	// DefaultTopN productos en el ranking del resumen de ventas.
	DefaultTopN = 5
	// DefaultSummaryDays período por defecto del resumen.
	DefaultSummaryDays = 30
)

// SaleUseCase registra ventas y calcula el resumen de ventas por período.
// El resumen es una derivación pura del log de ventas: puede recalcularse en
// cualquier momento sin estado propio.
type SaleUseCase struct {
	tx          TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	topN        int
}

// NewSaleUseCase construye el caso de uso. topN <= 0 aplica el default de 5.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository, productRepo repository.ProductRepository, topN int) *SaleUseCase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, productRepo: productRepo, topN: topN}
}

// Record registra una venta de forma atómica: dentro de una sola transacción
// se descuenta el stock (rechazando si es insuficiente, sin mutación parcial),
// se actualiza LastSoldAt del producto y se agrega la venta al log.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		unitPrice := in.Price
		if unitPrice.IsZero() {
			// Capturar el precio vigente del producto al momento de la venta.
			unitPrice = product.Price
		}

		now := time.Now()
		sale = &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: unitPrice,
			Timestamp: now,
		}

		// El decremento condicional en BD es la barrera final contra ventas
		// concurrentes del mismo producto: nunca persiste stock negativo.
		if err := productRepo.DecrementQuantity(ctx, product.ID, in.Quantity); err != nil {
			return err
		}
		if err := productRepo.SetLastSold(ctx, product.ID, now); err != nil {
			return err
		}
		return saleRepo.Append(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:        sale.ID,
		ProductID: sale.ProductID,
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice,
		Timestamp: sale.Timestamp,
	}, nil
}

// Summary calcula el resumen de ventas de los últimos periodDays días:
// totales, valor promedio por orden y ranking Top-N de productos.
func (uc *SaleUseCase) Summary(ctx context.Context, periodDays int) (*dto.SalesSummaryDTO, error) {
	if periodDays <= 0 {
		periodDays = DefaultSummaryDays
	}
	since := time.Now().AddDate(0, 0, -periodDays)
	sales, err := uc.saleRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := summarize(sales, products, uc.topN)
	summary.Period = fmt.Sprintf("Last %d days", periodDays)
	return summary, nil
}

// summarize es la agregación pura: cuenta transacciones y unidades, suma
// ingresos, calcula AOV (0 sin ventas, para evitar división por cero) y arma
// el Top-N agrupado por producto, ordenado por unidades desc con desempate
// por ingreso desc y, en empate total, por orden de primera aparición.
func summarize(sales []*entity.Sale, products []*entity.Product, topN int) *dto.SalesSummaryDTO {
	summary := &dto.SalesSummaryDTO{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		TopProducts:       []dto.TopProductDTO{},
	}

	names := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		names[p.ID] = p
	}

	type group struct {
		productID string
		quantity  int
		revenue   decimal.Decimal
	}
	groups := make(map[string]*group)
	var order []string // primera aparición, para desempate estable

	for _, s := range sales {
		summary.TotalSales++
		summary.TotalUnits += s.Quantity
		summary.TotalRevenue = summary.TotalRevenue.Add(s.Revenue())

		g, ok := groups[s.ProductID]
		if !ok {
			g = &group{productID: s.ProductID, revenue: decimal.Zero}
			groups[s.ProductID] = g
			order = append(order, s.ProductID)
		}
		g.quantity += s.Quantity
		g.revenue = g.revenue.Add(s.Revenue())
	}

	if summary.TotalSales > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.
			Div(decimal.NewFromInt(int64(summary.TotalSales)))
	}

	ranked := make([]*group, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, groups[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].quantity != ranked[j].quantity {
			return ranked[i].quantity > ranked[j].quantity
		}
		return ranked[i].revenue.GreaterThan(ranked[j].revenue)
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	for _, g := range ranked {
		top := dto.TopProductDTO{
			ProductID: g.productID,
			Quantity:  g.quantity,
			Revenue:   g.revenue,
		}
		if p, ok := names[g.productID]; ok {
			top.Name = p.Name
			top.SKU = p.SKU
		}
		summary.TopProducts = append(summary.TopProducts, top)
	}
	return summary
}
