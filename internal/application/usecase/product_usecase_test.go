package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/application/usecase"
	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
	"github.com/jortizdev/stockvista-api/internal/domain/stock"
)

func newProductUseCase(repo *fakeProductRepo) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(repo, nil, 30)
}

func TestCreate_AplicaDefaultsYNormalizaSKU(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Cemento Portland",
		SKU:      "cem-001",
		Quantity: 40,
		Price:    decimal.NewFromInt(350),
	})
	require.NoError(t, err)

	assert.Equal(t, "CEM-001", out.SKU, "el SKU se normaliza a mayúsculas")
	assert.Equal(t, usecase.DefaultReorderLevel, out.ReorderLevel,
		"sin reorderLevel explícito aplica el default de 10")
	assert.NotEmpty(t, out.ID)
	assert.Nil(t, out.LastSoldAt, "un producto nuevo nunca se ha vendido")
	assert.Equal(t, stock.StatusInStock, out.Status)
}

func TestCreate_SKUDuplicado(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Cemento", SKU: "CEM-001", Quantity: 1, Price: decimal.NewFromInt(350),
	})
	require.NoError(t, err)

	// Mismo SKU con distinta capitalización sigue siendo duplicado.
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Cemento gris", SKU: "cem-001", Quantity: 5, Price: decimal.NewFromInt(360),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	uc := newProductUseCase(&fakeProductRepo{})
	negReorder := -1

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"nombre vacío", dto.CreateProductRequest{SKU: "X", Quantity: 1, Price: decimal.NewFromInt(1)}},
		{"sku vacío", dto.CreateProductRequest{Name: "X", Quantity: 1, Price: decimal.NewFromInt(1)}},
		{"cantidad negativa", dto.CreateProductRequest{Name: "X", SKU: "X", Quantity: -1, Price: decimal.NewFromInt(1)}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", SKU: "X", Quantity: 1, Price: decimal.NewFromInt(-5)}},
		{"reorden negativo", dto.CreateProductRequest{Name: "X", SKU: "X", Quantity: 1, Price: decimal.NewFromInt(1), ReorderLevel: &negReorder}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestStats_KPIsDelDashboard(t *testing.T) {
	now := time.Now()
	recent := soldAt(now.Add(-time.Hour))
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "a", SKU: "A", Name: "A", Quantity: 40, ReorderLevel: 10, Price: decimal.NewFromInt(100), LastSoldAt: recent},
		{ID: "b", SKU: "B", Name: "B", Quantity: 5, ReorderLevel: 10, Price: decimal.NewFromInt(10), LastSoldAt: recent},
		{ID: "c", SKU: "C", Name: "C", Quantity: 0, ReorderLevel: 10, Price: decimal.NewFromInt(50), LastSoldAt: recent},
		{ID: "d", SKU: "D", Name: "D", Quantity: 8, ReorderLevel: 4, Price: decimal.NewFromInt(20)}, // nunca vendido
	}}
	uc := newProductUseCase(repo)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalProducts)
	// Solo B es low/critical; C está out-of-stock y no cuenta como low.
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.DeadStockCount, "solo D (nunca vendido)")
	// 40*100 + 5*10 + 0*50 + 8*20 = 4210
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(4210)), "valor total %s", stats.TotalValue)
}

func TestDeadStockReport_ValoresYOrden(t *testing.T) {
	now := time.Now()
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "fresh", SKU: "F", Name: "Fresco", Quantity: 10, ReorderLevel: 5,
			Price: decimal.NewFromInt(10), LastSoldAt: soldAt(now.Add(-24 * time.Hour))},
		{ID: "stale", SKU: "S", Name: "Estancado", Quantity: 4, ReorderLevel: 5,
			Price: decimal.NewFromInt(100), LastSoldAt: soldAt(now.Add(-45 * 24 * time.Hour))},
		{ID: "never", SKU: "N", Name: "Nunca", Quantity: 2, ReorderLevel: 5,
			Price: decimal.NewFromInt(50)},
	}}
	uc := newProductUseCase(repo)

	report, err := uc.DeadStockReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Items, 2, "el producto con venta reciente no aparece")
	assert.Equal(t, "N", report.Items[0].SKU, "los nunca vendidos van primero")
	assert.True(t, report.Items[0].NeverSold)
	assert.Equal(t, "S", report.Items[1].SKU)
	assert.Equal(t, 45, report.Items[1].DaysSinceLastSale)
	// Capital inmovilizado: 4*100 + 2*50 = 500.
	assert.True(t, report.TotalDeadStockValue.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 30, report.WindowDays)
}

func TestSearch_DelegaAlPipeline(t *testing.T) {
	now := time.Now()
	recent := soldAt(now.Add(-time.Hour))
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "a", SKU: "CEM-001", Name: "Cemento", Quantity: 40, ReorderLevel: 10, Price: decimal.NewFromInt(350), LastSoldAt: recent},
		{ID: "b", SKU: "VAR-038", Name: "Varilla", Quantity: 5, ReorderLevel: 10, Price: decimal.NewFromInt(120), LastSoldAt: recent},
	}}
	uc := newProductUseCase(repo)

	out, err := uc.Search(context.Background(), dto.SearchRequest{Status: "low-stock"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "VAR-038", out[0].SKU)
	assert.Equal(t, stock.StatusCritical, out[0].Status,
		"la respuesta lleva la clasificación del producto")
}
