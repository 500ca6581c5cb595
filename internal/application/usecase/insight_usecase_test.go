package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/application/usecase"
	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
)

// mockLLM implementa ports.LLMService capturando el payload recibido.
type mockLLM struct {
	reply    string
	err      error
	received *dto.InsightRequest
}

func (m *mockLLM) GenerateInventoryInsights(_ context.Context, req dto.InsightRequest) (string, error) {
	m.received = &req
	return m.reply, m.err
}

func newInsightUseCase(repo *fakeProductRepo, llm *mockLLM) *usecase.InsightUseCase {
	products := usecase.NewProductUseCase(repo, nil, 30)
	return usecase.NewInsightUseCase(products, llm, 30)
}

func TestInsightGenerate_SinProductos(t *testing.T) {
	uc := newInsightUseCase(&fakeProductRepo{}, &mockLLM{reply: "no debería llamarse"})
	_, err := uc.Generate(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoProducts,
		"\"nada que analizar\" se distingue de un fallo del upstream")
}

func TestInsightGenerate_PayloadCompacto(t *testing.T) {
	now := time.Now()
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "a", SKU: "CEM-001", Name: "Cemento", Quantity: 5, ReorderLevel: 10,
			Price: decimal.NewFromInt(350), LastSoldAt: soldAt(now.Add(-72 * time.Hour))},
		{ID: "b", SKU: "PIN-100", Name: "Pintura", Quantity: 25, ReorderLevel: 8,
			Price: decimal.NewFromInt(950)}, // nunca vendido
	}}
	llm := &mockLLM{reply: "Prioriza reponer el cemento."}
	uc := newInsightUseCase(repo, llm)

	out, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Prioriza reponer el cemento.", out.Insights)

	require.NotNil(t, llm.received)
	require.Len(t, llm.received.Products, 2)
	assert.Equal(t, "critical", llm.received.Products[0].Status)
	require.NotNil(t, llm.received.Products[0].DaysSinceLastSale)
	assert.Equal(t, 3, *llm.received.Products[0].DaysSinceLastSale)
	assert.Nil(t, llm.received.Products[1].DaysSinceLastSale, "nunca vendido viaja como null")

	assert.Equal(t, 2, llm.received.Stats.TotalProducts)
	assert.Equal(t, 1, llm.received.Stats.LowStockCount)
	assert.Equal(t, 1, llm.received.Stats.DeadStockCount)
}

func TestInsightGenerate_RespuestaVacia(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "a", SKU: "A", Name: "A", Quantity: 1, ReorderLevel: 1, Price: decimal.NewFromInt(1)},
	}}
	uc := newInsightUseCase(repo, &mockLLM{reply: ""})

	_, err := uc.Generate(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoInsight,
		"éxito sin narrativa es un error propio, no un string vacío silencioso")
}

func TestInsightGenerate_PropagaErrorUpstream(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "a", SKU: "A", Name: "A", Quantity: 1, ReorderLevel: 1, Price: decimal.NewFromInt(1)},
	}}
	upstream := errors.New("groq: HTTP 503")
	uc := newInsightUseCase(repo, &mockLLM{err: upstream})

	_, err := uc.Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream, "el mensaje del upstream se conserva en la cadena")
}
