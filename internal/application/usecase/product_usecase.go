package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/application/ports"
	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
	"github.com/jortizdev/stockvista-api/internal/domain/repository"
	"github.com/jortizdev/stockvista-api/internal/domain/stock"
)

// DefaultReorderLevel umbral de stock bajo aplicado al crear un producto
// cuando el request no lo indica. Es un default de creación: la clasificación
// posterior siempre usa el ReorderLevel persistido.
const DefaultReorderLevel = 10

// ProductUseCase casos de uso de productos: alta, listados, búsqueda,
// KPIs del dashboard y reporte de stock muerto.
type ProductUseCase struct {
	repo       repository.ProductRepository
	pdf        ports.DeadStockPDFGenerator
	windowDays int // ventana de stock muerto en días
}

// NewProductUseCase construye el caso de uso. windowDays <= 0 aplica la
// ventana por defecto de 30 días.
func NewProductUseCase(repo repository.ProductRepository, pdf ports.DeadStockPDFGenerator, windowDays int) *ProductUseCase {
	if windowDays <= 0 {
		windowDays = stock.DefaultDeadStockWindowDays
	}
	return &ProductUseCase{repo: repo, pdf: pdf, windowDays: windowDays}
}

// Create crea un nuevo producto. El SKU se normaliza a mayúsculas y debe ser
// único; ReorderLevel ausente toma el default de 10.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.ToUpper(strings.TrimSpace(in.SKU))
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	reorder := DefaultReorderLevel
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		reorder = *in.ReorderLevel
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		Price:        in.Price,
		ReorderLevel: reorder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos del inventario.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search aplica el pipeline de búsqueda/filtrado/ordenamiento sobre el
// inventario. La consulta es un objeto inmutable construido por invocación.
func (uc *ProductUseCase) Search(ctx context.Context, in dto.SearchRequest) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := stock.Apply(products, stock.Query{
		Text:   in.Query,
		Status: stock.StatusFilter(in.Status),
		SortBy: stock.SortKey(in.SortBy),
	})
	return toProductResponses(filtered), nil
}

// Stats calcula los KPIs del dashboard desde el estado actual del inventario.
// lowStockCount cuenta productos low o critical (mismo criterio que el filtro
// low-stock de búsqueda); deadStockCount usa la ventana configurada.
func (uc *ProductUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.buildStats(products, time.Now()), nil
}

func (uc *ProductUseCase) buildStats(products []*entity.Product, now time.Time) *dto.StatsResponse {
	stats := &dto.StatsResponse{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range products {
		if stock.IsUnderStocked(stock.Classify(p.Quantity, p.ReorderLevel)) {
			stats.LowStockCount++
		}
		if stock.IsDeadStock(p.LastSoldAt, now, uc.windowDays) {
			stats.DeadStockCount++
		}
		stats.TotalValue = stats.TotalValue.Add(p.StockValue())
	}
	return stats
}

// DeadStockReport lista los productos sin ventas dentro de la ventana, con el
// capital inmovilizado por producto y el total del portafolio. Los nunca
// vendidos van primero; el resto ordenado del más estancado al más reciente.
func (uc *ProductUseCase) DeadStockReport(ctx context.Context) (*dto.DeadStockReport, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	report := &dto.DeadStockReport{
		Items:               []dto.DeadStockItem{},
		TotalDeadStockValue: decimal.Zero,
		WindowDays:          uc.windowDays,
	}
	for _, p := range products {
		if !stock.IsDeadStock(p.LastSoldAt, now, uc.windowDays) {
			continue
		}
		days, never := stock.DaysSinceLastSale(p.LastSoldAt, now)
		report.Items = append(report.Items, dto.DeadStockItem{
			ProductResponse:   *toProductResponse(p),
			DaysSinceLastSale: days,
			NeverSold:         never,
		})
		report.TotalDeadStockValue = report.TotalDeadStockValue.Add(p.StockValue())
	}
	sort.SliceStable(report.Items, func(i, j int) bool {
		a, b := report.Items[i], report.Items[j]
		if a.NeverSold != b.NeverSold {
			return a.NeverSold
		}
		return a.DaysSinceLastSale > b.DaysSinceLastSale
	})
	return report, nil
}

// DeadStockPDF genera el reporte de stock muerto como PDF descargable.
func (uc *ProductUseCase) DeadStockPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.DeadStockReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDeadStockPDF(ctx, report)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		Price:        p.Price,
		ReorderLevel: p.ReorderLevel,
		Status:       stock.Classify(p.Quantity, p.ReorderLevel),
		StockValue:   p.StockValue(),
		LastSoldAt:   p.LastSoldAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items
}
