package stock

import (
	"sort"
	"strings"

	"github.com/jortizdev/stockvista-api/internal/domain/entity"
)

// StatusFilter valores válidos para el filtro de estado de una consulta.
type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterInStock    StatusFilter = "in-stock"
	FilterLowStock   StatusFilter = "low-stock" // cubre low y critical
	FilterOutOfStock StatusFilter = "out-of-stock"
)

// SortKey criterios de ordenamiento soportados.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByQuantityAsc  SortKey = "quantity-asc"
	SortByQuantityDesc SortKey = "quantity-desc"
	SortByValueDesc    SortKey = "value-desc" // quantity * price descendente
)

// Query consulta inmutable sobre el conjunto de productos. Se construye por
// invocación; el pipeline no guarda estado entre llamadas.
type Query struct {
	Text   string       // substring sobre name o SKU, case-insensitive; vacío = todos
	Status StatusFilter // vacío equivale a FilterAll
	SortBy SortKey      // vacío = sin reordenar (orden de entrada)
}

// Apply filtra y ordena productos según la consulta. No muta el slice de
// entrada; el ordenamiento es estable, así que claves iguales preservan el
// orden relativo original.
func Apply(products []*entity.Product, q Query) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	text := strings.ToLower(strings.TrimSpace(q.Text))
	for _, p := range products {
		if !matchText(p, text) {
			continue
		}
		if !matchStatus(p, q.Status) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, q.SortBy)
	return out
}

func matchText(p *entity.Product, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.SKU), text)
}

func matchStatus(p *entity.Product, filter StatusFilter) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	status := Classify(p.Quantity, p.ReorderLevel)
	switch filter {
	case FilterInStock:
		return status == StatusInStock
	case FilterLowStock:
		return IsUnderStocked(status)
	case FilterOutOfStock:
		return status == StatusOutOfStock
	default:
		return true
	}
}

func sortProducts(products []*entity.Product, key SortKey) {
	switch key {
	case SortByName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortByQuantityAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity < products[j].Quantity
		})
	case SortByQuantityDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity > products[j].Quantity
		})
	case SortByValueDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].StockValue().GreaterThan(products[j].StockValue())
		})
	}
}
