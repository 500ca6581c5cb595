package usecase_test

import (
	"context"
	"time"

	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
	"github.com/jortizdev/stockvista-api/internal/domain/repository"
)

// fakeProductRepo repositorio en memoria para tests de casos de uso.
type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range f.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) DecrementQuantity(ctx context.Context, id string, amount int) error {
	p, _ := f.GetByID(ctx, id)
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Quantity < amount {
		return domain.ErrInsufficientStock
	}
	p.Quantity -= amount
	return nil
}

func (f *fakeProductRepo) SetLastSold(ctx context.Context, id string, ts time.Time) error {
	p, _ := f.GetByID(ctx, id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.LastSoldAt = &ts
	return nil
}

// fakeSaleRepo log de ventas en memoria.
type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Append(_ context.Context, s *entity.Sale) error {
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSaleRepo) ListSince(_ context.Context, since time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if !s.Timestamp.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; si el
// callback falla simula rollback restaurando el estado previo de productos.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	snapshot := make([]entity.Product, len(f.productRepo.products))
	for i, p := range f.productRepo.products {
		snapshot[i] = *p
	}
	salesLen := len(f.saleRepo.sales)

	if err := fn(f.saleRepo, f.productRepo); err != nil {
		for i := range f.productRepo.products {
			*f.productRepo.products[i] = snapshot[i]
		}
		f.saleRepo.sales = f.saleRepo.sales[:salesLen]
		return err
	}
	return nil
}

// fakeAckStore acknowledge en memoria.
type fakeAckStore struct {
	acked map[string]bool
}

func newFakeAckStore() *fakeAckStore { return &fakeAckStore{acked: map[string]bool{}} }

func (f *fakeAckStore) Acknowledge(_ context.Context, alertID string) error {
	f.acked[alertID] = true
	return nil
}

func (f *fakeAckStore) IsAcknowledged(_ context.Context, alertID string) (bool, error) {
	return f.acked[alertID], nil
}

func (f *fakeAckStore) Filter(_ context.Context, alertIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(alertIDs))
	for _, id := range alertIDs {
		if f.acked[id] {
			out[id] = true
		}
	}
	return out, nil
}
