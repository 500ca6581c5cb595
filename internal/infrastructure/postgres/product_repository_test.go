package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *ProductRepo
	ctx  context.Context
	now  time.Time
}

func (s *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(s.T(), err)
	s.mock = mock
	s.repo = NewProductRepository(mock)
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ProductRepoTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func (s *ProductRepoTestSuite) sampleProduct() *entity.Product {
	return &entity.Product{
		ID:           uuid.NewString(),
		SKU:          "WGT-001",
		Name:         "Widget",
		Quantity:     12,
		Price:        decimal.NewFromFloat(49.90),
		ReorderLevel: 10,
		CreatedAt:    s.now,
		UpdatedAt:    s.now,
	}
}

func (s *ProductRepoTestSuite) TestCreate_Success() {
	p := s.sampleProduct()

	s.mock.ExpectExec(`INSERT INTO products`).
		WithArgs(p.ID, p.SKU, p.Name, p.Quantity, p.Price, p.ReorderLevel, p.LastSoldAt, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.repo.Create(s.ctx, p)
	assert.NoError(s.T(), err)
}

func (s *ProductRepoTestSuite) TestCreate_DuplicateSKU() {
	p := s.sampleProduct()

	s.mock.ExpectExec(`INSERT INTO products`).
		WithArgs(p.ID, p.SKU, p.Name, p.Quantity, p.Price, p.ReorderLevel, p.LastSoldAt, p.CreatedAt, p.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"})

	err := s.repo.Create(s.ctx, p)
	assert.ErrorIs(s.T(), err, domain.ErrDuplicate)
}

func (s *ProductRepoTestSuite) TestCreate_DatabaseError() {
	p := s.sampleProduct()

	s.mock.ExpectExec(`INSERT INTO products`).
		WithArgs(p.ID, p.SKU, p.Name, p.Quantity, p.Price, p.ReorderLevel, p.LastSoldAt, p.CreatedAt, p.UpdatedAt).
		WillReturnError(errors.New("connection refused"))

	err := s.repo.Create(s.ctx, p)
	assert.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "connection refused")
}

func (s *ProductRepoTestSuite) TestGetByID_Success() {
	p := s.sampleProduct()

	s.mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
		WithArgs(p.ID).
		WillReturnRows(productRows().AddRow(
			p.ID, p.SKU, p.Name, p.Quantity, p.Price, p.ReorderLevel, p.LastSoldAt, p.CreatedAt, p.UpdatedAt,
		))

	got, err := s.repo.GetByID(s.ctx, p.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), p.SKU, got.SKU)
	assert.Equal(s.T(), p.Quantity, got.Quantity)
	assert.True(s.T(), p.Price.Equal(got.Price))
}

func (s *ProductRepoTestSuite) TestGetByID_NotFound() {
	id := uuid.NewString()

	s.mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(productRows())

	got, err := s.repo.GetByID(s.ctx, id)
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), got, "producto inexistente debe devolver nil, nil")
}

func (s *ProductRepoTestSuite) TestGetBySKU_Success() {
	p := s.sampleProduct()

	s.mock.ExpectQuery(`SELECT .+ FROM products WHERE sku = \$1`).
		WithArgs(p.SKU).
		WillReturnRows(productRows().AddRow(
			p.ID, p.SKU, p.Name, p.Quantity, p.Price, p.ReorderLevel, p.LastSoldAt, p.CreatedAt, p.UpdatedAt,
		))

	got, err := s.repo.GetBySKU(s.ctx, p.SKU)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), p.ID, got.ID)
}

func (s *ProductRepoTestSuite) TestListAll_Success() {
	p1 := s.sampleProduct()
	p2 := s.sampleProduct()
	p2.SKU = "WGT-002"

	s.mock.ExpectQuery(`SELECT .+ FROM products ORDER BY created_at DESC`).
		WillReturnRows(productRows().
			AddRow(p1.ID, p1.SKU, p1.Name, p1.Quantity, p1.Price, p1.ReorderLevel, p1.LastSoldAt, p1.CreatedAt, p1.UpdatedAt).
			AddRow(p2.ID, p2.SKU, p2.Name, p2.Quantity, p2.Price, p2.ReorderLevel, p2.LastSoldAt, p2.CreatedAt, p2.UpdatedAt))

	got, err := s.repo.ListAll(s.ctx)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), got, 2)
}

func (s *ProductRepoTestSuite) TestListAll_Empty() {
	s.mock.ExpectQuery(`SELECT .+ FROM products ORDER BY created_at DESC`).
		WillReturnRows(productRows())

	got, err := s.repo.ListAll(s.ctx)
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), got)
}

func (s *ProductRepoTestSuite) TestDecrementQuantity_Success() {
	id := uuid.NewString()

	s.mock.ExpectExec(`UPDATE products SET quantity = quantity - \$2`).
		WithArgs(id, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.repo.DecrementQuantity(s.ctx, id, 3)
	assert.NoError(s.T(), err)
}

func (s *ProductRepoTestSuite) TestDecrementQuantity_InsufficientStock() {
	id := uuid.NewString()

	// El UPDATE condicional no toca filas cuando el stock no alcanza.
	s.mock.ExpectExec(`UPDATE products SET quantity = quantity - \$2`).
		WithArgs(id, 50).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	s.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := s.repo.DecrementQuantity(s.ctx, id, 50)
	assert.ErrorIs(s.T(), err, domain.ErrInsufficientStock)
}

func (s *ProductRepoTestSuite) TestDecrementQuantity_ProductMissing() {
	id := uuid.NewString()

	s.mock.ExpectExec(`UPDATE products SET quantity = quantity - \$2`).
		WithArgs(id, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	s.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := s.repo.DecrementQuantity(s.ctx, id, 1)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *ProductRepoTestSuite) TestSetLastSold_Success() {
	id := uuid.NewString()
	ts := s.now

	s.mock.ExpectExec(`UPDATE products SET last_sold_at = \$2`).
		WithArgs(id, ts).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.repo.SetLastSold(s.ctx, id, ts)
	assert.NoError(s.T(), err)
}

func (s *ProductRepoTestSuite) TestSetLastSold_NotFound() {
	id := uuid.NewString()

	s.mock.ExpectExec(`UPDATE products SET last_sold_at = \$2`).
		WithArgs(id, s.now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.repo.SetLastSold(s.ctx, id, s.now)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "sku", "name", "quantity", "price", "reorder_level",
		"last_sold_at", "created_at", "updated_at",
	})
}
