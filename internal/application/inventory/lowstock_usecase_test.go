package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohazard555/sampro-api/internal/application/inventory"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(context.Context, *entity.Product) error  { return nil }
func (f *fakeProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetByCode(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Deactivate(context.Context, string) error      { return nil }
func (f *fakeProductRepo) List(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListActiveWithThreshold(context.Context) ([]*entity.Product, error) {
	return f.products, f.err
}

type fakeMovementRepo struct {
	byProduct map[string][]*entity.InventoryMovement
	failFor   map[string]error
}

func (f *fakeMovementRepo) Create(context.Context, *entity.InventoryMovement) error { return nil }
func (f *fakeMovementRepo) ListForProductWarehouse(_ context.Context, productID, _ string) ([]*entity.InventoryMovement, error) {
	if err := f.failFor[productID]; err != nil {
		return nil, err
	}
	return f.byProduct[productID], nil
}

type fakeWarehouseRepo struct {
	names map[string]string
}

func (f *fakeWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(context.Context, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) List(context.Context) ([]*entity.Warehouse, error) { return nil, nil }
func (f *fakeWarehouseRepo) GetNames(context.Context) (map[string]string, error) {
	return f.names, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func product(id string, min, stored float64) *entity.Product {
	return &entity.Product{
		ID:          id,
		Code:        "P-" + id,
		Name:        "Producto " + id,
		Unit:        "unidad",
		CostPrice:   decimal.NewFromInt(10),
		Quantity:    decimal.NewFromFloat(stored),
		MinQuantity: decimal.NewFromFloat(min),
		WarehouseID: "wh-1",
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func outMov(q float64, daysAgo int) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		Type:        entity.MovementTypeOut,
		Quantity:    decimal.NewFromFloat(q),
		Date:        time.Now().AddDate(0, 0, -daysAgo),
		WarehouseID: "wh-1",
	}
}

func newUseCase(products *fakeProductRepo, movs *fakeMovementRepo) *inventory.LowStockUseCase {
	return inventory.NewLowStockUseCase(
		products,
		movs,
		&fakeWarehouseRepo{names: map[string]string{"wh-1": "Almacén principal"}},
		logger.Nop(),
	)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestGetLowStockReport_OrdenYResumen(t *testing.T) {
	// p1 agotado (prioridad 1), p2 en el mínimo (prioridad 5),
	// p3 sobre el umbral (excluido)
	products := &fakeProductRepo{products: []*entity.Product{
		product("p2", 100, 100),
		product("p1", 100, 0),
		product("p3", 100, 500),
	}}
	movs := &fakeMovementRepo{byProduct: map[string][]*entity.InventoryMovement{}}

	report, err := newUseCase(products, movs).GetLowStockReport(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, report.Products, 2, "el producto sobre el umbral queda fuera")
	assert.Equal(t, "p1", report.Products[0].ID, "el agotado va primero")
	assert.Equal(t, 1, report.Products[0].Priority)
	assert.Equal(t, "p2", report.Products[1].ID)
	assert.Equal(t, 5, report.Products[1].Priority)

	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 1, report.CriticalCount)
	assert.Equal(t, 1, report.LowCount)
	assert.Equal(t, "Almacén principal", report.Products[0].WarehouseName)
	// p1: requiere 150 × 10; p2: requiere 50 × 10
	assert.True(t, report.TotalEstimatedCost.Equal(decimal.NewFromInt(2000)),
		"costo estimado total = 1500 + 500")
}

func TestGetLowStockReport_LimiteNoAfectaElResumen(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		product("p1", 100, 0),
		product("p2", 100, 10),
		product("p3", 100, 90),
	}}
	movs := &fakeMovementRepo{}

	report, err := newUseCase(products, movs).GetLowStockReport(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, report.Products, 1, "limit recorta la lista")
	assert.Equal(t, 3, report.TotalCount, "el resumen cubre el conjunto completo")
}

func TestGetLowStockReport_FalloPorProductoNoAbortaElLote(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		product("ok", 100, 0),
		product("roto", 100, 0),
	}}
	movs := &fakeMovementRepo{
		failFor: map[string]error{"roto": errors.New("timeout de consulta")},
	}

	report, err := newUseCase(products, movs).GetLowStockReport(context.Background(), 0)
	require.NoError(t, err, "el lote entrega resultados parciales")

	require.Len(t, report.Products, 1)
	assert.Equal(t, "ok", report.Products[0].ID)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "roto", report.Failed[0].ID)
	assert.Contains(t, report.Failed[0].Error, "timeout")
}

func TestGetLowStockReport_ConsumoDesdeElLibro(t *testing.T) {
	// 20 unidades salieron en 5 días → 4/día; current 20 → 5 días restantes
	p := product("p1", 100, 20)
	products := &fakeProductRepo{products: []*entity.Product{p}}
	movs := &fakeMovementRepo{byProduct: map[string][]*entity.InventoryMovement{
		"p1": {outMov(10, 5), outMov(10, 0)},
	}}

	report, err := newUseCase(products, movs).GetLowStockReport(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, report.Products, 1)

	got := report.Products[0]
	assert.True(t, got.ConsumptionRate.Equal(decimal.NewFromInt(4)))
	require.NotNil(t, got.DaysRemaining)
	assert.Equal(t, int64(5), *got.DaysRemaining)
	assert.Equal(t, 2, got.TotalMovements)
	require.NotNil(t, got.LastMovementDate)
}

func TestGetLowStockReport_SinProductosEvaluables(t *testing.T) {
	report, err := newUseCase(&fakeProductRepo{}, &fakeMovementRepo{}).
		GetLowStockReport(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, report.Products)
	assert.Equal(t, 0, report.TotalCount)
}
