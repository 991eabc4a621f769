// Package inventory contiene los casos de uso del motor de valoración de
// inventario: el reporte de faltantes para dashboard y API.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
	"github.com/mohazard555/sampro-api/internal/domain/valuation"
	"github.com/mohazard555/sampro-api/pkg/logger"
)

// maxWorkers limita el fan-out: cada producto se evalúa de forma
// independiente (sin estado compartido), así que el lote se paraleliza.
const maxWorkers = 8

// DashboardTopN productos mostrados en el widget del dashboard.
const DashboardTopN = 10

// LowStockUseCase genera el reporte de productos bajo su umbral de reorden.
// Carga el universo de productos evaluables y el libro de movimientos de cada
// uno, delega el cálculo en el motor puro (valuation) y agrega el resumen.
type LowStockUseCase struct {
	productRepo   repository.ProductRepository
	movementRepo  repository.InventoryMovementRepository
	warehouseRepo repository.WarehouseRepository
	log           *logger.Logger
	now           func() time.Time
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	warehouseRepo repository.WarehouseRepository,
	log *logger.Logger,
) *LowStockUseCase {
	return &LowStockUseCase{
		productRepo:   productRepo,
		movementRepo:  movementRepo,
		warehouseRepo: warehouseRepo,
		log:           log,
		now:           time.Now,
	}
}

// GetLowStockReport evalúa todos los productos activos con umbral definido y
// devuelve los que están bajo el mínimo, ordenados por prioridad ascendente
// (1 primero) y faltante descendente. limit > 0 recorta la lista de productos
// (el resumen siempre cubre el conjunto completo). Un fallo por producto no
// aborta el lote: el producto se reporta en failed_products.
func (uc *LowStockUseCase) GetLowStockReport(ctx context.Context, limit int) (*dto.LowStockReportDTO, error) {
	products, err := uc.productRepo.ListActiveWithThreshold(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de faltantes: listar productos: %w", err)
	}

	warehouseNames, err := uc.warehouseRepo.GetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de faltantes: nombres de almacenes: %w", err)
	}

	today := uc.now()

	type outcome struct {
		result *valuation.Result
		failed *dto.FailedProductDTO
	}

	jobs := make(chan *entity.Product)
	outs := make(chan outcome)

	workers := maxWorkers
	if len(products) < workers {
		workers = len(products)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res, err := uc.evaluateProduct(ctx, p, today)
				if err != nil {
					outs <- outcome{failed: &dto.FailedProductDTO{
						ID: p.ID, Code: p.Code, Name: p.Name, Error: err.Error(),
					}}
					continue
				}
				outs <- outcome{result: res}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, p := range products {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(outs)
	}()

	var results []*valuation.Result
	var failed []dto.FailedProductDTO
	for out := range outs {
		switch {
		case out.failed != nil:
			failed = append(failed, *out.failed)
		case out.result != nil:
			results = append(results, out.result)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	valuation.SortResults(results)

	report := &dto.LowStockReportDTO{
		Products:           make([]dto.LowStockProductDTO, 0, len(results)),
		Failed:             failed,
		TotalCount:         len(results),
		TotalEstimatedCost: decimal.Zero,
	}
	for i, r := range results {
		switch r.Severity.Level {
		case valuation.UrgencyCritical:
			report.CriticalCount++
		case valuation.UrgencyHigh:
			report.HighCount++
		case valuation.UrgencyMedium:
			report.MediumCount++
		case valuation.UrgencyLow:
			report.LowCount++
		}
		report.TotalEstimatedCost = report.TotalEstimatedCost.Add(r.Replenishment.EstimatedCost)

		if limit > 0 && i >= limit {
			continue
		}
		report.Products = append(report.Products, toLowStockDTO(r, warehouseNames))
	}
	return report, nil
}

// evaluateProduct carga el libro de un producto y lo pasa por el motor.
// Devuelve (nil, nil) si el producto no entra al reporte. Un pánico en la
// evaluación se convierte en error para no tumbar el lote.
func (uc *LowStockUseCase) evaluateProduct(ctx context.Context, p *entity.Product, today time.Time) (res *valuation.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluación del producto %s: pánico: %v", p.Code, r)
		}
	}()

	movements, err := uc.movementRepo.ListForProductWarehouse(ctx, p.ID, p.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("libro de movimientos: %w", err)
	}

	ev := valuation.Evaluate(p, movements, today)
	if ev == nil {
		return nil, nil
	}
	// Tipos fuera de la enumeración: advertencia de calidad de datos, no error
	if len(ev.Reconciliation.UnknownTypes) > 0 {
		uc.log.Warn().
			Str("product_id", p.ID).
			Str("product_code", p.Code).
			Strs("movement_types", ev.Reconciliation.UnknownTypes).
			Msg("movimientos con tipo desconocido ignorados en la valoración")
	}
	return ev.Result, nil
}

// toLowStockDTO mapea un resultado del motor al contrato JSON del reporte.
func toLowStockDTO(r *valuation.Result, warehouseNames map[string]string) dto.LowStockProductDTO {
	p := r.Product

	warehouseName := warehouseNames[p.WarehouseID]
	if warehouseName == "" {
		warehouseName = "Sin almacén"
	}
	category := p.Category
	if category == "" {
		category = "Sin categoría"
	}

	var lastMovement *string
	if r.Consumption.LastMovementDate != nil {
		s := r.Consumption.LastMovementDate.Format("2006-01-02")
		lastMovement = &s
	}
	var createdAt *string
	if !p.CreatedAt.IsZero() {
		s := p.CreatedAt.Format("2006-01-02")
		createdAt = &s
	}

	return dto.LowStockProductDTO{
		ID:   p.ID,
		Name: p.Name,
		Code: p.Code,
		Unit: p.Unit,

		CurrentQuantity:    r.Reconciliation.Current,
		CalculatedQuantity: r.Reconciliation.Calculated,
		RegisteredQuantity: r.Reconciliation.Registered,
		TotalIn:            r.Reconciliation.TotalIn,
		TotalOut:           r.Reconciliation.TotalOut,
		MinQuantity:        p.MinQuantity,

		Shortage:           r.Shortage,
		ShortagePercentage: r.ShortagePercentage,
		RequiredQuantity:   r.Replenishment.RequiredQuantity,
		EstimatedCost:      r.Replenishment.EstimatedCost,

		UrgencyLevel: r.Severity.Level,
		UrgencyText:  r.Severity.Text,
		UrgencyColor: r.Severity.Color,
		Priority:     r.Severity.Priority,

		WarehouseID:   p.WarehouseID,
		WarehouseName: warehouseName,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		Category:      category,

		LastMovementDate:      lastMovement,
		DaysSinceLastMovement: r.Consumption.DaysSinceLastMovement,
		ConsumptionRate:       r.Consumption.Rate,
		DaysRemaining:         r.Consumption.DaysRemaining,
		TotalMovements:        r.Consumption.TotalMovements,

		IsOutOfStock: r.Severity.OutOfStock,
		IsCritical:   r.Severity.Critical,
		IsVeryLow:    r.Severity.VeryLow,

		CreatedAt: createdAt,
	}
}
