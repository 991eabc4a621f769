// Package analytics contiene el caso de uso del dashboard: KPIs agregados,
// últimas facturas y el top de productos con faltante.
package analytics

import (
	"context"
	"fmt"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/application/inventory"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

const recentInvoicesCount = 5 // facturas en el widget del dashboard

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: StatsRepository (consultas agregadas read-only),
// InvoiceRepository (últimas facturas) y el motor de valoración vía
// el reporte de faltantes.
type DashboardUseCase struct {
	statsRepo   repository.StatsRepository
	invoiceRepo repository.InvoiceRepository
	lowStock    *inventory.LowStockUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	statsRepo repository.StatsRepository,
	invoiceRepo repository.InvoiceRepository,
	lowStock *inventory.LowStockUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		statsRepo:   statsRepo,
		invoiceRepo: invoiceRepo,
		lowStock:    lowStock,
	}
}

// GetSummary construye el DashboardDTO.
//
// Cuatro consultas en paralelo:
//  1. GetEntityCounts   → conteos de clientes/proveedores/productos/facturas
//  2. GetInvoiceTotals  → ventas, compras y pagos pendientes
//  3. ListRecent        → últimas facturas
//  4. GetLowStockReport → top de productos con faltante (motor de valoración)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	type countsResult struct {
		counts repository.EntityCounts
		err    error
	}
	type totalsResult struct {
		totals repository.InvoiceTotals
		err    error
	}
	type invoicesResult struct {
		invoices []*entity.Invoice
		err      error
	}
	type lowStockResult struct {
		report *dto.LowStockReportDTO
		err    error
	}

	countsCh := make(chan countsResult, 1)
	totalsCh := make(chan totalsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		counts, err := uc.statsRepo.GetEntityCounts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		totals, err := uc.statsRepo.GetInvoiceTotals(ctx)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		invoices, err := uc.invoiceRepo.ListRecent(ctx, recentInvoicesCount)
		invoicesCh <- invoicesResult{invoices, err}
	}()
	go func() {
		report, err := uc.lowStock.GetLowStockReport(ctx, inventory.DashboardTopN)
		lowStockCh <- lowStockResult{report, err}
	}()

	counts := <-countsCh
	totals := <-totalsCh
	invoices := <-invoicesCh
	lowStock := <-lowStockCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de facturas: %w", totals.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas recientes: %w", invoices.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: reporte de faltantes: %w", lowStock.err)
	}

	recent := make([]dto.RecentInvoiceDTO, 0, len(invoices.invoices))
	for _, inv := range invoices.invoices {
		recent = append(recent, dto.RecentInvoiceDTO{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceType:   inv.InvoiceType,
			TotalAmount:   inv.TotalAmount,
			Currency:      inv.Currency,
			Status:        inv.Status,
			CreatedAt:     inv.CreatedAt,
		})
	}

	return &dto.DashboardDTO{
		Stats: dto.DashboardStatsDTO{
			CustomersCount:   counts.counts.Customers,
			SuppliersCount:   counts.counts.Suppliers,
			ProductsCount:    counts.counts.Products,
			InvoicesCount:    counts.counts.Invoices,
			TotalSales:       totals.totals.TotalSales,
			TotalPurchases:   totals.totals.TotalPurchases,
			PendingPayments:  totals.totals.PendingPayments,
			LowStockProducts: counts.counts.LowStock,
		},
		RecentInvoices: recent,
		LowStock:       lowStock.report.Products,
	}, nil
}
