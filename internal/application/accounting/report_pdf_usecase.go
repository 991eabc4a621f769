package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/application/inventory"
)

// ReportPDFGenerator puerto de generación de reportes PDF. La implementación
// vive en infraestructura (Maroto).
type ReportPDFGenerator interface {
	GenerateJournalPDF(ctx context.Context, companyName string, entries []dto.JournalEntryDTO) ([]byte, error)
	GenerateBalancesPDF(ctx context.Context, companyName string, balances []dto.CurrencyBalanceDTO) ([]byte, error)
	GenerateLowStockPDF(ctx context.Context, companyName string, report *dto.LowStockReportDTO) ([]byte, error)
}

// CompanyNameProvider resuelve el nombre de la empresa para el membrete.
type CompanyNameProvider interface {
	GetConfig(ctx context.Context) (*dto.CompanyConfigDTO, error)
}

// ReportUseCase orquesta la exportación de reportes a PDF.
type ReportUseCase struct {
	journal   *JournalUseCase
	lowStock  *inventory.LowStockUseCase
	settings  CompanyNameProvider
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	journal *JournalUseCase,
	lowStock *inventory.LowStockUseCase,
	settings CompanyNameProvider,
	generator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		journal:   journal,
		lowStock:  lowStock,
		settings:  settings,
		generator: generator,
	}
}

// ExportJournal genera el PDF del libro diario con el filtro dado.
func (uc *ReportUseCase) ExportJournal(ctx context.Context, q JournalQuery) ([]byte, string, error) {
	entries, err := uc.journal.List(ctx, q)
	if err != nil {
		return nil, "", err
	}
	name, err := uc.companyName(ctx)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateJournalPDF(ctx, name, entries)
	if err != nil {
		return nil, "", err
	}
	return pdf, fileName("libro-diario"), nil
}

// ExportBalances genera el PDF de saldos por moneda.
func (uc *ReportUseCase) ExportBalances(ctx context.Context) ([]byte, string, error) {
	balances, err := uc.journal.Balances(ctx)
	if err != nil {
		return nil, "", err
	}
	name, err := uc.companyName(ctx)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateBalancesPDF(ctx, name, balances)
	if err != nil {
		return nil, "", err
	}
	return pdf, fileName("saldos"), nil
}

// ExportLowStock genera el PDF del reporte de faltantes completo (sin límite).
func (uc *ReportUseCase) ExportLowStock(ctx context.Context) ([]byte, string, error) {
	report, err := uc.lowStock.GetLowStockReport(ctx, 0)
	if err != nil {
		return nil, "", err
	}
	name, err := uc.companyName(ctx)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateLowStockPDF(ctx, name, report)
	if err != nil {
		return nil, "", err
	}
	return pdf, fileName("faltantes"), nil
}

func (uc *ReportUseCase) companyName(ctx context.Context) (string, error) {
	cfg, err := uc.settings.GetConfig(ctx)
	if err != nil {
		return "", err
	}
	if cfg.CompanyName == "" {
		return "Mi Empresa", nil
	}
	return cfg.CompanyName, nil
}

func fileName(prefix string) string {
	return fmt.Sprintf("%s-%s.pdf", prefix, time.Now().Format("2006-01-02"))
}
