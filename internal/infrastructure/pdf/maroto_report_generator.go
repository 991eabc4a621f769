// Package pdf genera los reportes contables en PDF con Maroto v2: libro
// diario, saldos por moneda y el reporte de faltantes de inventario.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mohazard555/sampro-api/internal/application/accounting"
	"github.com/mohazard555/sampro-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ accounting.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa accounting.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerateJournalPDF genera el PDF del libro diario.
func (g *MarotoReportGenerator) GenerateJournalPDF(_ context.Context, companyName string, entries []dto.JournalEntryDTO) ([]byte, error) {
	m := newDoc("Libro diario")

	m.AddRows(g.titleRows(companyName, "Libro diario")...)
	m.AddRows(tableHeader(
		headerCell("Fecha", 2, align.Left),
		headerCell("Tipo", 1, align.Left),
		headerCell("Descripción", 4, align.Left),
		headerCell("Debe", 2, align.Right),
		headerCell("Haber", 2, align.Right),
		headerCell("Moneda", 1, align.Center),
	))

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.DebitAmount)
		totalCredit = totalCredit.Add(e.CreditAmount)
		m.AddRows(row.New(6).Add(
			bodyCell(e.Date, 2, align.Left),
			bodyCell(e.Type, 1, align.Left),
			bodyCell(e.Description, 4, align.Left),
			bodyCell(g.amount(e.DebitAmount), 2, align.Right),
			bodyCell(g.amount(e.CreditAmount), 2, align.Right),
			bodyCell(e.Currency, 1, align.Center),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(7).Add(text.New("Totales", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
		bodyBoldCell(g.amount(totalDebit), 2, align.Right),
		bodyBoldCell(g.amount(totalCredit), 2, align.Right),
		col.New(1),
	))

	return render(m)
}

// GenerateBalancesPDF genera el PDF de saldos por moneda.
func (g *MarotoReportGenerator) GenerateBalancesPDF(_ context.Context, companyName string, balances []dto.CurrencyBalanceDTO) ([]byte, error) {
	m := newDoc("Saldos por moneda")

	m.AddRows(g.titleRows(companyName, "Saldos por moneda")...)
	m.AddRows(tableHeader(
		headerCell("Moneda", 2, align.Left),
		headerCell("Por cobrar", 2, align.Right),
		headerCell("Por pagar", 2, align.Right),
		headerCell("Caja", 2, align.Right),
		headerCell("Banco", 2, align.Right),
		headerCell("Neto", 2, align.Right),
	))

	for _, b := range balances {
		m.AddRows(row.New(6).Add(
			bodyCell(fmt.Sprintf("%s (%s)", b.CurrencyName, b.CurrencySymbol), 2, align.Left),
			bodyCell(g.amount(b.CustomerBalance), 2, align.Right),
			bodyCell(g.amount(b.SupplierBalance), 2, align.Right),
			bodyCell(g.amount(b.CashBalance), 2, align.Right),
			bodyCell(g.amount(b.BankBalance), 2, align.Right),
			bodyBoldCell(g.amount(b.NetBalance), 2, align.Right),
		))
	}

	return render(m)
}

// GenerateLowStockPDF genera el PDF del reporte de faltantes.
func (g *MarotoReportGenerator) GenerateLowStockPDF(_ context.Context, companyName string, report *dto.LowStockReportDTO) ([]byte, error) {
	m := newDoc("Reporte de faltantes")

	m.AddRows(g.titleRows(companyName, "Reporte de faltantes de inventario")...)

	// Resumen por severidad
	m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
		fmt.Sprintf("Total: %d   Críticos: %d   Altos: %d   Medios: %d   Bajos: %d   Costo estimado de reposición: %s",
			report.TotalCount, report.CriticalCount, report.HighCount,
			report.MediumCount, report.LowCount, g.amount(report.TotalEstimatedCost)),
		props.Text{Size: 9, Top: 1, Color: colorGray},
	))))

	m.AddRows(tableHeader(
		headerCell("Código", 1, align.Left),
		headerCell("Producto", 3, align.Left),
		headerCell("Actual", 1, align.Right),
		headerCell("Mínimo", 1, align.Right),
		headerCell("Faltante %", 1, align.Right),
		headerCell("A reponer", 1, align.Right),
		headerCell("Costo est.", 2, align.Right),
		headerCell("Urgencia", 2, align.Left),
	))

	for _, p := range report.Products {
		urgencyColor := colorGray
		if p.Priority <= 3 {
			urgencyColor = colorDanger
		}
		m.AddRows(row.New(6).Add(
			bodyCell(p.Code, 1, align.Left),
			bodyCell(p.Name, 3, align.Left),
			bodyCell(p.CurrentQuantity.String(), 1, align.Right),
			bodyCell(p.MinQuantity.String(), 1, align.Right),
			bodyCell(p.ShortagePercentage.String()+"%", 1, align.Right),
			bodyCell(p.RequiredQuantity.String(), 1, align.Right),
			bodyCell(g.amount(p.EstimatedCost), 2, align.Right),
			col.New(2).Add(text.New(p.UrgencyText, props.Text{
				Size: 8, Align: align.Left, Top: 1, Color: urgencyColor,
			})),
		))
	}

	if len(report.Failed) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Productos no evaluados por errores de datos: %d", len(report.Failed)),
			props.Text{Size: 8, Color: colorDanger, Top: 1},
		))))
	}

	return render(m)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// newDoc crea el documento A4 horizontal con la fuente y los márgenes comunes.
func newDoc(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func (g *MarotoReportGenerator) titleRows(companyName, reportTitle string) []core.Row {
	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(reportTitle, props.Text{
				Size: 10, Top: 8, Color: colorGray,
			}),
		)),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

func (g *MarotoReportGenerator) amount(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.InexactFloat64())
}

func tableHeader(cols ...core.Col) core.Row {
	return row.New(8).Add(cols...)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}

func bodyBoldCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
	}))
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
