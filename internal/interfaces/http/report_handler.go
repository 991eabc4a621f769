package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mohazard555/sampro-api/internal/application/accounting"
)

// ReportHandler exporta reportes contables y de inventario en PDF.
type ReportHandler struct {
	uc *accounting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *accounting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportJournal GET /api/reports/journal.pdf?currency=&type=&from=&to=
func (h *ReportHandler) ExportJournal(c *fiber.Ctx) error {
	pdf, name, err := h.uc.ExportJournal(c.UserContext(), accounting.JournalQuery{
		Currency:  c.Query("currency"),
		EntryType: c.Query("type"),
		DateFrom:  c.Query("from"),
		DateTo:    c.Query("to"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, name)
}

// ExportBalances GET /api/reports/balances.pdf
func (h *ReportHandler) ExportBalances(c *fiber.Ctx) error {
	pdf, name, err := h.uc.ExportBalances(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, name)
}

// ExportLowStock GET /api/reports/low-stock.pdf
func (h *ReportHandler) ExportLowStock(c *fiber.Ctx) error {
	pdf, name, err := h.uc.ExportLowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, name)
}

func sendPDF(c *fiber.Ctx, pdf []byte, name string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(pdf)
}
