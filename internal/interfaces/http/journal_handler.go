package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mohazard555/sampro-api/internal/application/accounting"
)

// JournalHandler maneja el libro diario y los saldos por moneda.
type JournalHandler struct {
	uc *accounting.JournalUseCase
}

// NewJournalHandler construye el handler.
func NewJournalHandler(uc *accounting.JournalUseCase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

// List GET /api/journal?currency=&type=&from=&to=
func (h *JournalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), accounting.JournalQuery{
		Currency:  c.Query("currency"),
		EntryType: c.Query("type"),
		DateFrom:  c.Query("from"),
		DateTo:    c.Query("to"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Balances GET /api/balances
func (h *JournalHandler) Balances(c *fiber.Ctx) error {
	out, err := h.uc.Balances(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
