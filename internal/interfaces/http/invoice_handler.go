package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mohazard555/sampro-api/internal/application/usecase"
)

// InvoiceHandler expone las facturas almacenadas (solo lectura).
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
