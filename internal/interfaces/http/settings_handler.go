package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/application/settings"
)

// SettingsHandler maneja monedas, tasas de cambio y configuración de empresa.
type SettingsHandler struct {
	uc *settings.UseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *settings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// ListCurrencies GET /api/currencies
func (h *SettingsHandler) ListCurrencies(c *fiber.Ctx) error {
	out, err := h.uc.ListCurrencies(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRates POST /api/exchange-rates (solo admin).
func (h *SettingsHandler) UpdateRates(c *fiber.Ctx) error {
	var in dto.UpdateRatesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateRates(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetConfig GET /api/settings
func (h *SettingsHandler) GetConfig(c *fiber.Ctx) error {
	out, err := h.uc.GetConfig(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings POST /api/settings (solo admin).
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateSettings(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
