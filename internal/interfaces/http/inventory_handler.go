package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/application/inventory"
)

// InventoryHandler maneja el reporte de faltantes y el registro de movimientos.
type InventoryHandler struct {
	lowStock  *inventory.LowStockUseCase
	movements *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(lowStock *inventory.LowStockUseCase, movements *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{lowStock: lowStock, movements: movements}
}

// LowStock godoc
// @Summary      Reporte de productos bajo el umbral de reorden
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de productos a devolver (0 = todos)"
// @Success      200  {object}  dto.LowStockReportDTO
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	report, err := h.lowStock.GetLowStockReport(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// RegisterMovement POST /api/inventory/movements
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movements.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MovementHistory GET /api/inventory/movements?product_id=&warehouse_id=
func (h *InventoryHandler) MovementHistory(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	out, err := h.movements.History(c.UserContext(), productID, warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
