package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/application/sales"
)

// SalesHandler maneja el registro de ventas (protegido).
type SalesHandler struct {
	uc *sales.RecordSaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.RecordSaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// RecordSale godoc
// @Summary      Registrar una venta
// @Description  Descuenta stock, agrega el asiento SALE al journal y acumula
// @Description  el resumen financiero del mes, todo en una transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.RecordSaleResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente; available trae las unidades restantes"
// @Router       /api/sales [post]
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ShopID == "" {
		in.ShopID = GetShopID(c)
	}
	out, err := h.uc.RecordSale(c.UserContext(), ScopeFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
