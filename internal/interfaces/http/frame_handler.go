package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/application/usecase"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// FrameHandler maneja las peticiones HTTP para el catálogo de monturas (protegido).
type FrameHandler struct {
	uc *usecase.FrameUseCase
}

// NewFrameHandler construye el handler.
func NewFrameHandler(uc *usecase.FrameUseCase) *FrameHandler {
	return &FrameHandler{uc: uc}
}

// Create godoc
// @Summary      Crear montura
// @Tags         frames
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFrameRequest  true  "Datos de la montura"
// @Success      201   {object}  dto.FrameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/frames [post]
func (h *FrameHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFrameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y name son requeridos"})
	}
	out, err := h.uc.Create(ScopeFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener montura por ID
// @Tags         frames
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la montura"
// @Success      200  {object}  dto.FrameResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/frames/{id} [get]
func (h *FrameHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo de monturas
// @Tags         frames
// @Security     Bearer
// @Produce      json
// @Param        brand       query  string  false  "Filtrar por marca"
// @Param        frame_type  query  string  false  "Filtrar por tipo"
// @Param        color       query  string  false  "Filtrar por color"
// @Param        material    query  string  false  "Filtrar por material"
// @Param        search      query  string  false  "Busca en nombre, código y marca"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.FrameResponse
// @Router       /api/frames [get]
func (h *FrameHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.FrameFilter{
		Brand:     c.Query("brand"),
		FrameType: c.Query("frame_type"),
		Color:     c.Query("color"),
		Material:  c.Query("material"),
		Search:    c.Query("search"),
		Limit:     limit,
		Offset:    offset,
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar montura
// @Tags         frames
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la montura"
// @Param        body  body  dto.UpdateFrameRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FrameResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/frames/{id} [put]
func (h *FrameHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateFrameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(ScopeFrom(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
