package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/application/inventory"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// InventoryHandler maneja entradas de mercancía y lecturas del ledger (protegido).
type InventoryHandler struct {
	stockIn *inventory.StockInUseCase
	queries *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockIn *inventory.StockInUseCase, queries *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{stockIn: stockIn, queries: queries}
}

// StockIn godoc
// @Summary      Registrar entrada de mercancía en una tienda (solo distribuidor)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "Tienda y líneas de entrada"
// @Success      200   {object}  dto.ShopStockInResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stockIn.StockIn(c.UserContext(), ScopeFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Distribute godoc
// @Summary      Distribuir mercancía a varias tiendas en un solo lote
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DistributeRequest  true  "Distribuciones por tienda"
// @Success      200   {object}  dto.DistributeResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory/distribute [post]
func (h *InventoryHandler) Distribute(c *fiber.Ctx) error {
	var in dto.DistributeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stockIn.Distribute(c.UserContext(), ScopeFrom(c), in.Distributions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadCSV godoc
// @Summary      Cargar entradas de mercancía desde un archivo CSV (solo distribuidor)
// @Description  Columnas: product_id, quantity y opcionalmente cost_per_unit.
// @Tags         inventory
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        shop_id  query     string  true  "Tienda destino"
// @Param        file     formData  file    true  "Archivo CSV"
// @Success      200      {object}  dto.ShopStockInResult
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/inventory/upload-csv [post]
func (h *InventoryHandler) UploadCSV(c *fiber.Ctx) error {
	shopID := c.Query("shop_id")
	if shopID == "" {
		shopID = GetShopID(c)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo CSV requerido en el campo 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	out, rowErrs, err := h.stockIn.StockInFromCSV(c.UserContext(), ScopeFrom(c), shopID, file)
	if err != nil {
		if len(rowErrs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    "CSV_ERRORS",
				"message": "el archivo tiene filas inválidas; no se aplicó ninguna entrada",
				"errors":  rowErrs,
			})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListInventory godoc
// @Summary      Listar el ledger de una tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        shop_id    query  string  false  "Tienda (distribuidor); el dueño usa la suya"
// @Param        low_stock  query  bool    false  "Solo filas bajo el umbral de reposición"
// @Param        search     query  string  false  "Busca en nombre, código y marca"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.InventoryItemResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	shopID := c.Query("shop_id")
	if shopID == "" {
		shopID = GetShopID(c)
	}
	limit, offset := pageParams(c)
	filter := repository.InventoryFilter{
		LowStockOnly: c.QueryBool("low_stock", false),
		Search:       c.Query("search"),
		Limit:        limit,
		Offset:       offset,
	}
	out, err := h.queries.ListInventory(c.UserContext(), ScopeFrom(c), shopID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTransactions godoc
// @Summary      Leer el journal de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        shop_id  query  string  false  "Tienda (vacío = todas, solo distribuidor)"
// @Param        type     query  string  false  "STOCK_IN | SALE | ADJUSTMENT"
// @Param        from     query  string  false  "Desde (RFC 3339)"
// @Param        to       query  string  false  "Hasta (RFC 3339, exclusivo)"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.TransactionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.TransactionFilter{
		ShopID: c.Query("shop_id"),
		Type:   c.Query("type"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
		}
		filter.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
		}
		filter.To = t
	}
	out, err := h.queries.ListTransactions(c.UserContext(), ScopeFrom(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
