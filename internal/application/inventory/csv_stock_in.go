package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// StockInFromCSV parsea un archivo CSV de entradas y lo aplica como un lote
// atómico. Columnas esperadas: product_id, quantity y opcionalmente
// cost_per_unit (si falta, se usa el precio de catálogo de la montura).
//
// Si alguna fila es inválida se devuelve la lista de errores por fila junto
// con domain.ErrInvalidInput y no se aplica nada. Solo alcance distribuidor,
// igual que las demás entradas de mercancía.
func (uc *StockInUseCase) StockInFromCSV(ctx context.Context, scope access.Scope, shopID string, r io.Reader) (*dto.ShopStockInResult, []string, error) {
	if !scope.AllShops() {
		return nil, nil, domain.ErrForbidden
	}
	if shopID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, nil, err
	}
	if shop == nil {
		return nil, nil, domain.ErrNotFound
	}

	lines, rowErrs, err := uc.parseCSV(r)
	if err != nil {
		return nil, nil, err
	}
	if len(rowErrs) > 0 {
		return nil, rowErrs, domain.ErrInvalidInput
	}
	if len(lines) == 0 {
		return nil, []string{"el archivo no contiene filas de datos"}, domain.ErrInvalidInput
	}

	var result *dto.ShopStockInResult
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.ShopInventoryRepository,
		txRepo repository.InventoryTransactionRepository,
		_ repository.FinancialSummaryRepository,
	) error {
		result, err = uc.applyShop(invRepo, txRepo, shop, lines, scope.UserID())
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}

// parseCSV lee el archivo completo validando fila por fila. Las monturas se
// resuelven por product_id (código comercial), no por UUID.
func (uc *StockInUseCase) parseCSV(r io.Reader) ([]stockInLine, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	productCol, okProduct := cols["product_id"]
	quantityCol, okQuantity := cols["quantity"]
	costCol, okCost := cols["cost_per_unit"]
	if !okProduct || !okQuantity {
		return nil, []string{"encabezado inválido: se requieren columnas product_id y quantity"}, nil
	}

	var lines []stockInLine
	var rowErrs []string
	rowNum := 1 // el encabezado es la fila 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: CSV malformado", rowNum))
			continue
		}

		productID := strings.TrimSpace(record[productCol])
		quantityStr := strings.TrimSpace(record[quantityCol])
		if productID == "" || quantityStr == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: faltan product_id o quantity", rowNum))
			continue
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: quantity no es un entero", rowNum))
			continue
		}
		if quantity <= 0 {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: quantity debe ser positivo", rowNum))
			continue
		}

		frame, err := uc.frameRepo.GetByProductID(productID)
		if err != nil {
			return nil, nil, err
		}
		if frame == nil {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: montura con código '%s' no existe", rowNum, productID))
			continue
		}

		cost := frame.Price
		if okCost && costCol < len(record) && strings.TrimSpace(record[costCol]) != "" {
			cost, err = decimal.NewFromString(strings.TrimSpace(record[costCol]))
			if err != nil || !cost.GreaterThan(decimal.Zero) {
				rowErrs = append(rowErrs, fmt.Sprintf("fila %d: cost_per_unit inválido", rowNum))
				continue
			}
		}

		lines = append(lines, stockInLine{
			frame:    frame,
			quantity: quantity,
			cost:     cost,
			notes:    fmt.Sprintf("Carga CSV - fila %d", rowNum),
		})
	}
	return lines, rowErrs, nil
}
