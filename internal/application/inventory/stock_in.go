package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// StockInUseCase registra entradas de mercancía al ledger de forma
// transaccional: suma a quantity_received, sobrescribe cost_per_unit (último
// costo gana) y agrega el asiento STOCK_IN al journal, todo con la fila
// bloqueada (SELECT FOR UPDATE) y Commit/Rollback atómico.
//
// Toda la validación (cantidades, costos, existencia de tienda y monturas)
// ocurre antes de abrir la transacción: un lote con una línea inválida se
// rechaza completo sin tocar ninguna fila.
type StockInUseCase struct {
	txRunner  TxRunner
	shopRepo  repository.ShopRepository
	frameRepo repository.FrameRepository
	now       Clock
}

// NewStockInUseCase construye el caso de uso. clock nil usa time.Now.
func NewStockInUseCase(
	txRunner TxRunner,
	shopRepo repository.ShopRepository,
	frameRepo repository.FrameRepository,
	clock Clock,
) *StockInUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &StockInUseCase{txRunner: txRunner, shopRepo: shopRepo, frameRepo: frameRepo, now: clock}
}

// stockInLine línea validada y resuelta, lista para aplicar dentro de la tx.
type stockInLine struct {
	frame    *entity.Frame
	quantity int
	cost     decimal.Decimal
	notes    string
}

// StockIn registra una entrada para un único par (tienda, montura).
func (uc *StockInUseCase) StockIn(ctx context.Context, scope access.Scope, in dto.StockInRequest) (*dto.ShopStockInResult, error) {
	return uc.BulkStockIn(ctx, scope, in.ShopID, in.Items, "Entrada de mercancía")
}

// BulkStockIn aplica varias líneas de entrada a una tienda en una sola
// transacción. Falla completa si cualquier línea es inválida o referencia
// una montura inexistente. Solo alcance distribuidor: el costo unitario que
// entra aquí es el que la tienda paga, y lo fija quien despacha, no quien recibe.
func (uc *StockInUseCase) BulkStockIn(ctx context.Context, scope access.Scope, shopID string, items []dto.StockInItem, notes string) (*dto.ShopStockInResult, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}
	if shopID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := uc.resolveLines(items, notes)
	if err != nil {
		return nil, err
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
		return nil, err
	}
	return result, nil
}

// Distribute aplica entradas a varias tiendas como una sola unidad de trabajo:
// si cualquier tienda o línea falla, ninguna queda aplicada. Solo alcance
// distribuidor.
func (uc *StockInUseCase) Distribute(ctx context.Context, scope access.Scope, distributions []dto.ShopDistribution) (*dto.DistributeResult, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}
	if len(distributions) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Resolver y validar todo antes de mutar: tiendas, monturas, cantidades.
	type shopBatch struct {
		shop  *entity.Shop
		lines []stockInLine
	}
	batches := make([]shopBatch, 0, len(distributions))
	for _, d := range distributions {
		if d.ShopID == "" || len(d.Items) == 0 {
			return nil, domain.ErrInvalidInput
		}
		shop, err := uc.shopRepo.GetByID(d.ShopID)
		if err != nil {
			return nil, err
		}
		if shop == nil {
			return nil, domain.ErrNotFound
		}
		lines, err := uc.resolveLines(d.Items, "Distribución masiva")
		if err != nil {
			return nil, err
		}
		batches = append(batches, shopBatch{shop: shop, lines: lines})
	}

	result := &dto.DistributeResult{}
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.ShopInventoryRepository,
		txRepo repository.InventoryTransactionRepository,
		_ repository.FinancialSummaryRepository,
	) error {
		for _, b := range batches {
			shopResult, err := uc.applyShop(invRepo, txRepo, b.shop, b.lines, scope.UserID())
			if err != nil {
				return err
			}
			result.TotalItemsDistributed += shopResult.TotalItems
			result.Results = append(result.Results, *shopResult)
		}
		result.ShopsUpdated = len(result.Results)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveLines valida cantidades y costos y resuelve cada montura por ID.
func (uc *StockInUseCase) resolveLines(items []dto.StockInItem, notes string) ([]stockInLine, error) {
	lines := make([]stockInLine, 0, len(items))
	for _, item := range items {
		if item.FrameID == "" || item.Quantity <= 0 || !item.CostPerUnit.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		frame, err := uc.frameRepo.GetByID(item.FrameID)
		if err != nil {
			return nil, err
		}
		if frame == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, stockInLine{frame: frame, quantity: item.Quantity, cost: item.CostPerUnit, notes: notes})
	}
	return lines, nil
}

// applyShop aplica las líneas ya validadas sobre el ledger de una tienda.
// Corre dentro de la transacción del caller.
func (uc *StockInUseCase) applyShop(
	invRepo repository.ShopInventoryRepository,
	txRepo repository.InventoryTransactionRepository,
	shop *entity.Shop,
	lines []stockInLine,
	actorID string,
) (*dto.ShopStockInResult, error) {
	result := &dto.ShopStockInResult{ShopID: shop.ID, ShopName: shop.Name}
	now := uc.now()

	for _, line := range lines {
		itemResult, err := uc.applyLine(invRepo, txRepo, shop.ID, line, actorID, now)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *itemResult)
		result.TotalItems += line.quantity
	}
	return result, nil
}

// applyLine ejecuta el get-or-create con lock de fila y el asiento STOCK_IN.
func (uc *StockInUseCase) applyLine(
	invRepo repository.ShopInventoryRepository,
	txRepo repository.InventoryTransactionRepository,
	shopID string,
	line stockInLine,
	actorID string,
	now time.Time,
) (*dto.StockInItemResult, error) {
	inv, err := invRepo.GetForUpdate(shopID, line.frame.ID)
	if err != nil {
		return nil, err
	}
	created := inv == nil
	if created {
		inv = &entity.ShopInventory{
			ID:        uuid.New().String(),
			ShopID:    shopID,
			FrameID:   line.frame.ID,
			CreatedAt: now,
		}
	}
	inv.QuantityReceived += line.quantity
	inv.CostPerUnit = line.cost // último costo gana; el histórico queda en el journal
	inv.LastRestocked = now
	if err := invRepo.Upsert(inv); err != nil {
		return nil, err
	}

	cost := line.cost
	tx := &entity.InventoryTransaction{
		ID:              uuid.New().String(),
		ShopInventoryID: inv.ID,
		Type:            entity.TransactionTypeStockIn,
		Quantity:        line.quantity,
		UnitCost:        &cost,
		Notes:           line.notes,
		CreatedAt:       now,
		CreatedBy:       actorID,
	}
	if err := txRepo.Create(tx); err != nil {
		return nil, err
	}

	return &dto.StockInItemResult{
		FrameID:          line.frame.ID,
		ProductID:        line.frame.ProductID,
		FrameName:        line.frame.Name,
		QuantityAdded:    line.quantity,
		CostPerUnit:      line.cost,
		NewTotalReceived: inv.QuantityReceived,
		InventoryCreated: created,
		TransactionID:    tx.ID,
	}, nil
}
