package inventory

import (
	"context"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// QueryUseCase lecturas del ledger y del journal (sin mutaciones).
type QueryUseCase struct {
	invRepo repository.ShopInventoryRepository
	txRepo  repository.InventoryTransactionRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(invRepo repository.ShopInventoryRepository, txRepo repository.InventoryTransactionRepository) *QueryUseCase {
	return &QueryUseCase{invRepo: invRepo, txRepo: txRepo}
}

// ListInventory lista las filas del ledger de una tienda con derivados.
func (uc *QueryUseCase) ListInventory(_ context.Context, scope access.Scope, shopID string, filter repository.InventoryFilter) ([]dto.InventoryItemResponse, error) {
	if shopID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !scope.CanAccess(shopID) {
		return nil, domain.ErrForbidden
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	views, err := uc.invRepo.ListByShop(shopID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(views))
	for _, v := range views {
		inv := v.Inventory
		out = append(out, dto.InventoryItemResponse{
			ID:                inv.ID,
			ShopID:            inv.ShopID,
			FrameID:           inv.FrameID,
			ProductID:         v.ProductID,
			FrameName:         v.FrameName,
			Brand:             v.Brand,
			QuantityReceived:  inv.QuantityReceived,
			QuantitySold:      inv.QuantitySold,
			QuantityRemaining: inv.QuantityRemaining(),
			CostPerUnit:       inv.CostPerUnit,
			FramePrice:        v.FramePrice,
			TotalCost:         inv.TotalCost(),
			TotalRevenue:      inv.TotalRevenue(v.FramePrice),
			TotalProfit:       inv.TotalProfit(v.FramePrice),
			LowStock:          inv.IsLowStock(),
			LastRestocked:     inv.LastRestocked,
		})
	}
	return out, nil
}

// ListTransactions lista el journal filtrado, más reciente primero. Un dueño
// de tienda solo ve su propia tienda; el filtro se fuerza a su alcance.
func (uc *QueryUseCase) ListTransactions(_ context.Context, scope access.Scope, filter repository.TransactionFilter) ([]dto.TransactionResponse, error) {
	if !scope.AllShops() {
		if filter.ShopID != "" && filter.ShopID != scope.ShopID() {
			return nil, domain.ErrForbidden
		}
		filter.ShopID = scope.ShopID()
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	txs, err := uc.txRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.TransactionResponse{
			ID:              tx.ID,
			ShopInventoryID: tx.ShopInventoryID,
			Type:            tx.Type,
			Quantity:        tx.Quantity,
			UnitCost:        tx.UnitCost,
			UnitPrice:       tx.UnitPrice,
			Notes:           tx.Notes,
			CreatedAt:       tx.CreatedAt,
			CreatedBy:       tx.CreatedBy,
		})
	}
	return out, nil
}
