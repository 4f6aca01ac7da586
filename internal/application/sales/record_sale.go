// Package sales contiene el caso de uso de registro de ventas: la única
// operación que toca a la vez el ledger, el journal y el resumen financiero
// mensual, por lo que concentra las garantías de atomicidad del sistema.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/ledger"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del ledger atados a esa tx. Misma forma que inventory.TxRunner;
// la implementación de postgres satisface ambos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.ShopInventoryRepository,
		txRepo repository.InventoryTransactionRepository,
		summaryRepo repository.FinancialSummaryRepository,
	) error) error
}

// Clock inyecta el instante actual; nil usa time.Now. El mes del resumen
// financiero se deriva de este reloj, no del reloj del sistema directamente.
type Clock func() time.Time

// RecordSaleUseCase registra una venta de forma transaccional:
//
//  1. bloquea la fila del ledger (SELECT FOR UPDATE),
//  2. verifica stock disponible (error con cantidad disponible si no alcanza),
//  3. incrementa quantity_sold,
//  4. agrega el asiento SALE al journal (cantidad negativa, costo snapshoteado),
//  5. acumula la venta en el resumen del mes en curso (fila bloqueada).
//
// Los cinco pasos commitean juntos o se revierten juntos.
type RecordSaleUseCase struct {
	txRunner  TxRunner
	shopRepo  repository.ShopRepository
	frameRepo repository.FrameRepository
	now       Clock
}

// NewRecordSaleUseCase construye el caso de uso. clock nil usa time.Now.
func NewRecordSaleUseCase(
	txRunner TxRunner,
	shopRepo repository.ShopRepository,
	frameRepo repository.FrameRepository,
	clock Clock,
) *RecordSaleUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &RecordSaleUseCase{txRunner: txRunner, shopRepo: shopRepo, frameRepo: frameRepo, now: clock}
}

// RecordSale valida y registra la venta. Toda la validación ocurre antes de
// abrir la transacción; un fallo posterior (ej. stock insuficiente detectado
// con la fila bloqueada) revierte sin dejar rastro en ledger, journal ni resumen.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, scope access.Scope, in dto.RecordSaleRequest) (*dto.RecordSaleResult, error) {
	if in.ShopID == "" || in.FrameID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice != nil && in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !scope.CanAccess(in.ShopID) {
		return nil, domain.ErrForbidden
	}

	shop, err := uc.shopRepo.GetByID(in.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	frame, err := uc.frameRepo.GetByID(in.FrameID)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, domain.ErrNotFound
	}

	// Sin precio explícito se vende al precio de catálogo.
	salePrice := frame.Price
	if in.SalePrice != nil {
		salePrice = *in.SalePrice
	}

	var result *dto.RecordSaleResult
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.ShopInventoryRepository,
		txRepo repository.InventoryTransactionRepository,
		summaryRepo repository.FinancialSummaryRepository,
	) error {
		now := uc.now()

		inv, err := invRepo.GetForUpdate(in.ShopID, in.FrameID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		remaining := inv.QuantityRemaining()
		if in.Quantity > remaining {
			return &domain.InsufficientStockError{Available: remaining, Requested: in.Quantity}
		}

		// Snapshot del costo vigente: reposiciones posteriores no reescriben
		// el costo de esta venta.
		unitCost := inv.CostPerUnit

		inv.QuantitySold += in.Quantity
		inv.LastRestocked = now
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}

		price := salePrice
		saleTx := &entity.InventoryTransaction{
			ID:              uuid.New().String(),
			ShopInventoryID: inv.ID,
			Type:            entity.TransactionTypeSale,
			Quantity:        -in.Quantity, // negativo: salida de stock
			UnitCost:        &unitCost,
			UnitPrice:       &price,
			Notes:           in.Notes,
			CreatedAt:       now,
			CreatedBy:       scope.UserID(),
		}
		if err := txRepo.Create(saleTx); err != nil {
			return err
		}

		summary, err := summaryRepo.GetOrCreateForUpdate(in.ShopID, ledger.MonthOf(now))
		if err != nil {
			return err
		}
		summary.ApplySale(in.Quantity, salePrice, unitCost)
		summary.UpdatedAt = now
		if err := summaryRepo.Update(summary); err != nil {
			return err
		}

		result = &dto.RecordSaleResult{
			TransactionID:  saleTx.ID,
			QuantitySold:   in.Quantity,
			SalePrice:      salePrice,
			TotalAmount:    salePrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
			RemainingStock: inv.QuantityRemaining(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
