package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/application/sales"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/ledger"
)

var fixedNow = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func buildUseCase(store *memStore, shops []*entity.Shop, frames []*entity.Frame) *sales.RecordSaleUseCase {
	return sales.NewRecordSaleUseCase(
		&memTxRunner{store: store},
		newMemShopRepo(shops...),
		newMemFrameRepo(frames...),
		fixedClock,
	)
}

func testShop(id, name string) *entity.Shop { return &entity.Shop{ID: id, Name: name} }

func testFrame(id string, price int64) *entity.Frame {
	return &entity.Frame{ID: id, ProductID: "PRD-" + id, Name: "Montura " + id, Price: decimal.NewFromInt(price)}
}

func TestRecordSale_ActualizaLedgerJournalYResumen(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 10, 0, 120)
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})

	price := decimal.NewFromInt(260)
	scope := access.ShopOwner("user-owner", "shop-1")
	result, err := uc.RecordSale(context.Background(), scope, dto.RecordSaleRequest{
		ShopID:    "shop-1",
		FrameID:   "frame-1",
		Quantity:  3,
		SalePrice: &price,
		Notes:     "venta mostrador",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.QuantitySold)
	assert.True(t, result.SalePrice.Equal(price))
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(780)))
	assert.Equal(t, 7, result.RemainingStock)

	// Ledger: solo crece quantity_sold; received intacto.
	inv := store.inventories[invKey("shop-1", "frame-1")]
	assert.Equal(t, 10, inv.QuantityReceived)
	assert.Equal(t, 3, inv.QuantitySold)

	// Journal: asiento SALE con cantidad negativa y costo/precio snapshoteados.
	require.Len(t, store.journal, 1)
	tx := store.journal[0]
	assert.Equal(t, entity.TransactionTypeSale, tx.Type)
	assert.Equal(t, -3, tx.Quantity)
	require.NotNil(t, tx.UnitCost)
	assert.True(t, tx.UnitCost.Equal(decimal.NewFromInt(120)))
	require.NotNil(t, tx.UnitPrice)
	assert.True(t, tx.UnitPrice.Equal(price))
	assert.Equal(t, "user-owner", tx.CreatedBy)
	assert.Equal(t, "venta mostrador", tx.Notes)

	// Resumen del mes en curso según el reloj inyectado.
	summary := store.summaries[sumKey("shop-1", ledger.MonthOf(fixedNow))]
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.UnitsSold)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(780)))
	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(360)))
	assert.True(t, summary.TotalProfit.Equal(decimal.NewFromInt(420)))
	assert.True(t, summary.AmountToPayDistributor.Equal(decimal.NewFromInt(360)))
}

func TestRecordSale_SinPrecioUsaCatalogo(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 5, 0, 120)
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})

	result, err := uc.RecordSale(context.Background(), access.Distributor("user-dist"), dto.RecordSaleRequest{
		ShopID:   "shop-1",
		FrameID:  "frame-1",
		Quantity: 2,
	})

	require.NoError(t, err)
	assert.True(t, result.SalePrice.Equal(decimal.NewFromInt(250)))
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestRecordSale_StockInsuficienteRevierteTodo(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 10, 8, 120) // quedan 2
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})

	_, err := uc.RecordSale(context.Background(), access.ShopOwner("u", "shop-1"), dto.RecordSaleRequest{
		ShopID:   "shop-1",
		FrameID:  "frame-1",
		Quantity: 5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 2, insufficientErr.Available)
	assert.Equal(t, 5, insufficientErr.Requested)

	// Nada quedó tocado.
	inv := store.inventories[invKey("shop-1", "frame-1")]
	assert.Equal(t, 8, inv.QuantitySold)
	assert.Empty(t, store.journal)
	assert.Empty(t, store.summaries)
}

func TestRecordSale_VentasRepetidasAcumulanResumen(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 20, 0, 100)
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})
	scope := access.ShopOwner("u", "shop-1")

	for i := 0; i < 3; i++ {
		_, err := uc.RecordSale(context.Background(), scope, dto.RecordSaleRequest{
			ShopID:   "shop-1",
			FrameID:  "frame-1",
			Quantity: 2,
		})
		require.NoError(t, err)
	}

	inv := store.inventories[invKey("shop-1", "frame-1")]
	assert.Equal(t, 6, inv.QuantitySold)
	assert.Len(t, store.journal, 3)

	summary := store.summaries[sumKey("shop-1", ledger.MonthOf(fixedNow))]
	require.NotNil(t, summary)
	assert.Equal(t, 6, summary.UnitsSold)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.AmountToPayDistributor.Equal(decimal.NewFromInt(600)))
}

func TestRecordSale_SnapshotDeCostoPorVenta(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 10, 0, 100)
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})
	scope := access.Distributor("user-dist")

	_, err := uc.RecordSale(context.Background(), scope, dto.RecordSaleRequest{ShopID: "shop-1", FrameID: "frame-1", Quantity: 1})
	require.NoError(t, err)

	// Reposición posterior con otro costo.
	store.inventories[invKey("shop-1", "frame-1")].CostPerUnit = decimal.NewFromInt(140)

	_, err = uc.RecordSale(context.Background(), scope, dto.RecordSaleRequest{ShopID: "shop-1", FrameID: "frame-1", Quantity: 1})
	require.NoError(t, err)

	// Cada asiento conserva el costo vigente al momento de su venta.
	require.Len(t, store.journal, 2)
	assert.True(t, store.journal[0].UnitCost.Equal(decimal.NewFromInt(100)))
	assert.True(t, store.journal[1].UnitCost.Equal(decimal.NewFromInt(140)))
}

func TestRecordSale_Validaciones(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 10, 0, 100)
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})

	negative := decimal.NewFromInt(-5)
	cases := []struct {
		name  string
		scope access.Scope
		in    dto.RecordSaleRequest
		want  error
	}{
		{"sin tienda", access.Distributor("u"), dto.RecordSaleRequest{FrameID: "frame-1", Quantity: 1}, domain.ErrInvalidInput},
		{"sin montura", access.Distributor("u"), dto.RecordSaleRequest{ShopID: "shop-1", Quantity: 1}, domain.ErrInvalidInput},
		{"cantidad cero", access.Distributor("u"), dto.RecordSaleRequest{ShopID: "shop-1", FrameID: "frame-1"}, domain.ErrInvalidInput},
		{"precio negativo", access.Distributor("u"), dto.RecordSaleRequest{ShopID: "shop-1", FrameID: "frame-1", Quantity: 1, SalePrice: &negative}, domain.ErrInvalidInput},
		{"tienda ajena", access.ShopOwner("u", "shop-2"), dto.RecordSaleRequest{ShopID: "shop-1", FrameID: "frame-1", Quantity: 1}, domain.ErrForbidden},
		{"tienda inexistente", access.Distributor("u"), dto.RecordSaleRequest{ShopID: "shop-404", FrameID: "frame-1", Quantity: 1}, domain.ErrNotFound},
		{"montura inexistente", access.Distributor("u"), dto.RecordSaleRequest{ShopID: "shop-1", FrameID: "frame-404", Quantity: 1}, domain.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordSale(context.Background(), tc.scope, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, store.journal)
}

func TestRecordSale_SinFilaDeLedger(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store, []*entity.Shop{testShop("shop-1", "Óptica Centro")}, []*entity.Frame{testFrame("frame-1", 250)})

	// La montura existe en catálogo pero la tienda nunca recibió unidades.
	_, err := uc.RecordSale(context.Background(), access.Distributor("u"), dto.RecordSaleRequest{
		ShopID:   "shop-1",
		FrameID:  "frame-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_FalloEnResumenRevierteLedgerYJournal(t *testing.T) {
	store := newMemStore()
	seedInventory(store, "shop-1", "frame-1", 10, 0, 100)
	updateErr := errors.New("deadlock detectado")
	uc := sales.NewRecordSaleUseCase(
		&memTxRunner{store: store, summaryUpdateErr: updateErr},
		newMemShopRepo(testShop("shop-1", "Óptica Centro")),
		newMemFrameRepo(testFrame("frame-1", 250)),
		fixedClock,
	)

	_, err := uc.RecordSale(context.Background(), access.Distributor("u"), dto.RecordSaleRequest{
		ShopID:   "shop-1",
		FrameID:  "frame-1",
		Quantity: 2,
	})

	assert.ErrorIs(t, err, updateErr)
	// El incremento del ledger y el asiento del journal se revierten con el resumen.
	inv := store.inventories[invKey("shop-1", "frame-1")]
	assert.Equal(t, 0, inv.QuantitySold)
	assert.Empty(t, store.journal)
	assert.Empty(t, store.summaries)
}
