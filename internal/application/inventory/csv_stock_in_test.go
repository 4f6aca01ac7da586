package inventory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
)

func TestStockInFromCSV_CargaValida(t *testing.T) {
	store := newMemStore()
	shop := testShop("shop-1", "Óptica Centro")
	frame1 := testFrame("frame-1", "RB-3025-GLD", 250)
	frame2 := testFrame("frame-2", "OK-9102-BLK", 180)
	uc := buildStockInUseCase(store, []*entity.Shop{shop}, []*entity.Frame{frame1, frame2})

	csvData := strings.Join([]string{
		"product_id,quantity,cost_per_unit",
		"RB-3025-GLD,10,120.50",
		"OK-9102-BLK,4,", // sin costo: usa el precio de catálogo
	}, "\n")

	result, rowErrs, err := uc.StockInFromCSV(context.Background(), access.Distributor("user-dist"), "shop-1", strings.NewReader(csvData))

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, 14, result.TotalItems)
	require.Len(t, result.Items, 2)

	inv1 := store.inventories[invKey("shop-1", "frame-1")]
	require.NotNil(t, inv1)
	assert.Equal(t, 10, inv1.QuantityReceived)
	assert.True(t, inv1.CostPerUnit.Equal(decimal.RequireFromString("120.50")))

	inv2 := store.inventories[invKey("shop-1", "frame-2")]
	require.NotNil(t, inv2)
	assert.True(t, inv2.CostPerUnit.Equal(decimal.NewFromInt(180)), "sin costo explícito usa el precio de catálogo")

	require.Len(t, store.journal, 2)
	assert.Contains(t, store.journal[0].Notes, "Carga CSV")
}

func TestStockInFromCSV_FilasInvalidasNoAplicanNada(t *testing.T) {
	store := newMemStore()
	shop := testShop("shop-1", "Óptica Centro")
	frame := testFrame("frame-1", "RB-3025-GLD", 250)
	uc := buildStockInUseCase(store, []*entity.Shop{shop}, []*entity.Frame{frame})

	csvData := strings.Join([]string{
		"product_id,quantity,cost_per_unit",
		"RB-3025-GLD,10,120",    // válida
		"NO-EXISTE,5,100",       // montura desconocida
		"RB-3025-GLD,abc,100",   // cantidad no numérica
		"RB-3025-GLD,-3,100",    // cantidad negativa
		"RB-3025-GLD,2,gratis",  // costo inválido
	}, "\n")

	result, rowErrs, err := uc.StockInFromCSV(context.Background(), access.Distributor("user-dist"), "shop-1", strings.NewReader(csvData))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
	require.Len(t, rowErrs, 4)
	assert.Contains(t, rowErrs[0], "fila 3")
	assert.Contains(t, rowErrs[0], "NO-EXISTE")
	assert.Contains(t, rowErrs[1], "fila 4")
	assert.Contains(t, rowErrs[2], "fila 5")
	assert.Contains(t, rowErrs[3], "fila 6")

	// Ni siquiera la fila válida se aplica.
	assert.Empty(t, store.inventories)
	assert.Empty(t, store.journal)
}

func TestStockInFromCSV_EncabezadoInvalido(t *testing.T) {
	store := newMemStore()
	shop := testShop("shop-1", "Óptica Centro")
	uc := buildStockInUseCase(store, []*entity.Shop{shop}, nil)

	csvData := "codigo,cantidad\nRB-3025-GLD,10"
	_, rowErrs, err := uc.StockInFromCSV(context.Background(), access.Distributor("user-dist"), "shop-1", strings.NewReader(csvData))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Len(t, rowErrs, 1)
	assert.Contains(t, rowErrs[0], "product_id")
}

func TestStockInFromCSV_ArchivoSinFilas(t *testing.T) {
	store := newMemStore()
	shop := testShop("shop-1", "Óptica Centro")
	uc := buildStockInUseCase(store, []*entity.Shop{shop}, nil)

	_, rowErrs, err := uc.StockInFromCSV(context.Background(), access.Distributor("user-dist"), "shop-1", strings.NewReader("product_id,quantity\n"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotEmpty(t, rowErrs)
}

func TestStockInFromCSV_SoloDistribuidor(t *testing.T) {
	store := newMemStore()
	shopA := testShop("shop-a", "Óptica A")
	frame := testFrame("frame-1", "RB-3025-GLD", 250)
	uc := buildStockInUseCase(store, []*entity.Shop{shopA}, []*entity.Frame{frame})

	// Ni siquiera sobre su propia tienda: la carga de mercancía es del distribuidor.
	csvData := "product_id,quantity,cost_per_unit\nRB-3025-GLD,100,1"
	_, _, err := uc.StockInFromCSV(context.Background(), access.ShopOwner("user-owner", "shop-a"), "shop-a", strings.NewReader(csvData))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, store.inventories)
	assert.Empty(t, store.journal)
}
