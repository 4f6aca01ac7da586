package inventory_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// memStore estado compartido en memoria del ledger, el journal y los
// resúmenes financieros, para testear los casos de uso sin Postgres.
type memStore struct {
	inventories map[string]*entity.ShopInventory       // clave shopID|frameID
	journal     []*entity.InventoryTransaction         // orden de inserción
	summaries   map[string]*entity.ShopFinancialSummary // clave shopID|YYYY-MM
}

func newMemStore() *memStore {
	return &memStore{
		inventories: map[string]*entity.ShopInventory{},
		summaries:   map[string]*entity.ShopFinancialSummary{},
	}
}

func invKey(shopID, frameID string) string { return shopID + "|" + frameID }

func sumKey(shopID string, month time.Time) string {
	return shopID + "|" + month.Format("2006-01")
}

// clone copia profunda para simular el snapshot previo a una transacción.
func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.inventories {
		cp := *v
		c.inventories[k] = &cp
	}
	for _, tx := range s.journal {
		cp := *tx
		c.journal = append(c.journal, &cp)
	}
	for k, v := range s.summaries {
		cp := *v
		c.summaries[k] = &cp
	}
	return c
}

// memInventoryRepo implementación en memoria del ledger, con error inyectable
// en Upsert para probar el rollback a mitad de lote.
type memInventoryRepo struct {
	store     *memStore
	upsertErr func(inv *entity.ShopInventory) error
}

func (r *memInventoryRepo) Get(shopID, frameID string) (*entity.ShopInventory, error) {
	return r.GetForUpdate(shopID, frameID)
}

func (r *memInventoryRepo) GetForUpdate(shopID, frameID string) (*entity.ShopInventory, error) {
	inv, ok := r.store.inventories[invKey(shopID, frameID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInventoryRepo) Upsert(inv *entity.ShopInventory) error {
	if r.upsertErr != nil {
		if err := r.upsertErr(inv); err != nil {
			return err
		}
	}
	cp := *inv
	r.store.inventories[invKey(inv.ShopID, inv.FrameID)] = &cp
	return nil
}

func (r *memInventoryRepo) ListByShop(shopID string, filter repository.InventoryFilter) ([]*repository.InventoryItemView, error) {
	var views []*repository.InventoryItemView
	for _, inv := range r.store.inventories {
		if inv.ShopID != shopID {
			continue
		}
		if filter.LowStockOnly && !inv.IsLowStock() {
			continue
		}
		views = append(views, &repository.InventoryItemView{Inventory: *inv})
	}
	return views, nil
}

// memTransactionRepo journal en memoria.
type memTransactionRepo struct {
	store *memStore
}

func (r *memTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	cp := *tx
	r.store.journal = append(r.store.journal, &cp)
	return nil
}

func (r *memTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	out := make([]*entity.InventoryTransaction, 0, len(r.store.journal))
	for i := len(r.store.journal) - 1; i >= 0; i-- {
		tx := r.store.journal[i]
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

// memSummaryRepo resúmenes mensuales en memoria.
type memSummaryRepo struct {
	store *memStore
}

func (r *memSummaryRepo) Get(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	s, ok := r.store.summaries[sumKey(shopID, month)]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSummaryRepo) GetOrCreateForUpdate(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	key := sumKey(shopID, month)
	if s, ok := r.store.summaries[key]; ok {
		cp := *s
		return &cp, nil
	}
	s := &entity.ShopFinancialSummary{
		ID:     uuid.New().String(),
		ShopID: shopID,
		Month:  month,
	}
	cp := *s
	r.store.summaries[key] = &cp
	return s, nil
}

func (r *memSummaryRepo) Update(summary *entity.ShopFinancialSummary) error {
	cp := *summary
	r.store.summaries[sumKey(summary.ShopID, summary.Month)] = &cp
	return nil
}

func (r *memSummaryRepo) ListByShop(shopID string, limit, offset int) ([]*entity.ShopFinancialSummary, error) {
	var out []*entity.ShopFinancialSummary
	for _, s := range r.store.summaries {
		if s.ShopID != shopID {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// memTxRunner simula la transacción: snapshotea el estado antes de fn y lo
// restaura completo si fn falla. Permite verificar la atomicidad del lote.
type memTxRunner struct {
	store     *memStore
	upsertErr func(inv *entity.ShopInventory) error
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.ShopInventoryRepository,
	txRepo repository.InventoryTransactionRepository,
	summaryRepo repository.FinancialSummaryRepository,
) error) error {
	snap := r.store.clone()
	err := fn(
		&memInventoryRepo{store: r.store, upsertErr: r.upsertErr},
		&memTransactionRepo{store: r.store},
		&memSummaryRepo{store: r.store},
	)
	if err != nil {
		*r.store = *snap
		return err
	}
	return nil
}

// memShopRepo tiendas en memoria.
type memShopRepo struct {
	shops map[string]*entity.Shop
}

func newMemShopRepo(shops ...*entity.Shop) *memShopRepo {
	r := &memShopRepo{shops: map[string]*entity.Shop{}}
	for _, s := range shops {
		r.shops[s.ID] = s
	}
	return r
}

func (r *memShopRepo) Create(shop *entity.Shop) error { r.shops[shop.ID] = shop; return nil }

func (r *memShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *memShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, s := range r.shops {
		out = append(out, s)
	}
	return out, nil
}

func (r *memShopRepo) Update(shop *entity.Shop) error { r.shops[shop.ID] = shop; return nil }
func (r *memShopRepo) Delete(id string) error         { delete(r.shops, id); return nil }

// memFrameRepo catálogo en memoria.
type memFrameRepo struct {
	frames map[string]*entity.Frame
}

func newMemFrameRepo(frames ...*entity.Frame) *memFrameRepo {
	r := &memFrameRepo{frames: map[string]*entity.Frame{}}
	for _, f := range frames {
		r.frames[f.ID] = f
	}
	return r
}

func (r *memFrameRepo) Create(frame *entity.Frame) error { r.frames[frame.ID] = frame; return nil }

func (r *memFrameRepo) GetByID(id string) (*entity.Frame, error) {
	f, ok := r.frames[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (r *memFrameRepo) GetByProductID(productID string) (*entity.Frame, error) {
	for _, f := range r.frames {
		if f.ProductID == productID {
			return f, nil
		}
	}
	return nil, nil
}

func (r *memFrameRepo) List(filter repository.FrameFilter) ([]*entity.Frame, error) {
	var out []*entity.Frame
	for _, f := range r.frames {
		out = append(out, f)
	}
	return out, nil
}

func (r *memFrameRepo) Update(frame *entity.Frame) error { r.frames[frame.ID] = frame; return nil }

// Datos de prueba compartidos.
func testFrame(id, productID string, price int64) *entity.Frame {
	return &entity.Frame{
		ID:        id,
		ProductID: productID,
		Name:      "Montura " + productID,
		Brand:     "RayBan",
		Price:     decimal.NewFromInt(price),
	}
}

func testShop(id, name string) *entity.Shop {
	return &entity.Shop{ID: id, Name: name, Address: "Calle 1 # 2-3"}
}
