package sales_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// memStore ledger, journal y resúmenes en memoria para testear el caso de uso
// sin Postgres. El runner de transacciones restaura un snapshot ante error.
type memStore struct {
	inventories map[string]*entity.ShopInventory
	journal     []*entity.InventoryTransaction
	summaries   map[string]*entity.ShopFinancialSummary
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

type memInventoryRepo struct {
	store *memStore
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
	cp := *inv
	r.store.inventories[invKey(inv.ShopID, inv.FrameID)] = &cp
	return nil
}

func (r *memInventoryRepo) ListByShop(shopID string, filter repository.InventoryFilter) ([]*repository.InventoryItemView, error) {
	return nil, nil
}

type memTransactionRepo struct {
	store *memStore
}

func (r *memTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	cp := *tx
	r.store.journal = append(r.store.journal, &cp)
	return nil
}

func (r *memTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	return nil, nil
}

type memSummaryRepo struct {
	store     *memStore
	updateErr error
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
	s := &entity.ShopFinancialSummary{ID: uuid.New().String(), ShopID: shopID, Month: month}
	cp := *s
	r.store.summaries[key] = &cp
	return s, nil
}

func (r *memSummaryRepo) Update(summary *entity.ShopFinancialSummary) error {
	if r.updateErr != nil {
		return r.updateErr
	}
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

type memTxRunner struct {
	store            *memStore
	summaryUpdateErr error
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.ShopInventoryRepository,
	txRepo repository.InventoryTransactionRepository,
	summaryRepo repository.FinancialSummaryRepository,
) error) error {
	snap := r.store.clone()
	err := fn(
		&memInventoryRepo{store: r.store},
		&memTransactionRepo{store: r.store},
		&memSummaryRepo{store: r.store, updateErr: r.summaryUpdateErr},
	)
	if err != nil {
		*r.store = *snap
		return err
	}
	return nil
}

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

func (r *memShopRepo) List(limit, offset int) ([]*entity.Shop, error) { return nil, nil }
func (r *memShopRepo) Update(shop *entity.Shop) error                 { return nil }
func (r *memShopRepo) Delete(id string) error                         { return nil }

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

func (r *memFrameRepo) Create(frame *entity.Frame) error { return nil }

func (r *memFrameRepo) GetByID(id string) (*entity.Frame, error) {
	f, ok := r.frames[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (r *memFrameRepo) GetByProductID(productID string) (*entity.Frame, error) { return nil, nil }

func (r *memFrameRepo) List(filter repository.FrameFilter) ([]*entity.Frame, error) { return nil, nil }

func (r *memFrameRepo) Update(frame *entity.Frame) error { return nil }

// seedInventory deja una fila del ledger con stock disponible.
func seedInventory(store *memStore, shopID, frameID string, received, sold int, cost int64) *entity.ShopInventory {
	inv := &entity.ShopInventory{
		ID:               uuid.New().String(),
		ShopID:           shopID,
		FrameID:          frameID,
		QuantityReceived: received,
		QuantitySold:     sold,
		CostPerUnit:      decimal.NewFromInt(cost),
	}
	store.inventories[invKey(shopID, frameID)] = inv
	return inv
}
