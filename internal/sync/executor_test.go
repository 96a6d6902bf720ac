package sync

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-backend/internal/model"
)

// fakeStore is an in-memory CatalogStore with switchable failure points.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]model.Product

	createBatchCalls int
	failCreateBatch  int // 1-based ordinal of the create batch to fail, 0 = never
	failUpdate       string
	failStock        string
}

func newFakeStore(barcodes ...string) *fakeStore {
	s := &fakeStore{products: make(map[string]model.Product)}
	for _, b := range barcodes {
		s.products[b] = model.Product{Barcode: b}
	}
	return s
}

func (s *fakeStore) ListBarcodes() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.products))
	for b := range s.products {
		out = append(out, b)
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeStore) CreateProducts(products []model.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createBatchCalls++
	if s.createBatchCalls == s.failCreateBatch {
		return 0, errors.New("create batch boom")
	}
	var inserted int64
	for _, p := range products {
		if _, exists := s.products[p.Barcode]; exists {
			continue // duplicate-key skip
		}
		s.products[p.Barcode] = p
		inserted++
	}
	return inserted, nil
}

func (s *fakeStore) UpdateProduct(barcode string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if barcode == s.failUpdate {
		return errors.New("update boom")
	}
	p, exists := s.products[barcode]
	if !exists {
		return nil
	}
	if name, ok := fields["name_tm"].(string); ok {
		p.NameTm = name
	}
	if stock, ok := fields["stock"].(int); ok {
		p.Stock = stock
	}
	s.products[barcode] = p
	return nil
}

func (s *fakeStore) DeleteByBarcodes(barcodes []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for _, b := range barcodes {
		if _, exists := s.products[b]; exists {
			delete(s.products, b)
			deleted++
		}
	}
	return deleted, nil
}

func (s *fakeStore) UpdateStockByBarcode(upd StockUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upd.Barcode == s.failStock {
		return 0, errors.New("stock boom")
	}
	p, exists := s.products[upd.Barcode]
	if !exists {
		return 0, nil
	}
	p.Stock = upd.Stock
	p.SellPrice = upd.SellPrice
	s.products[upd.Barcode] = p
	return 1, nil
}

func (s *fakeStore) barcodeSet() []string {
	out, _ := s.ListBarcodes()
	return out
}

func TestApply_StoreMatchesFeedAfterSync(t *testing.T) {
	store := newFakeStore("A", "B", "C")
	feed := []FeedRecord{
		{Barcode: "A", Name: "changed"},
		{Barcode: "C"}, // nothing to merge
		{Barcode: "D", Name: "new"},
	}

	stored, err := store.ListBarcodes()
	require.NoError(t, err)
	res := NewExecutor(store).Apply(BuildPlan(feed, stored))

	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Deleted)
	assert.Empty(t, res.Failures)
	assert.Equal(t, []string{"A", "C", "D"}, store.barcodeSet())
	assert.Equal(t, "changed", store.products["A"].NameTm)
}

func TestApply_Idempotent(t *testing.T) {
	store := newFakeStore()
	feed := []FeedRecord{
		{Barcode: "A", Name: "a", Quantity: 2},
		{Barcode: "B", Name: "b", Quantity: 3},
	}
	exec := NewExecutor(store)

	first := exec.Apply(BuildPlan(feed, store.barcodeSet()))
	require.Equal(t, 2, first.Created)

	second := exec.Apply(BuildPlan(feed, store.barcodeSet()))
	assert.Zero(t, second.Created)
	assert.Zero(t, second.Deleted)
	assert.Empty(t, second.Failures)
	assert.Equal(t, []string{"A", "B"}, store.barcodeSet())
}

func TestApply_FailedBatchDoesNotRevertOthers(t *testing.T) {
	store := newFakeStore()
	store.failCreateBatch = 2

	feed := make([]FeedRecord, 5)
	for i := range feed {
		feed[i] = FeedRecord{Barcode: string(rune('A' + i))}
	}

	exec := NewExecutor(store)
	exec.batchSize = 2 // batches: AB, CD (fails), E

	res := exec.Apply(BuildPlan(feed, nil))

	assert.Equal(t, 3, res.Created)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "create", res.Failures[0].Op)
	assert.Equal(t, 2, res.Failures[0].Offset)
	assert.Equal(t, []string{"A", "B", "E"}, store.barcodeSet())
}

func TestApply_DuplicateCreateSkipped(t *testing.T) {
	store := newFakeStore("A")
	// The planner saw a stale barcode set that doesn't know A yet, e.g. a
	// concurrent insert won the race.
	plan := Plan{ToCreate: []FeedRecord{{Barcode: "A"}, {Barcode: "B"}}}

	res := NewExecutor(store).Apply(plan)

	assert.Equal(t, 1, res.Created)
	assert.Empty(t, res.Failures)
}

func TestApply_UpdateFailureReportedPerBatch(t *testing.T) {
	store := newFakeStore("A", "B")
	store.failUpdate = "B"

	plan := Plan{ToUpdate: []FeedRecord{
		{Barcode: "A", Name: "a2"},
		{Barcode: "B", Name: "b2"},
	}}

	res := NewExecutor(store).Apply(plan)

	assert.Equal(t, 1, res.Updated)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "update", res.Failures[0].Op)
	assert.Equal(t, "a2", store.products["A"].NameTm)
}

func TestMergeFields_OnlyTruthyFieldsOverwrite(t *testing.T) {
	rec := FeedRecord{Barcode: "A", Name: "kept", Quantity: 0}
	fields := rec.MergeFields()

	assert.Equal(t, "kept", fields["name_tm"])
	assert.NotContains(t, fields, "stock", "zero quantity must preserve stored stock")
	assert.NotContains(t, fields, "sell_price")
}

func TestRefreshStock_AppliesRowsAndSkipsBarcodelessOnes(t *testing.T) {
	store := newFakeStore("A", "B")

	res := NewExecutor(store).RefreshStock([]StockRow{
		{colBarcode: "A", colStock: "7", colSellPrice: "12.5"},
		{colStock: "3"},                  // no barcode: skipped
		{colBarcode: "Z", colStock: "1"}, // unknown barcode: no match
		{colBarcode: "B", colStock: "abc"},
	})

	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 1, res.Malformed)
	assert.Equal(t, 7, store.products["A"].Stock)
	assert.Equal(t, 0, store.products["B"].Stock, "unparsable quantity defaults to zero")
}

func TestRefreshStock_BatchFailureIsIndependent(t *testing.T) {
	store := newFakeStore("A", "B", "C")
	store.failStock = "B"

	exec := NewExecutor(store)
	exec.stockBatchSize = 1

	res := exec.RefreshStock([]StockRow{
		{colBarcode: "A", colStock: "1"},
		{colBarcode: "B", colStock: "2"},
		{colBarcode: "C", colStock: "3"},
	})

	assert.Equal(t, 2, res.Updated)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "stock", res.Failures[0].Op)
	assert.Equal(t, 3, store.products["C"].Stock)
}
