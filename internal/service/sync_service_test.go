package service

import (
	"encoding/json"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	catalog "go-shop-backend/internal/sync"
	"go-shop-backend/pkg/apperr"
)

// fakeSyncStore is an in-memory SyncStore keyed by barcode.
type fakeSyncStore struct {
	mu       sync.Mutex
	products map[string]model.Product
}

func newFakeSyncStore(barcodes ...string) *fakeSyncStore {
	s := &fakeSyncStore{products: make(map[string]model.Product)}
	for _, b := range barcodes {
		s.products[b] = model.Product{Barcode: b, Stock: 1}
	}
	return s
}

func (s *fakeSyncStore) ListBarcodes() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.products))
	for b := range s.products {
		out = append(out, b)
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeSyncStore) CreateProducts(products []model.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var inserted int64
	for _, p := range products {
		if _, exists := s.products[p.Barcode]; exists {
			continue
		}
		s.products[p.Barcode] = p
		inserted++
	}
	return inserted, nil
}

func (s *fakeSyncStore) UpdateProduct(barcode string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.products[barcode]
	if !exists {
		return nil
	}
	if stock, ok := fields["stock"].(int); ok {
		p.Stock = stock
	}
	s.products[barcode] = p
	return nil
}

func (s *fakeSyncStore) DeleteByBarcodes(barcodes []string) (int64, error) {
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

func (s *fakeSyncStore) UpdateStockByBarcode(upd catalog.StockUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.products[upd.Barcode]
	if !exists {
		return 0, nil
	}
	p.Stock = upd.Stock
	s.products[upd.Barcode] = p
	return 1, nil
}

func (s *fakeSyncStore) ExportRows() ([]repository.ExportRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]repository.ExportRow, 0, len(s.products))
	for _, p := range s.products {
		rows = append(rows, repository.ExportRow{Barcode: p.Barcode, Stock: p.Stock})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Barcode < rows[j].Barcode })
	return rows, nil
}

func TestFullSync_ConvergesStoreToFeed(t *testing.T) {
	store := newFakeSyncStore("A", "B")
	svc := NewSyncService(store, nil)

	res, err := svc.FullSync([]catalog.FeedRecord{
		{Barcode: "A", Quantity: 9},
		{Barcode: "C", Name: "new"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Deleted)

	barcodes, _ := store.ListBarcodes()
	assert.Equal(t, []string{"A", "C"}, barcodes)
	assert.Equal(t, 9, store.products["A"].Stock)
}

func TestFullSync_NoChangesShortCircuits(t *testing.T) {
	store := newFakeSyncStore()
	svc := NewSyncService(store, nil)

	res, err := svc.FullSync(nil)
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Empty(t, res.Failures)
}

func TestRefreshStock_NestedPayload(t *testing.T) {
	store := newFakeSyncStore("4780001", "4780002")
	svc := NewSyncService(store, nil)

	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(`[
		[{"BAR KOD": "4780001", "Mukdary": 4, "Satyş bahasy": 10}],
		{"BAR KOD": "4780002", "Mukdary": "2"}
	]`), &raw))

	res, err := svc.RefreshStock(raw)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 4, store.products["4780001"].Stock)
	assert.Equal(t, 2, store.products["4780002"].Stock)
}

func TestRefreshStock_RejectsOverlyNestedPayload(t *testing.T) {
	svc := NewSyncService(newFakeSyncStore(), nil)

	var raw interface{} = []interface{}{}
	for i := 0; i <= catalog.MaxNestingDepth; i++ {
		raw = []interface{}{raw}
	}

	_, err := svc.RefreshStock(raw)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestExport_ProjectsLedger(t *testing.T) {
	store := newFakeSyncStore("B", "A")
	svc := NewSyncService(store, nil)

	rows, err := svc.Export()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Barcode)
	assert.Equal(t, 1, rows[0].Stock)
}
