package sync

import (
	"sync"

	"go-shop-backend/internal/model"
)

// Default batch sizes. Batches bound per-call resource cost; they are
// processed sequentially while records inside one batch fan out concurrently.
const (
	FullSyncBatchSize = 1000
	StockBatchSize    = 250
)

// CatalogStore is the slice of the product store the executor mutates.
type CatalogStore interface {
	ListBarcodes() ([]string, error)
	// CreateProducts bulk-inserts, silently skipping rows whose barcode
	// already exists. Returns the number of rows actually inserted.
	CreateProducts(products []model.Product) (int64, error)
	UpdateProduct(barcode string, fields map[string]interface{}) error
	// DeleteByBarcodes removes the given barcodes; absent keys are a no-op.
	DeleteByBarcodes(barcodes []string) (int64, error)
	// UpdateStockByBarcode updates every row matching the barcode and
	// returns how many rows matched.
	UpdateStockByBarcode(upd StockUpdate) (int64, error)
}

// BatchFailure records one failed batch. Batches already committed before the
// failure stay in place; nothing is rolled back or retried.
type BatchFailure struct {
	Op     string `json:"op"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
	Reason string `json:"reason"`
}

type Result struct {
	Created   int            `json:"created"`
	Updated   int            `json:"updated"`
	Deleted   int            `json:"deleted"`
	Malformed int            `json:"malformed,omitempty"`
	Failures  []BatchFailure `json:"failures,omitempty"`
}

func (r Result) Changed() bool {
	return r.Created > 0 || r.Updated > 0 || r.Deleted > 0
}

func (r Result) Partial() bool {
	return len(r.Failures) > 0
}

// Executor applies a reconciliation plan (or a stock-only update list) against
// the catalog in bounded-size batches with independent per-batch outcomes.
type Executor struct {
	store          CatalogStore
	batchSize      int
	stockBatchSize int
}

func NewExecutor(store CatalogStore) *Executor {
	return &Executor{
		store:          store,
		batchSize:      FullSyncBatchSize,
		stockBatchSize: StockBatchSize,
	}
}

// Apply runs the plan's create, update and delete phases in that order.
func (e *Executor) Apply(plan Plan) Result {
	res := Result{Malformed: plan.Malformed}

	for off := 0; off < len(plan.ToCreate); off += e.batchSize {
		batch := plan.ToCreate[off:min(off+e.batchSize, len(plan.ToCreate))]
		products := make([]model.Product, 0, len(batch))
		for _, rec := range batch {
			products = append(products, rec.ToProduct())
		}
		n, err := e.store.CreateProducts(products)
		if err != nil {
			res.Failures = append(res.Failures, BatchFailure{
				Op: "create", Offset: off, Size: len(batch), Reason: err.Error(),
			})
			continue
		}
		res.Created += int(n)
	}

	for off := 0; off < len(plan.ToUpdate); off += e.batchSize {
		batch := plan.ToUpdate[off:min(off+e.batchSize, len(plan.ToUpdate))]
		ok, err := e.updateBatch(batch)
		res.Updated += ok
		if err != nil {
			res.Failures = append(res.Failures, BatchFailure{
				Op: "update", Offset: off, Size: len(batch), Reason: err.Error(),
			})
		}
	}

	for off := 0; off < len(plan.ToDelete); off += e.batchSize {
		batch := plan.ToDelete[off:min(off+e.batchSize, len(plan.ToDelete))]
		n, err := e.store.DeleteByBarcodes(batch)
		if err != nil {
			res.Failures = append(res.Failures, BatchFailure{
				Op: "delete", Offset: off, Size: len(batch), Reason: err.Error(),
			})
			continue
		}
		res.Deleted += int(n)
	}

	return res
}

// updateBatch fans the batch out concurrently and reports how many records
// wrote something, plus the first error seen. A record whose merge set is
// empty is a no-op and is not counted.
func (e *Executor) updateBatch(batch []FeedRecord) (int, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		ok       int
		firstErr error
	)
	for _, rec := range batch {
		wg.Add(1)
		go func(rec FeedRecord) {
			defer wg.Done()
			fields := rec.MergeFields()
			if len(fields) == 0 {
				return
			}
			if err := e.store.UpdateProduct(rec.Barcode, fields); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			mu.Lock()
			ok++
			mu.Unlock()
		}(rec)
	}
	wg.Wait()
	return ok, firstErr
}

// InsertOnly bulk-inserts dump records with duplicate-key skip, without
// touching existing rows.
func (e *Executor) InsertOnly(records []InsertRecord) Result {
	var res Result
	for off := 0; off < len(records); off += e.batchSize {
		batch := records[off:min(off+e.batchSize, len(records))]
		products := make([]model.Product, 0, len(batch))
		for _, rec := range batch {
			if rec.Barcode == "" {
				res.Malformed++
				continue
			}
			products = append(products, rec.ToProduct())
		}
		n, err := e.store.CreateProducts(products)
		if err != nil {
			res.Failures = append(res.Failures, BatchFailure{
				Op: "create", Offset: off, Size: len(batch), Reason: err.Error(),
			})
			continue
		}
		res.Created += int(n)
	}
	return res
}

// RefreshStock applies flattened spreadsheet rows. Rows missing a barcode are
// skipped; a barcode updates every matching row.
func (e *Executor) RefreshStock(rows []StockRow) Result {
	var res Result

	updates := make([]StockUpdate, 0, len(rows))
	for _, row := range rows {
		upd, ok := row.Parse()
		if !ok {
			res.Malformed++
			continue
		}
		updates = append(updates, upd)
	}

	for off := 0; off < len(updates); off += e.stockBatchSize {
		batch := updates[off:min(off+e.stockBatchSize, len(updates))]
		ok, err := e.stockBatch(batch)
		res.Updated += ok
		if err != nil {
			res.Failures = append(res.Failures, BatchFailure{
				Op: "stock", Offset: off, Size: len(batch), Reason: err.Error(),
			})
		}
	}
	return res
}

func (e *Executor) stockBatch(batch []StockUpdate) (int, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		ok       int
		firstErr error
	)
	for _, upd := range batch {
		wg.Add(1)
		go func(upd StockUpdate) {
			defer wg.Done()
			matched, err := e.store.UpdateStockByBarcode(upd)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if matched > 0 {
				ok++
			}
		}(upd)
	}
	wg.Wait()
	return ok, firstErr
}
