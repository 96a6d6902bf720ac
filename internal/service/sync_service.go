package service

import (
	"go-shop-backend/internal/repository"
	"go-shop-backend/internal/sync"
	"go-shop-backend/internal/ws"
	"go-shop-backend/pkg/apperr"
)

// SyncStore is what the sync engine needs from the product store.
type SyncStore interface {
	sync.CatalogStore
	ExportRows() ([]repository.ExportRow, error)
}

type SyncService interface {
	// FullSync reconciles the incoming feed against the stored catalog:
	// feed-only barcodes are created, shared ones updated, store-only ones
	// deleted. Batches fail independently; committed batches stay.
	FullSync(feed []sync.FeedRecord) (sync.Result, error)
	// InsertProducts bulk-loads dump records, skipping existing barcodes.
	InsertProducts(records []sync.InsertRecord) (sync.Result, error)
	// RefreshStock applies a possibly nested list of spreadsheet rows to
	// stock and sell price only.
	RefreshStock(raw interface{}) (sync.Result, error)
	Export() ([]repository.ExportRow, error)
}

type syncService struct {
	products SyncStore
	exec     *sync.Executor
	wsHub    *ws.Hub
}

func NewSyncService(products SyncStore, hub *ws.Hub) SyncService {
	return &syncService{
		products: products,
		exec:     sync.NewExecutor(products),
		wsHub:    hub,
	}
}

func (s *syncService) FullSync(feed []sync.FeedRecord) (sync.Result, error) {
	stored, err := s.products.ListBarcodes()
	if err != nil {
		return sync.Result{}, err
	}

	plan := sync.BuildPlan(feed, stored)
	if plan.IsEmpty() {
		return sync.Result{Malformed: plan.Malformed}, nil
	}

	res := s.exec.Apply(plan)
	s.broadcast("catalog_synced", res)
	return res, nil
}

func (s *syncService) InsertProducts(records []sync.InsertRecord) (sync.Result, error) {
	res := s.exec.InsertOnly(records)
	if res.Changed() {
		s.broadcast("catalog_synced", res)
	}
	return res, nil
}

func (s *syncService) RefreshStock(raw interface{}) (sync.Result, error) {
	rows, err := sync.FlattenRows(raw)
	if err != nil {
		return sync.Result{}, apperr.Wrap(apperr.KindValidation, "invalid rows payload", err)
	}

	res := s.exec.RefreshStock(rows)
	if res.Changed() {
		s.broadcast("stock_update", res)
	}
	return res, nil
}

func (s *syncService) Export() ([]repository.ExportRow, error) {
	return s.products.ExportRows()
}

func (s *syncService) broadcast(event string, res sync.Result) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Publish(ws.Event{Type: event, Payload: res})
}
