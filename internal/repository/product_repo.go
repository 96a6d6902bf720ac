package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-shop-backend/internal/model"
	"go-shop-backend/internal/sync"
	"go-shop-backend/pkg/apperr"
)

// ExportRow is the projection handed to the external POS for its own
// reconciliation.
type ExportRow struct {
	Barcode   string          `json:"barcode"`
	Stock     int             `json:"stock"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

type ProductRepository interface {
	sync.CatalogStore

	Create(product *model.Product) error
	Update(product *model.Product) error
	FindByBarcode(barcode string) (*model.Product, error)
	// FindPage pages through the catalog; a non-empty search term matches
	// the barcode exactly or either display name case-insensitively.
	FindPage(page, limit int, search string) ([]model.Product, int64, error)
	FindInStock(limit int) ([]model.Product, error)
	// MissingBarcodes returns which of the given barcodes do not exist.
	MissingBarcodes(barcodes []string) ([]string, error)
	ExportRows() ([]ExportRow, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	err := r.db.Create(product).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflictf("barcode %s already exists", product.Barcode)
	}
	return err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").Preload("SubCategory").
		Preload("Manufacturer").Preload("Unit").Preload("Status").
		First(&product, "barcode = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("product %s not found", barcode)
	}
	return &product, err
}

func (r *productRepo) FindPage(page, limit int, search string) ([]model.Product, int64, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		if search == "" {
			return q
		}
		pattern := "%" + search + "%"
		return q.Where("barcode = ? OR name_tm ILIKE ? OR name_ru ILIKE ?", search, pattern, pattern)
	}

	var total int64
	if err := filter(r.db.Model(&model.Product{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := filter(r.db).
		Preload("Category").Preload("SubCategory").
		Preload("Manufacturer").Preload("Unit").Preload("Status").
		Order("updated_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindInStock(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Preload("Status").
		Where("stock > 0").
		Order("updated_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) MissingBarcodes(barcodes []string) ([]string, error) {
	var existing []string
	err := r.db.Model(&model.Product{}).
		Where("barcode IN ?", barcodes).
		Pluck("barcode", &existing).Error
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		found[b] = struct{}{}
	}
	var missing []string
	for _, b := range barcodes {
		if _, ok := found[b]; !ok {
			missing = append(missing, b)
		}
	}
	return missing, nil
}

func (r *productRepo) ExportRows() ([]ExportRow, error) {
	var rows []ExportRow
	err := r.db.Model(&model.Product{}).
		Select("barcode", "stock", "sell_price").
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// ---- sync.CatalogStore ----

func (r *productRepo) ListBarcodes() ([]string, error) {
	var barcodes []string
	err := r.db.Model(&model.Product{}).Pluck("barcode", &barcodes).Error
	return barcodes, err
}

func (r *productRepo) CreateProducts(products []model.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "barcode"}},
		DoNothing: true,
	}).Create(&products)
	return res.RowsAffected, res.Error
}

func (r *productRepo) UpdateProduct(barcode string, fields map[string]interface{}) error {
	// Zero rows matched means the row vanished between planning and apply;
	// treated as a no-op to keep the run idempotent.
	return r.db.Model(&model.Product{}).
		Where("barcode = ?", barcode).
		Updates(fields).Error
}

func (r *productRepo) DeleteByBarcodes(barcodes []string) (int64, error) {
	if len(barcodes) == 0 {
		return 0, nil
	}
	res := r.db.Where("barcode IN ?", barcodes).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) UpdateStockByBarcode(upd sync.StockUpdate) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("barcode = ?", upd.Barcode).
		Updates(map[string]interface{}{
			"stock":      upd.Stock,
			"sell_price": upd.SellPrice,
		})
	return res.RowsAffected, res.Error
}
