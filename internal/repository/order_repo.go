package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop-backend/internal/model"
	"go-shop-backend/pkg/apperr"
)

// StockDecrement is one per-product quantity to take off the ledger at
// checkout. Quantities for repeated barcodes are aggregated before this point.
type StockDecrement struct {
	Barcode  string
	Quantity int
}

type OrderRepository interface {
	// CreateWithStockDecrement persists the order with its items and applies
	// every decrement inside one database transaction. Any failure, including
	// a decrement that would drive stock negative, rolls the whole unit back.
	CreateWithStockDecrement(order *model.Order, decrements []StockDecrement) error
	FindPage(page, limit int) ([]model.Order, int64, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	UpdateStatus(id, statusID uuid.UUID) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) CreateWithStockDecrement(order *model.Order, decrements []StockDecrement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, dec := range decrements {
			if err := decrementStock(tx, dec); err != nil {
				return err
			}
		}
		return nil
	})
}

// decrementStock takes the quantity off the ledger with one conditional
// write: the WHERE clause carries the non-negativity invariant so two
// concurrent checkouts cannot oversell.
func decrementStock(tx *gorm.DB, dec StockDecrement) error {
	res := tx.Model(&model.Product{}).
		Where("barcode = ? AND stock >= ?", dec.Barcode, dec.Quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", dec.Quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Consistencyf("insufficient stock for %s", dec.Barcode)
	}
	return nil
}

func (r *orderRepo) FindPage(page, limit int) ([]model.Order, int64, error) {
	var total int64
	if err := r.db.Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := r.db.
		Preload("Customer").Preload("OrderItems").
		Preload("PaymentType").Preload("DeliveryType").Preload("OrderStatus").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("Customer").Preload("OrderItems").
		Preload("PaymentType").Preload("DeliveryType").Preload("OrderStatus").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("order %s not found", id)
	}
	return &order, err
}

func (r *orderRepo) UpdateStatus(id, statusID uuid.UUID) error {
	res := r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Update("order_status_id", statusID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("order %s not found", id)
	}
	return nil
}
