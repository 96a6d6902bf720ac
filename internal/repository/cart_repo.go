package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop-backend/internal/model"
	"go-shop-backend/pkg/apperr"
)

type CartRepository interface {
	GetOrCreate(customerID uuid.UUID) (*model.ShoppingCart, error)
	FindByID(id uuid.UUID) (*model.ShoppingCart, error)
	// AddItem increments the quantity of an existing item or inserts a new one.
	AddItem(cartID uuid.UUID, barcode string, quantity int) error
	SetItemQuantity(cartID uuid.UUID, barcode string, quantity int) error
	DeleteItem(itemID uuid.UUID) error
	// ClearItems removes every item from the cart; called after checkout.
	ClearItems(cartID uuid.UUID) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

func (r *cartRepo) GetOrCreate(customerID uuid.UUID) (*model.ShoppingCart, error) {
	var cart model.ShoppingCart
	err := r.db.Preload("Items").First(&cart, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = model.ShoppingCart{CustomerID: customerID}
		if err := r.db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	return &cart, err
}

func (r *cartRepo) FindByID(id uuid.UUID) (*model.ShoppingCart, error) {
	var cart model.ShoppingCart
	err := r.db.Preload("Items").First(&cart, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("cart %s not found", id)
	}
	return &cart, err
}

func (r *cartRepo) AddItem(cartID uuid.UUID, barcode string, quantity int) error {
	var item model.CartItem
	err := r.db.First(&item, "shopping_cart_id = ? AND barcode = ?", cartID, barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = model.CartItem{ShoppingCartID: cartID, Barcode: barcode, Quantity: quantity}
		return r.db.Create(&item).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&item).Update("quantity", item.Quantity+quantity).Error
}

func (r *cartRepo) SetItemQuantity(cartID uuid.UUID, barcode string, quantity int) error {
	res := r.db.Model(&model.CartItem{}).
		Where("shopping_cart_id = ? AND barcode = ?", cartID, barcode).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("product %s not found in cart", barcode)
	}
	return nil
}

func (r *cartRepo) DeleteItem(itemID uuid.UUID) error {
	res := r.db.Delete(&model.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("cart item %s not found", itemID)
	}
	return nil
}

func (r *cartRepo) ClearItems(cartID uuid.UUID) error {
	return r.db.Where("shopping_cart_id = ?", cartID).Delete(&model.CartItem{}).Error
}
