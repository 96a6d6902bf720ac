package model

import "github.com/google/uuid"

// ShoppingCart is transient pre-checkout state; its items are cleared after a
// successful order.
type ShoppingCart struct {
	BaseModel
	CustomerID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"customer_id"`
	Items      []CartItem `gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:CASCADE" json:"items"`
}

type CartItem struct {
	BaseModel
	ShoppingCartID uuid.UUID `gorm:"type:uuid;not null;index" json:"shopping_cart_id"`
	Barcode        string    `gorm:"type:varchar(64);not null" json:"barcode" validate:"required"`
	Quantity       int       `gorm:"not null;default:1" json:"quantity"`
}
