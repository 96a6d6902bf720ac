package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null" json:"customer_id"`
	Customer    *User           `json:"customer,omitempty" validate:"-"`
	PhoneNumber string          `gorm:"type:varchar(32);not null" json:"phone_number" validate:"required"`
	Address     string          `json:"address"`
	Comment     string          `json:"comment"`
	Sum         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"sum"`

	PaymentTypeID  uuid.UUID     `gorm:"type:uuid;not null" json:"payment_type_id"`
	PaymentType    *PaymentType  `json:"payment_type,omitempty" validate:"-"`
	DeliveryTypeID uuid.UUID     `gorm:"type:uuid;not null" json:"delivery_type_id"`
	DeliveryType   *DeliveryType `json:"delivery_type,omitempty" validate:"-"`
	OrderStatusID  uuid.UUID     `gorm:"type:uuid;not null" json:"order_status_id"`
	OrderStatus    *OrderStatus  `json:"order_status,omitempty" validate:"-"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"order_items"`
}

// OrderItem snapshots the barcode and quantity at order time; later stock
// changes do not touch it.
type OrderItem struct {
	BaseModel
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Barcode  string    `gorm:"type:varchar(64);not null" json:"barcode" validate:"required"`
	Quantity int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
}
