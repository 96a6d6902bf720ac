package model

import "github.com/google/uuid"

// Reference data: simple lookup tables managed by the admin panel.

type Category struct {
	BaseModel
	NameTm        string        `gorm:"type:varchar(255);not null" json:"name_tm" validate:"required"`
	NameRu        string        `gorm:"type:varchar(255)" json:"name_ru"`
	Image         string        `json:"image"`
	SubCategories []SubCategory `json:"sub_categories,omitempty"`
}

type SubCategory struct {
	BaseModel
	NameTm     string    `gorm:"type:varchar(255);not null" json:"name_tm" validate:"required"`
	NameRu     string    `gorm:"type:varchar(255)" json:"name_ru"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null" json:"category_id" validate:"uuid_required"`
}

type Manufacturer struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Logo  string `json:"logo"`
	About string `json:"about"`
}

type Unit struct {
	BaseModel
	NameTm string `gorm:"type:varchar(64);not null" json:"name_tm" validate:"required"`
	NameRu string `gorm:"type:varchar(64)" json:"name_ru"`
}

type Status struct {
	BaseModel
	NameTm string `gorm:"type:varchar(64);not null" json:"name_tm" validate:"required"`
	NameRu string `gorm:"type:varchar(64)" json:"name_ru"`
	Color  string `gorm:"type:varchar(16)" json:"color"`
}

type PaymentType struct {
	BaseModel
	NameTm string `gorm:"type:varchar(128);not null" json:"name_tm" validate:"required"`
	NameRu string `gorm:"type:varchar(128)" json:"name_ru"`
}

type DeliveryType struct {
	BaseModel
	NameTm string `gorm:"type:varchar(128);not null" json:"name_tm" validate:"required"`
	NameRu string `gorm:"type:varchar(128)" json:"name_ru"`
}

// OrderStatus is the lifecycle label attached to an order (new, delivering, done...).
type OrderStatus struct {
	BaseModel
	NameTm string `gorm:"type:varchar(64);not null" json:"name_tm" validate:"required"`
	NameRu string `gorm:"type:varchar(64)" json:"name_ru"`
	Color  string `gorm:"type:varchar(16)" json:"color"`
}
