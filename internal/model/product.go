package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Barcode       string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"barcode" validate:"required"`
	NameTm        string          `gorm:"type:varchar(255)" json:"name_tm"`
	NameRu        string          `gorm:"type:varchar(255)" json:"name_ru"`
	DescriptionTm string          `json:"description_tm"`
	DescriptionRu string          `json:"description_ru"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"unit_price"`
	SellPrice     decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"sell_price"`
	Stock         int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Images        []string        `gorm:"serializer:json" json:"images"`

	// Reference data (managed outside the catalog core)
	CategoryID     *uuid.UUID    `gorm:"type:uuid" json:"category_id,omitempty"`
	Category       *Category     `json:"category,omitempty" validate:"-"`
	SubCategoryID  *uuid.UUID    `gorm:"type:uuid" json:"sub_category_id,omitempty"`
	SubCategory    *SubCategory  `json:"sub_category,omitempty" validate:"-"`
	ManufacturerID *uuid.UUID    `gorm:"type:uuid" json:"manufacturer_id,omitempty"`
	Manufacturer   *Manufacturer `json:"manufacturer,omitempty" validate:"-"`
	UnitID         *uuid.UUID    `gorm:"type:uuid" json:"unit_id,omitempty"`
	Unit           *Unit         `json:"unit,omitempty" validate:"-"`
	StatusID       *uuid.UUID    `gorm:"type:uuid" json:"status_id,omitempty"`
	Status         *Status       `json:"status,omitempty" validate:"-"`
}
