package sync

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-shop-backend/internal/model"
)

// FeedRecord is one product row supplied by the external POS feed. It is
// mapped into model.Product fields and never persisted itself.
type FeedRecord struct {
	ID           string          `json:"id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	UnitID       string          `json:"unitId"`
}

// InsertRecord is the wider dump shape accepted by the bulk-insert endpoint.
type InsertRecord struct {
	ProductID string          `json:"product_id"`
	Barcode   string          `json:"barcode"`
	NameTm    string          `json:"name_tm"`
	NameRu    string          `json:"name_ru"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Img       string          `json:"img"`
	NoteTm    string          `json:"note_tm"`
	NoteRu    string          `json:"note_ru"`
}

// ToProduct maps a feed record onto a fresh catalog row.
func (r FeedRecord) ToProduct() model.Product {
	return model.Product{
		Barcode:   r.Barcode,
		NameTm:    r.Name,
		NameRu:    " ",
		UnitPrice: r.UnitPrice,
		SellPrice: r.SellingPrice,
		Stock:     r.Quantity,
		UnitID:    r.unitUUID(),
	}
}

func (r FeedRecord) unitUUID() *uuid.UUID {
	if id, err := uuid.Parse(r.UnitID); err == nil {
		return &id
	}
	return nil
}

// MergeFields returns only the incoming fields that should overwrite stored
// values. Zero-valued fields are left out so existing data is preserved.
func (r FeedRecord) MergeFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != "" {
		fields["name_tm"] = r.Name
	}
	if r.Quantity != 0 {
		fields["stock"] = r.Quantity
	}
	if !r.UnitPrice.IsZero() {
		fields["unit_price"] = r.UnitPrice
	}
	if !r.SellingPrice.IsZero() {
		fields["sell_price"] = r.SellingPrice
	}
	if id := r.unitUUID(); id != nil {
		fields["unit_id"] = *id
	}
	return fields
}

func (r InsertRecord) ToProduct() model.Product {
	return model.Product{
		Barcode:       r.Barcode,
		NameTm:        r.NameTm,
		NameRu:        r.NameRu,
		UnitPrice:     decimal.Zero,
		SellPrice:     r.Price,
		Stock:         r.Stock,
		Images:        []string{r.Img},
		DescriptionTm: r.NoteTm,
		DescriptionRu: r.NoteRu,
	}
}
