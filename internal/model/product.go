package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name     string          `db:"name" json:"name"`
	SKU      string          `db:"sku" json:"sku"`
	Category string          `db:"category" json:"category"`
	Price    decimal.Decimal `db:"price" json:"price"`
	Cost     decimal.Decimal `db:"cost" json:"cost"`
	Supplier *string         `db:"supplier" json:"supplier"` // Nullable
}

// ProductView is a product row as the dashboard shows it: catalogue data joined
// with the total stock on hand and the merged attribute values.
type ProductView struct {
	Product
	InStock    int64             `json:"in_stock"`
	StockLevel StockLevel        `json:"stock_level"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
