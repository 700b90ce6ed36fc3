package dto

import (
	attrdto "github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name       string                        `json:"name"`
	SKU        string                        `json:"sku"`
	Category   string                        `json:"category"`
	Price      decimal.Decimal               `json:"price"`
	Cost       decimal.Decimal               `json:"cost"`
	Supplier   string                        `json:"supplier"`
	Attributes []attrdto.AttributeValueInput `json:"attributes"`
}
