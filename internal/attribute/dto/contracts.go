package dto

import "github.com/fekuna/omnipos-stock-service/internal/model"

// Typed shapes of the attribute stored procedures.

type GetAttributesResponse struct {
	Attributes []model.Attribute `json:"attributes"`
}

type GetAttributeValuesResponse struct {
	Values []model.ProductAttributeValue `json:"values"`
}

type AttributeValueInput struct {
	AttributeID string `json:"attribute_id"`
	Value       string `json:"value"`
}

type InsertAttributeValuesRequest struct {
	ProductID string                `json:"product_id"`
	Values    []AttributeValueInput `json:"values"`
}

// AttributeValueRow is one element of the insert_attribute_values payload.
type AttributeValueRow struct {
	ProductID   string `json:"product_id"`
	AttributeID string `json:"attribute_id"`
	Value       string `json:"value"`
}
