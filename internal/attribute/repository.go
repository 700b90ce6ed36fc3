package attribute

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

type Repository interface {
	ListAttributes(ctx context.Context) ([]model.Attribute, error)
	ListOptions(ctx context.Context, attributeID string) ([]model.AttributeOption, error)
	ListValues(ctx context.Context) ([]model.ProductAttributeValue, error)
	InsertValues(ctx context.Context, rows []dto.AttributeValueRow) error
}
