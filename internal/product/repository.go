package product

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// FindAll only honours filters.IDs; search and category are applied in memory.
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Count(ctx context.Context) (int, error)
	// Delete returns a NotFound RemoteError when id is absent.
	Delete(ctx context.Context, id string) error
}
