package product

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.ProductView, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductView, error)
	ListCategories(ctx context.Context) ([]string, error)
	DeleteProduct(ctx context.Context, id string) error

	// SyncSearchIndex rebuilds the search index from the store.
	SyncSearchIndex(ctx context.Context) error
}
