package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	products []model.Product

	// Err, when set, is returned by FindAll and Count.
	Err error
}

var _ product.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(products []model.Product) *MemoryRepository {
	return &MemoryRepository{products: append([]model.Product(nil), products...)}
}

func (r *MemoryRepository) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.ID == p.ID || existing.SKU == p.SKU {
			return apperror.Remote("products.insert", apperror.KindConstraintViolation, nil)
		}
	}
	r.products = append(r.products, *p)
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if f != nil && f.IDs != nil && !slices.Contains(f.IDs, p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.products), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = slices.Delete(r.products, i, i+1)
			return nil
		}
	}
	return apperror.NotFound("products.delete")
}
