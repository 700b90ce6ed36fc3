package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	locations []model.Location
}

var _ location.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(locations []model.Location) *MemoryRepository {
	return &MemoryRepository{locations: append([]model.Location(nil), locations...)}
}

func (r *MemoryRepository) Create(_ context.Context, l *model.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.locations {
		if existing.ID == l.ID {
			return apperror.Remote("locations.insert", apperror.KindConstraintViolation, nil)
		}
	}
	r.locations = append(r.locations, *l)
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.locations {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]model.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Location(nil), r.locations...), nil
}
