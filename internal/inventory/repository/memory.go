package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

// MemoryRepository keeps inventory records and movements in process memory.
// It backs the "memory" data source and the tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	records   []model.InventoryRecord
	movements []model.Movement

	// FailFor makes ListByProduct fail for the given product ids.
	FailFor map[string]error
}

var _ inventory.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(records []model.InventoryRecord, movements []model.Movement) *MemoryRepository {
	return &MemoryRepository{
		records:   append([]model.InventoryRecord(nil), records...),
		movements: append([]model.Movement(nil), movements...),
	}
}

func (r *MemoryRepository) ListByProduct(_ context.Context, productID string) ([]model.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err, ok := r.FailFor[productID]; ok {
		return nil, err
	}

	var out []model.InventoryRecord
	for _, rec := range r.records {
		if rec.ProductID == productID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]model.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.InventoryRecord(nil), r.records...), nil
}

func (r *MemoryRepository) LogMovement(_ context.Context, m *model.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.movements {
		if existing.ID == m.ID {
			return nil
		}
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *MemoryRepository) ListMovements(_ context.Context, f *dto.MovementFilters) ([]model.Movement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.Movement
	for _, m := range r.movements {
		if f.Type != "" && string(m.Type) != f.Type {
			continue
		}
		if f.Status != "" && string(m.Status) != f.Status {
			continue
		}
		if f.StartDate != nil && m.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && m.Date.After(*f.EndDate) {
			continue
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	count := len(matched)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start >= count {
			return []model.Movement{}, count, nil
		}
		end := start + f.PageSize
		if end > count {
			end = count
		}
		matched = matched[start:end]
	}
	return matched, count, nil
}
