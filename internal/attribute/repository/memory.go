package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	"github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	attrs   []model.Attribute
	options []model.AttributeOption
	values  []model.ProductAttributeValue

	// Err, when set, is returned by every read.
	Err error
}

var _ attribute.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(attrs []model.Attribute, options []model.AttributeOption, values []model.ProductAttributeValue) *MemoryRepository {
	return &MemoryRepository{
		attrs:   append([]model.Attribute(nil), attrs...),
		options: append([]model.AttributeOption(nil), options...),
		values:  append([]model.ProductAttributeValue(nil), values...),
	}
}

func (r *MemoryRepository) ListAttributes(_ context.Context) ([]model.Attribute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]model.Attribute(nil), r.attrs...), nil
}

func (r *MemoryRepository) ListOptions(_ context.Context, attributeID string) ([]model.AttributeOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []model.AttributeOption
	for _, o := range r.options {
		if o.AttributeID == attributeID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListValues(_ context.Context) ([]model.ProductAttributeValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]model.ProductAttributeValue(nil), r.values...), nil
}

// InsertValues upserts on (product_id, attribute_id) like the stored procedure.
func (r *MemoryRepository) InsertValues(_ context.Context, rows []dto.AttributeValueRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, row := range rows {
		updated := false
		for i := range r.values {
			if r.values[i].ProductID == row.ProductID && r.values[i].AttributeID == row.AttributeID {
				r.values[i].Value = row.Value
				r.values[i].UpdatedAt = now
				updated = true
				break
			}
		}
		if !updated {
			r.values = append(r.values, model.ProductAttributeValue{
				ID:          uuid.New().String(),
				ProductID:   row.ProductID,
				AttributeID: row.AttributeID,
				Value:       row.Value,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}
	return nil
}
