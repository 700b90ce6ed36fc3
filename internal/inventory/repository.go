package inventory

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

type Repository interface {
	// Inventory records
	ListByProduct(ctx context.Context, productID string) ([]model.InventoryRecord, error)
	ListAll(ctx context.Context) ([]model.InventoryRecord, error)

	// Movements / history
	LogMovement(ctx context.Context, movement *model.Movement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.Movement, int, error)
}
