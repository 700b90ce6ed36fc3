package inventory

import (
	"context"
	"io"

	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

type UseCase interface {
	GetProductStock(ctx context.Context, productID string) (int64, error)
	AggregateStock(ctx context.Context, productIDs []string) map[string]int64
	AvailableAt(ctx context.Context, productID, locationID string) (int64, error)
	LocationSummaries(ctx context.Context) ([]LocationSummary, error)
	ListLowStock(ctx context.Context) ([]LowStockItem, error)
	Classify(qty int64) model.StockLevel

	RecordMovement(ctx context.Context, movement *model.Movement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.Movement, int, error)
	ExportMovements(ctx context.Context, filters *dto.MovementFilters, w io.Writer) error
}
