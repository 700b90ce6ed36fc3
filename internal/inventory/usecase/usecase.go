package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/metrics"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultFetchConcurrency = 8

type inventoryUseCase struct {
	repo        inventory.Repository
	locations   location.Repository
	products    product.Repository
	thresholds  inventory.Thresholds
	concurrency int
	logger      logger.ZapLogger
}

type Options struct {
	Thresholds       inventory.Thresholds
	FetchConcurrency int
	// Products lets ListLowStock report catalogue products that have no
	// inventory rows at all.
	Products product.Repository
}

func NewInventoryUseCase(repo inventory.Repository, locations location.Repository, opts Options, log logger.ZapLogger) inventory.UseCase {
	if opts.Thresholds == (inventory.Thresholds{}) {
		opts.Thresholds = inventory.DefaultThresholds
	}
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = defaultFetchConcurrency
	}
	return &inventoryUseCase{
		repo:        repo,
		locations:   locations,
		products:    opts.Products,
		thresholds:  opts.Thresholds,
		concurrency: opts.FetchConcurrency,
		logger:      log,
	}
}

func (uc *inventoryUseCase) GetProductStock(ctx context.Context, productID string) (int64, error) {
	records, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return inventory.TotalOnHand(productID, records), nil
}

// AggregateStock fans out one lookup per product. A failed lookup only degrades
// that product to zero; it never aborts the others.
func (uc *inventoryUseCase) AggregateStock(ctx context.Context, productIDs []string) map[string]int64 {
	totals := make([]int64, len(productIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, id := range productIDs {
		i, id := i, id
		g.Go(func() error {
			records, err := uc.repo.ListByProduct(gctx, id)
			if err != nil {
				pe := &apperror.PartialFetchError{ProductID: id, Err: err}
				uc.logger.Warn("inventory lookup failed, using zero stock",
					zap.String("product_id", id),
					zap.Error(pe),
				)
				metrics.PartialFetchErrors.Inc()
				return nil
			}
			totals[i] = inventory.TotalOnHand(id, records)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]int64, len(productIDs))
	for i, id := range productIDs {
		out[id] = totals[i]
	}
	return out
}

func (uc *inventoryUseCase) AvailableAt(ctx context.Context, productID, locationID string) (int64, error) {
	records, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return inventory.QuantityAt(productID, locationID, records), nil
}

func (uc *inventoryUseCase) LocationSummaries(ctx context.Context) ([]inventory.LocationSummary, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := uc.locations.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := inventory.SummarizeByLocation(records, locations)
	for _, s := range summaries {
		if s.OverCapacity {
			uc.logger.Warn("location holds more stock than its capacity",
				zap.String("location_id", s.LocationID),
				zap.Int64("total_items", s.TotalItems),
				zap.Int64("capacity", *s.Capacity),
			)
		}
	}
	return summaries, nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context) ([]inventory.LowStockItem, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int64)
	if uc.products != nil {
		products, err := uc.products.FindAll(ctx, nil)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			totals[p.ID] = 0
		}
	}
	for _, r := range records {
		totals[r.ProductID] += r.Quantity
	}
	return inventory.LowStock(totals, uc.thresholds), nil
}

func (uc *inventoryUseCase) Classify(qty int64) model.StockLevel {
	return inventory.ClassifyStock(qty, uc.thresholds)
}

func (uc *inventoryUseCase) RecordMovement(ctx context.Context, m *model.Movement) error {
	switch m.Type {
	case model.MovementTransfer, model.MovementReturn, model.MovementAdjustment:
	default:
		return apperror.Validation("movement.invalid_type", "type", "unknown movement type "+string(m.Type))
	}
	switch m.Status {
	case model.MovementCompleted, model.MovementPending, model.MovementRejected:
	case "":
		m.Status = model.MovementPending
	default:
		return apperror.Validation("movement.invalid_status", "status", "unknown movement status "+string(m.Status))
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	return uc.repo.LogMovement(ctx, m)
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.Movement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}
