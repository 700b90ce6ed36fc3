package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/metrics"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/transfer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultDraftTTL = 24 * time.Hour
	submitLockTTL   = 10 * time.Second

	CodeUnknownLocation  = "transfer.unknown_location"
	CodeUnknownProduct   = "transfer.unknown_product"
	CodeSubmitInProgress = "transfer.submit_in_progress"
)

type transferUseCase struct {
	drafts    transfer.DraftRepository
	products  product.Repository
	inventory inventory.UseCase
	locations location.Repository
	publisher transfer.Publisher
	lock      *cache.RedisClient
	draftTTL  time.Duration
	logger    logger.ZapLogger
}

type Options struct {
	// Publisher receives submitted transfers. Without one a submit is only acknowledged.
	Publisher transfer.Publisher
	// Lock serialises submits of the same session across replicas.
	Lock     *cache.RedisClient
	DraftTTL time.Duration
}

func NewTransferUseCase(
	drafts transfer.DraftRepository,
	products product.Repository,
	inv inventory.UseCase,
	locations location.Repository,
	opts Options,
	log logger.ZapLogger,
) transfer.UseCase {
	if opts.DraftTTL <= 0 {
		opts.DraftTTL = defaultDraftTTL
	}
	return &transferUseCase{
		drafts:    drafts,
		products:  products,
		inventory: inv,
		locations: locations,
		publisher: opts.Publisher,
		lock:      opts.Lock,
		draftTTL:  opts.DraftTTL,
		logger:    log,
	}
}

func (uc *transferUseCase) GetDraft(ctx context.Context, sessionID string) (*transfer.Draft, error) {
	d, err := uc.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = &transfer.Draft{}
	}
	return d, nil
}

func (uc *transferUseCase) SetLocations(ctx context.Context, sessionID, from, to string) (*transfer.Draft, error) {
	for _, id := range []string{from, to} {
		if id == "" {
			continue
		}
		l, err := uc.locations.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if l == nil {
			return nil, apperror.Validation(CodeUnknownLocation, "location_id", "Unknown location "+id)
		}
	}

	return uc.mutate(ctx, sessionID, func(d *transfer.Draft) error {
		sourceChanged := d.FromLocation != from
		d.SetFrom(from)
		d.SetTo(to)
		if sourceChanged {
			for i := range d.Items {
				d.Items[i].Available = uc.availableAt(ctx, d.Items[i].ProductID, d.FromLocation)
			}
		}
		return nil
	})
}

func (uc *transferUseCase) AddItem(ctx context.Context, sessionID, productID string) (*transfer.Draft, error) {
	if productID != "" {
		p, err := uc.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, apperror.Validation(CodeUnknownProduct, "product_id", "Unknown product "+productID)
		}
	}

	return uc.mutate(ctx, sessionID, func(d *transfer.Draft) error {
		return d.AddItem(productID, uc.availableAt(ctx, productID, d.FromLocation))
	})
}

func (uc *transferUseCase) UpdateQuantity(ctx context.Context, sessionID string, index int, qty int64) (*transfer.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *transfer.Draft) error {
		return d.UpdateQuantity(index, qty)
	})
}

func (uc *transferUseCase) RemoveItem(ctx context.Context, sessionID string, index int) (*transfer.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *transfer.Draft) error {
		return d.RemoveItem(index)
	})
}

// Candidates lists the products that can still be staged, with their stock at
// the draft's source location.
func (uc *transferUseCase) Candidates(ctx context.Context, sessionID, term string) ([]transfer.Candidate, error) {
	d, err := uc.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	candidates := make([]transfer.Candidate, 0, len(products))
	for _, p := range products {
		if d.Contains(p.ID) {
			continue
		}
		candidates = append(candidates, transfer.Candidate{
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
		})
	}
	candidates = transfer.AvailableCandidates(candidates, d, term)
	for i := range candidates {
		candidates[i].Available = uc.availableAt(ctx, candidates[i].ProductID, d.FromLocation)
	}
	return candidates, nil
}

// Submit validates the session's draft and hands it to the publisher. The draft
// is only cleared once the publish succeeded.
func (uc *transferUseCase) Submit(ctx context.Context, sessionID, requestedBy string) (*transfer.SubmittedPayload, error) {
	if uc.lock != nil {
		lockKey := "transfer:submit:" + sessionID
		token := uuid.New().String()
		ok, err := uc.lock.AcquireLock(ctx, lockKey, token, submitLockTTL)
		if err != nil {
			return nil, apperror.Remote("transfer.lock", apperror.KindNetwork, err)
		}
		if !ok {
			return nil, apperror.Validation(CodeSubmitInProgress, "", "This transfer is already being submitted")
		}
		defer func() {
			if err := uc.lock.ReleaseLock(context.Background(), lockKey, token); err != nil {
				uc.logger.Warn("failed to release submit lock", zap.String("session_id", sessionID), zap.Error(err))
			}
		}()
	}

	d, err := uc.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	submitted, err := d.Submit()
	if err != nil {
		metrics.TransferSubmissions.WithLabelValues("rejected").Inc()
		return nil, err
	}

	for _, it := range submitted.Items {
		if it.Quantity > it.Available {
			uc.logger.Warn("transfer quantity exceeds stock captured at staging",
				zap.String("product_id", it.ProductID),
				zap.Int64("quantity", it.Quantity),
				zap.Int64("available", it.Available),
			)
		}
	}

	payload := &transfer.SubmittedPayload{
		TransferID:   submitted.ID,
		FromLocation: submitted.FromLocation,
		ToLocation:   submitted.ToLocation,
		RequestedBy:  requestedBy,
		Items:        submitted.Items,
	}
	if payload.TransferID == "" {
		payload.TransferID = uuid.New().String()
	}

	if uc.publisher != nil {
		if err := uc.publish(ctx, payload); err != nil {
			metrics.TransferSubmissions.WithLabelValues("failed").Inc()
			uc.logger.Error("failed to publish transfer",
				zap.String("transfer_id", payload.TransferID),
				zap.Error(err),
			)
			return nil, apperror.Remote("transfer.publish", apperror.KindNetwork, err)
		}
	} else {
		uc.logger.Info("transfer acknowledged without publisher", zap.String("transfer_id", payload.TransferID))
	}

	// A draft that survives here is resubmitted under the same transfer id,
	// which consumers record only once.
	if err := uc.drafts.Delete(ctx, sessionID); err != nil {
		uc.logger.Error("failed to clear submitted draft",
			zap.String("session_id", sessionID),
			zap.String("transfer_id", payload.TransferID),
			zap.Error(err),
		)
	}
	metrics.TransferSubmissions.WithLabelValues("submitted").Inc()

	uc.logger.Info("transfer submitted",
		zap.String("transfer_id", payload.TransferID),
		zap.String("from", payload.FromLocation),
		zap.String("to", payload.ToLocation),
		zap.Int64("total_items", payload.TotalItems()),
	)
	return payload, nil
}

func (uc *transferUseCase) Discard(ctx context.Context, sessionID string) error {
	return uc.drafts.Delete(ctx, sessionID)
}

func (uc *transferUseCase) publish(ctx context.Context, payload *transfer.SubmittedPayload) error {
	event := transfer.SubmittedEvent{
		EventID:   uuid.New().String(),
		EventType: transfer.EventTransferSubmitted,
		Payload:   *payload,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return uc.publisher.Publish(ctx, payload.TransferID, data)
}

// mutate loads the session's draft, applies fn and saves the result. A failing
// fn leaves the stored draft untouched. The draft id is minted on first save and
// becomes the transfer id on submit.
func (uc *transferUseCase) mutate(ctx context.Context, sessionID string, fn func(*transfer.Draft) error) (*transfer.Draft, error) {
	d, err := uc.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if err := uc.drafts.Save(ctx, sessionID, d, uc.draftTTL); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *transferUseCase) availableAt(ctx context.Context, productID, locationID string) int64 {
	if productID == "" || locationID == "" {
		return 0
	}
	qty, err := uc.inventory.AvailableAt(ctx, productID, locationID)
	if err != nil {
		uc.logger.Warn("stock lookup failed, using zero",
			zap.String("product_id", productID),
			zap.String("location_id", locationID),
			zap.Error(err),
		)
		return 0
	}
	return qty
}
