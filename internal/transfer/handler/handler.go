package handler

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/session"
	"github.com/fekuna/omnipos-stock-service/internal/transfer"
	"github.com/fekuna/omnipos-stock-service/internal/transport/reply"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ stockv1.TransferServiceServer = (*TransferHandler)(nil)

type TransferHandler struct {
	uc     transfer.UseCase
	reply  *reply.Responder
	logger logger.ZapLogger
}

func NewTransferHandler(uc transfer.UseCase, r *reply.Responder, log logger.ZapLogger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		reply:  r,
		logger: log,
	}
}

func (h *TransferHandler) GetDraft(ctx context.Context, _ *emptypb.Empty) (*stockv1.DraftResponse, error) {
	return h.draft(ctx, "failed to load transfer draft", func(sid string) (*transfer.Draft, error) {
		return h.uc.GetDraft(ctx, sid)
	})
}

func (h *TransferHandler) SetLocations(ctx context.Context, req *stockv1.SetLocationsRequest) (*stockv1.DraftResponse, error) {
	return h.draft(ctx, "failed to set transfer locations", func(sid string) (*transfer.Draft, error) {
		return h.uc.SetLocations(ctx, sid, req.FromLocation, req.ToLocation)
	})
}

func (h *TransferHandler) AddItem(ctx context.Context, req *stockv1.AddItemRequest) (*stockv1.DraftResponse, error) {
	return h.draft(ctx, "failed to add transfer item", func(sid string) (*transfer.Draft, error) {
		return h.uc.AddItem(ctx, sid, req.ProductId)
	})
}

func (h *TransferHandler) UpdateQuantity(ctx context.Context, req *stockv1.UpdateQuantityRequest) (*stockv1.DraftResponse, error) {
	return h.draft(ctx, "failed to update transfer quantity", func(sid string) (*transfer.Draft, error) {
		return h.uc.UpdateQuantity(ctx, sid, int(req.Index), transfer.ParseQuantity(req.Quantity))
	})
}

func (h *TransferHandler) RemoveItem(ctx context.Context, req *stockv1.RemoveItemRequest) (*stockv1.DraftResponse, error) {
	return h.draft(ctx, "failed to remove transfer item", func(sid string) (*transfer.Draft, error) {
		return h.uc.RemoveItem(ctx, sid, int(req.Index))
	})
}

func (h *TransferHandler) ListCandidates(ctx context.Context, req *stockv1.ListCandidatesRequest) (*stockv1.ListCandidatesResponse, error) {
	sid, err := h.reply.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := h.uc.Candidates(ctx, sid, req.SearchTerm)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to list transfer candidates")
	}

	protos := make([]*stockv1.Candidate, len(candidates))
	for i, c := range candidates {
		protos[i] = &stockv1.Candidate{
			ProductId: c.ProductID,
			Name:      c.Name,
			Sku:       c.SKU,
			Available: c.Available,
		}
	}
	return &stockv1.ListCandidatesResponse{Candidates: protos}, nil
}

func (h *TransferHandler) SubmitTransfer(ctx context.Context, _ *emptypb.Empty) (*stockv1.SubmitTransferResponse, error) {
	sid, err := h.reply.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := h.uc.Submit(ctx, sid, session.FromContext(ctx).User)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "transfer.submit_failed", "failed to submit transfer")
	}

	return &stockv1.SubmitTransferResponse{
		TransferId: payload.TransferID,
		TotalItems: payload.TotalItems(),
		Notice: h.reply.Success(ctx, "transfer.created", map[string]any{
			"Items": payload.TotalItems(),
		}),
	}, nil
}

func (h *TransferHandler) DiscardDraft(ctx context.Context, _ *emptypb.Empty) (*stockv1.DraftResponse, error) {
	return h.draft(ctx, "failed to discard transfer draft", func(sid string) (*transfer.Draft, error) {
		if err := h.uc.Discard(ctx, sid); err != nil {
			return nil, err
		}
		return h.uc.GetDraft(ctx, sid)
	})
}

func (h *TransferHandler) draft(ctx context.Context, msg string, fn func(sid string) (*transfer.Draft, error)) (*stockv1.DraftResponse, error) {
	sid, err := h.reply.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	d, err := fn(sid)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "", msg)
	}
	return &stockv1.DraftResponse{Draft: mapDraftToProto(d)}, nil
}

func mapDraftToProto(d *transfer.Draft) *stockv1.Draft {
	items := make([]*stockv1.TransferItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = &stockv1.TransferItem{
			ProductId: it.ProductID,
			Quantity:  it.Quantity,
			Available: it.Available,
		}
	}
	return &stockv1.Draft{
		Id:           d.ID,
		FromLocation: d.FromLocation,
		ToLocation:   d.ToLocation,
		State:        string(d.State()),
		Items:        items,
		TotalItems:   d.TotalItems(),
	}
}
