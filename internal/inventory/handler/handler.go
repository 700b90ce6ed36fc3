package handler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/transport/reply"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var _ stockv1.InventoryServiceServer = (*InventoryHandler)(nil)

type InventoryHandler struct {
	uc     inventory.UseCase
	reply  *reply.Responder
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, r *reply.Responder, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		reply:  r,
		logger: log,
	}
}

func (h *InventoryHandler) GetProductStock(ctx context.Context, req *stockv1.GetProductStockRequest) (*stockv1.ProductStockResponse, error) {
	if req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	qty, err := h.uc.GetProductStock(ctx, req.ProductId)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to get product stock")
	}
	return &stockv1.ProductStockResponse{
		ProductId:  req.ProductId,
		InStock:    qty,
		StockLevel: string(h.uc.Classify(qty)),
	}, nil
}

func (h *InventoryHandler) ListLocationSummaries(ctx context.Context, _ *emptypb.Empty) (*stockv1.ListLocationSummariesResponse, error) {
	summaries, err := h.uc.LocationSummaries(ctx)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to summarize locations")
	}

	protos := make([]*stockv1.LocationSummary, len(summaries))
	for i, s := range summaries {
		protos[i] = &stockv1.LocationSummary{
			LocationId:   s.LocationID,
			Name:         s.Name,
			ProductCount: int32(s.ProductCount),
			TotalItems:   s.TotalItems,
			Capacity:     s.Capacity,
			OverCapacity: s.OverCapacity,
		}
	}
	return &stockv1.ListLocationSummariesResponse{Summaries: protos}, nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, _ *emptypb.Empty) (*stockv1.ListLowStockResponse, error) {
	items, err := h.uc.ListLowStock(ctx)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to list low stock")
	}

	protos := make([]*stockv1.LowStockItem, len(items))
	for i, it := range items {
		protos[i] = &stockv1.LowStockItem{
			ProductId:  it.ProductID,
			InStock:    it.InStock,
			StockLevel: string(it.Level),
		}
	}
	return &stockv1.ListLowStockResponse{Items: protos}, nil
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *stockv1.MovementFilters) (*stockv1.ListMovementsResponse, error) {
	filters, err := mapFilters(req)
	if err != nil {
		return nil, err
	}

	movements, count, err := h.uc.ListMovements(ctx, filters)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to list movements")
	}

	protos := make([]*stockv1.Movement, len(movements))
	for i, m := range movements {
		protos[i] = &stockv1.Movement{
			Id:     m.ID,
			Date:   m.Date.Format(time.RFC3339),
			Type:   string(m.Type),
			From:   m.From,
			To:     m.To,
			Items:  int32(m.Items),
			User:   m.User,
			Status: string(m.Status),
		}
	}
	return &stockv1.ListMovementsResponse{
		Movements: protos,
		Total:     int32(count),
		Page:      req.Page,
		PageSize:  req.PageSize,
	}, nil
}

func (h *InventoryHandler) ExportMovements(ctx context.Context, req *stockv1.MovementFilters) (*stockv1.ExportMovementsResponse, error) {
	filters, err := mapFilters(req)
	if err != nil {
		return nil, err
	}
	filters.Page, filters.PageSize = 0, 0

	var buf bytes.Buffer
	if err := h.uc.ExportMovements(ctx, filters, &buf); err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to export movements")
	}
	return &stockv1.ExportMovementsResponse{
		FileName:    fmt.Sprintf("movements-%s.xlsx", time.Now().Format("20060102")),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}

func mapFilters(req *stockv1.MovementFilters) (*dto.MovementFilters, error) {
	f := &dto.MovementFilters{
		Type:     req.Type,
		Status:   req.Status,
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	}
	var err error
	if f.StartDate, err = parseDate(req.StartDate, false); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid start_date")
	}
	if f.EndDate, err = parseDate(req.EndDate, true); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid end_date")
	}
	return f, nil
}

// parseDate accepts RFC 3339 or a bare date. A bare end date covers the whole day.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
