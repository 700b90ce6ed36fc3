package handler

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/location/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/transport/reply"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ stockv1.LocationServiceServer = (*LocationHandler)(nil)

type LocationHandler struct {
	uc     location.UseCase
	reply  *reply.Responder
	logger logger.ZapLogger
}

func NewLocationHandler(uc location.UseCase, r *reply.Responder, log logger.ZapLogger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		reply:  r,
		logger: log,
	}
}

func (h *LocationHandler) CreateLocation(ctx context.Context, req *stockv1.CreateLocationRequest) (*stockv1.LocationResponse, error) {
	l, err := h.uc.CreateLocation(ctx, &dto.CreateLocationInput{
		Name:     req.Name,
		Type:     req.Type,
		Address:  req.Address,
		Capacity: req.Capacity,
		Manager:  req.Manager,
		Contact:  req.Contact,
	})
	if err != nil {
		return nil, h.reply.Error(ctx, err, "location.create_failed", "failed to create location")
	}

	return &stockv1.LocationResponse{
		Location: mapModelToProto(l),
		Notice:   h.reply.Success(ctx, "location.created", map[string]any{"Name": l.Name}),
	}, nil
}

func (h *LocationHandler) GetLocation(ctx context.Context, req *stockv1.GetLocationRequest) (*stockv1.LocationResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	l, err := h.uc.GetLocation(ctx, req.Id)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "", "failed to get location")
	}
	return &stockv1.LocationResponse{Location: mapModelToProto(l)}, nil
}

func (h *LocationHandler) ListLocations(ctx context.Context, _ *emptypb.Empty) (*stockv1.ListLocationsResponse, error) {
	locs, err := h.uc.ListLocations(ctx)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to list locations")
	}

	protos := make([]*stockv1.Location, len(locs))
	for i := range locs {
		protos[i] = mapModelToProto(&locs[i])
	}
	return &stockv1.ListLocationsResponse{Locations: protos}, nil
}

func mapModelToProto(m *model.Location) *stockv1.Location {
	if m == nil {
		return nil
	}
	return &stockv1.Location{
		Id:       m.ID,
		Name:     m.Name,
		Type:     string(m.Type),
		Address:  deref(m.Address),
		Capacity: m.Capacity,
		Manager:  deref(m.Manager),
		Contact:  deref(m.Contact),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
