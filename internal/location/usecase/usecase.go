package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/location/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type locationUseCase struct {
	repo   location.Repository
	logger logger.ZapLogger
}

func NewLocationUseCase(repo location.Repository, log logger.ZapLogger) location.UseCase {
	return &locationUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *locationUseCase) CreateLocation(ctx context.Context, input *dto.CreateLocationInput) (*model.Location, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		return nil, apperror.Validation("location.name_required", "name", "name must be at least 2 characters")
	}
	locType := model.LocationType(input.Type)
	if locType != model.LocationWarehouse && locType != model.LocationStore {
		return nil, apperror.Validation("location.invalid_type", "type", "type must be warehouse or store")
	}
	if input.Capacity != nil && *input.Capacity < 0 {
		return nil, apperror.Validation("location.invalid_capacity", "capacity", "capacity cannot be negative")
	}

	now := time.Now()
	l := &model.Location{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      locType,
		Address:   optional(input.Address),
		Capacity:  input.Capacity,
		Manager:   optional(input.Manager),
		Contact:   optional(input.Contact),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		uc.logger.Error("failed to create location", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (uc *locationUseCase) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	l, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperror.NotFound("locations.get")
	}
	return l, nil
}

func (uc *locationUseCase) ListLocations(ctx context.Context) ([]model.Location, error) {
	return uc.repo.FindAll(ctx)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
