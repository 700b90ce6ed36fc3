package usecase

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	"github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type attributeUseCase struct {
	repo   attribute.Repository
	logger logger.ZapLogger
}

func NewAttributeUseCase(repo attribute.Repository, log logger.ZapLogger) attribute.UseCase {
	return &attributeUseCase{repo: repo, logger: log}
}

// ListAttributes drops rows with an unknown type instead of trusting them.
func (uc *attributeUseCase) ListAttributes(ctx context.Context) ([]model.Attribute, error) {
	rows, err := uc.repo.ListAttributes(ctx)
	if err != nil {
		return nil, err
	}

	attrs := rows[:0]
	for _, a := range rows {
		if a.ID == "" || !a.Type.Valid() {
			uc.logger.Warn("skipping malformed attribute row",
				zap.String("attribute_id", a.ID),
				zap.String("type", string(a.Type)),
			)
			continue
		}
		attrs = append(attrs, a)
	}
	attribute.SortByDisplayOrder(attrs)
	return attrs, nil
}

func (uc *attributeUseCase) ListOptions(ctx context.Context, attributeID string) ([]model.AttributeOption, error) {
	return uc.repo.ListOptions(ctx, attributeID)
}

func (uc *attributeUseCase) ListValues(ctx context.Context) ([]model.ProductAttributeValue, error) {
	values, err := uc.repo.ListValues(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range attribute.FindDuplicates(values) {
		uc.logger.Warn("duplicate attribute values, last one wins",
			zap.String("product_id", d.ProductID),
			zap.String("attribute_id", d.AttributeID),
			zap.Int("count", d.Count),
		)
	}
	return values, nil
}

func (uc *attributeUseCase) ValidateValues(ctx context.Context, req *dto.InsertAttributeValuesRequest) ([]dto.AttributeValueRow, error) {
	attrs, err := uc.ListAttributes(ctx)
	if err != nil {
		return nil, err
	}

	options := make(map[string][]model.AttributeOption)
	for _, a := range attrs {
		if a.Type != model.AttributeSelect {
			continue
		}
		opts, err := uc.repo.ListOptions(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		options[a.ID] = opts
	}
	return dto.ValidateInsert(req, attrs, options)
}

func (uc *attributeUseCase) SaveValues(ctx context.Context, rows []dto.AttributeValueRow) error {
	if err := uc.repo.InsertValues(ctx, rows); err != nil {
		uc.logger.Error("failed to insert attribute values", zap.Int("rows", len(rows)), zap.Error(err))
		return err
	}
	return nil
}
