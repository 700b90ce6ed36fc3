package handler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	attrdto "github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
	"github.com/fekuna/omnipos-stock-service/internal/transport/reply"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ stockv1.ProductServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	uc         product.UseCase
	attributes attribute.UseCase
	reply      *reply.Responder
	logger     logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, attributes attribute.UseCase, r *reply.Responder, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:         uc,
		attributes: attributes,
		reply:      r,
		logger:     log,
	}
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *stockv1.ListProductsRequest) (*stockv1.ListProductsResponse, error) {
	views, err := h.uc.ListProducts(ctx, &dto.ProductFilters{
		SearchTerm: req.SearchTerm,
		Categories: req.Categories,
	})
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to list products")
	}

	protos := make([]*stockv1.Product, len(views))
	for i := range views {
		protos[i] = mapViewToProto(&views[i])
	}
	return &stockv1.ListProductsResponse{
		Products: protos,
		Total:    int32(len(protos)),
	}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *stockv1.GetProductRequest) (*stockv1.ProductResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	v, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "", "failed to get product")
	}
	return &stockv1.ProductResponse{Product: mapViewToProto(v)}, nil
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *stockv1.CreateProductRequest) (*stockv1.ProductResponse, error) {
	price, err := parseMoney(req.Price)
	if err != nil {
		ve := apperror.Validation("product.price_not_number", "price", "price must be a number")
		return nil, h.reply.Error(ctx, ve, "product.create_failed", "invalid price")
	}
	cost, err := parseMoney(req.Cost)
	if err != nil {
		ve := apperror.Validation("product.cost_not_number", "cost", "cost must be a number")
		return nil, h.reply.Error(ctx, ve, "product.create_failed", "invalid cost")
	}

	input := &dto.CreateProductInput{
		Name:     req.Name,
		SKU:      req.Sku,
		Category: req.Category,
		Price:    price,
		Cost:     cost,
		Supplier: req.Supplier,
	}
	for _, a := range req.Attributes {
		if a == nil {
			continue
		}
		input.Attributes = append(input.Attributes, attrdto.AttributeValueInput{AttributeID: a.AttributeId, Value: a.Value})
	}

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "product.create_failed", "failed to create product")
	}

	return &stockv1.ProductResponse{
		Product: mapViewToProto(&model.ProductView{Product: *p}),
		Notice:  h.reply.Success(ctx, "product.created", map[string]any{"Name": p.Name}),
	}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *stockv1.DeleteProductRequest) (*stockv1.DeleteProductResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := h.uc.DeleteProduct(ctx, req.Id); err != nil {
		return nil, h.reply.Error(ctx, err, "product.delete_failed", "failed to delete product")
	}
	return &stockv1.DeleteProductResponse{
		Notice: h.reply.Success(ctx, "product.deleted", nil),
	}, nil
}

func (h *ProductHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*stockv1.ListCategoriesResponse, error) {
	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "inventory.load_failed", "failed to list categories")
	}
	return &stockv1.ListCategoriesResponse{Categories: cats}, nil
}

func (h *ProductHandler) ListAttributes(ctx context.Context, _ *emptypb.Empty) (*stockv1.ListAttributesResponse, error) {
	attrs, err := h.attributes.ListAttributes(ctx)
	if err != nil {
		return nil, h.reply.Error(ctx, err, "", "failed to list attributes")
	}

	protos := make([]*stockv1.Attribute, 0, len(attrs))
	for _, a := range attrs {
		pa := &stockv1.Attribute{
			Id:           a.ID,
			Name:         a.Name,
			Code:         a.Code,
			Type:         string(a.Type),
			IsRequired:   a.IsRequired,
			IsFilterable: a.IsFilterable,
			IsVariant:    a.IsVariant,
			DisplayOrder: int32(a.DisplayOrder),
		}
		if a.Type == model.AttributeSelect {
			opts, err := h.attributes.ListOptions(ctx, a.ID)
			if err != nil {
				return nil, h.reply.Error(ctx, err, "", "failed to list attribute options")
			}
			for _, o := range opts {
				pa.Options = append(pa.Options, o.Value)
			}
		}
		protos = append(protos, pa)
	}
	return &stockv1.ListAttributesResponse{Attributes: protos}, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func mapViewToProto(v *model.ProductView) *stockv1.Product {
	p := &stockv1.Product{
		Id:         v.ID,
		Name:       v.Name,
		Sku:        v.SKU,
		Category:   v.Category,
		Price:      v.Price.StringFixed(2),
		Cost:       v.Cost.StringFixed(2),
		InStock:    v.InStock,
		StockLevel: string(v.StockLevel),
		Attributes: v.Attributes,
	}
	if v.Supplier != nil {
		p.Supplier = *v.Supplier
	}
	if !v.CreatedAt.IsZero() {
		p.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	return p
}
