package stockv1

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/transport/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ProductServiceName = "omnipos.stock.v1.ProductService"

type Product struct {
	Id         string            `json:"id"`
	Name       string            `json:"name"`
	Sku        string            `json:"sku"`
	Category   string            `json:"category"`
	Price      string            `json:"price"`
	Cost       string            `json:"cost"`
	Supplier   string            `json:"supplier,omitempty"`
	InStock    int64             `json:"in_stock"`
	StockLevel string            `json:"stock_level"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  string            `json:"created_at,omitempty"`
}

type ListProductsRequest struct {
	SearchTerm string   `json:"search_term"`
	Categories []string `json:"categories"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
	Total    int32      `json:"total"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type AttributeValue struct {
	AttributeId string `json:"attribute_id"`
	Value       string `json:"value"`
}

type CreateProductRequest struct {
	Name       string            `json:"name"`
	Sku        string            `json:"sku"`
	Category   string            `json:"category"`
	Price      string            `json:"price"`
	Cost       string            `json:"cost"`
	Supplier   string            `json:"supplier"`
	Attributes []*AttributeValue `json:"attributes"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
	Notice  *Notice  `json:"notice,omitempty"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

type DeleteProductResponse struct {
	Notice *Notice `json:"notice"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type Attribute struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Type         string   `json:"type"`
	IsRequired   bool     `json:"is_required"`
	IsFilterable bool     `json:"is_filterable"`
	IsVariant    bool     `json:"is_variant"`
	DisplayOrder int32    `json:"display_order"`
	Options      []string `json:"options,omitempty"`
}

type ListAttributesResponse struct {
	Attributes []*Attribute `json:"attributes"`
}

type ProductServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*DeleteProductResponse, error)
	ListCategories(context.Context, *emptypb.Empty) (*ListCategoriesResponse, error)
	ListAttributes(context.Context, *emptypb.Empty) (*ListAttributesResponse, error)
}

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ProductServiceName, "ListProducts", ProductServiceServer.ListProducts),
		grpcjson.Unary(ProductServiceName, "GetProduct", ProductServiceServer.GetProduct),
		grpcjson.Unary(ProductServiceName, "CreateProduct", ProductServiceServer.CreateProduct),
		grpcjson.Unary(ProductServiceName, "DeleteProduct", ProductServiceServer.DeleteProduct),
		grpcjson.Unary(ProductServiceName, "ListCategories", ProductServiceServer.ListCategories),
		grpcjson.Unary(ProductServiceName, "ListAttributes", ProductServiceServer.ListAttributes),
	},
	Metadata: "stock/v1/product.proto",
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

type ProductServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) *ProductServiceClient {
	return &ProductServiceClient{cc: cc}
}

func (c *ProductServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsRequest, ListProductsResponse](ctx, c.cc, ProductServiceName, "ListProducts", in, opts...)
}

func (c *ProductServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[GetProductRequest, ProductResponse](ctx, c.cc, ProductServiceName, "GetProduct", in, opts...)
}

func (c *ProductServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[CreateProductRequest, ProductResponse](ctx, c.cc, ProductServiceName, "CreateProduct", in, opts...)
}

func (c *ProductServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error) {
	return invoke[DeleteProductRequest, DeleteProductResponse](ctx, c.cc, ProductServiceName, "DeleteProduct", in, opts...)
}

func (c *ProductServiceClient) ListCategories(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[emptypb.Empty, ListCategoriesResponse](ctx, c.cc, ProductServiceName, "ListCategories", in, opts...)
}

func (c *ProductServiceClient) ListAttributes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListAttributesResponse, error) {
	return invoke[emptypb.Empty, ListAttributesResponse](ctx, c.cc, ProductServiceName, "ListAttributes", in, opts...)
}
