package stockv1

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/transport/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const InventoryServiceName = "omnipos.stock.v1.InventoryService"

type GetProductStockRequest struct {
	ProductId string `json:"product_id"`
}

type ProductStockResponse struct {
	ProductId  string `json:"product_id"`
	InStock    int64  `json:"in_stock"`
	StockLevel string `json:"stock_level"`
}

type LocationSummary struct {
	LocationId   string `json:"location_id"`
	Name         string `json:"name"`
	ProductCount int32  `json:"product_count"`
	TotalItems   int64  `json:"total_items"`
	Capacity     *int64 `json:"capacity,omitempty"`
	OverCapacity bool   `json:"over_capacity"`
}

type ListLocationSummariesResponse struct {
	Summaries []*LocationSummary `json:"summaries"`
}

type LowStockItem struct {
	ProductId  string `json:"product_id"`
	InStock    int64  `json:"in_stock"`
	StockLevel string `json:"stock_level"`
}

type ListLowStockResponse struct {
	Items []*LowStockItem `json:"items"`
}

// MovementFilters dates are RFC 3339 or YYYY-MM-DD.
type MovementFilters struct {
	Type      string `json:"type"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Page      int32  `json:"page"`
	PageSize  int32  `json:"page_size"`
}

type Movement struct {
	Id     string `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	From   string `json:"from"`
	To     string `json:"to"`
	Items  int32  `json:"items"`
	User   string `json:"user"`
	Status string `json:"status"`
}

type ListMovementsResponse struct {
	Movements []*Movement `json:"movements"`
	Total     int32       `json:"total"`
	Page      int32       `json:"page"`
	PageSize  int32       `json:"page_size"`
}

type ExportMovementsResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

type InventoryServiceServer interface {
	GetProductStock(context.Context, *GetProductStockRequest) (*ProductStockResponse, error)
	ListLocationSummaries(context.Context, *emptypb.Empty) (*ListLocationSummariesResponse, error)
	ListLowStock(context.Context, *emptypb.Empty) (*ListLowStockResponse, error)
	ListMovements(context.Context, *MovementFilters) (*ListMovementsResponse, error)
	ExportMovements(context.Context, *MovementFilters) (*ExportMovementsResponse, error)
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(InventoryServiceName, "GetProductStock", InventoryServiceServer.GetProductStock),
		grpcjson.Unary(InventoryServiceName, "ListLocationSummaries", InventoryServiceServer.ListLocationSummaries),
		grpcjson.Unary(InventoryServiceName, "ListLowStock", InventoryServiceServer.ListLowStock),
		grpcjson.Unary(InventoryServiceName, "ListMovements", InventoryServiceServer.ListMovements),
		grpcjson.Unary(InventoryServiceName, "ExportMovements", InventoryServiceServer.ExportMovements),
	},
	Metadata: "stock/v1/inventory.proto",
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

type InventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) *InventoryServiceClient {
	return &InventoryServiceClient{cc: cc}
}

func (c *InventoryServiceClient) GetProductStock(ctx context.Context, in *GetProductStockRequest, opts ...grpc.CallOption) (*ProductStockResponse, error) {
	return invoke[GetProductStockRequest, ProductStockResponse](ctx, c.cc, InventoryServiceName, "GetProductStock", in, opts...)
}

func (c *InventoryServiceClient) ListLocationSummaries(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListLocationSummariesResponse, error) {
	return invoke[emptypb.Empty, ListLocationSummariesResponse](ctx, c.cc, InventoryServiceName, "ListLocationSummaries", in, opts...)
}

func (c *InventoryServiceClient) ListLowStock(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListLowStockResponse, error) {
	return invoke[emptypb.Empty, ListLowStockResponse](ctx, c.cc, InventoryServiceName, "ListLowStock", in, opts...)
}

func (c *InventoryServiceClient) ListMovements(ctx context.Context, in *MovementFilters, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	return invoke[MovementFilters, ListMovementsResponse](ctx, c.cc, InventoryServiceName, "ListMovements", in, opts...)
}

func (c *InventoryServiceClient) ExportMovements(ctx context.Context, in *MovementFilters, opts ...grpc.CallOption) (*ExportMovementsResponse, error) {
	return invoke[MovementFilters, ExportMovementsResponse](ctx, c.cc, InventoryServiceName, "ExportMovements", in, opts...)
}
