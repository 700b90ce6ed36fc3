package stockv1

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/transport/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// TransferService calls are scoped to the x-session-id metadata value.
const TransferServiceName = "omnipos.stock.v1.TransferService"

type TransferItem struct {
	ProductId string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Available int64  `json:"available"`
}

type Draft struct {
	Id           string          `json:"id"`
	FromLocation string          `json:"from_location"`
	ToLocation   string          `json:"to_location"`
	State        string          `json:"state"`
	Items        []*TransferItem `json:"items"`
	TotalItems   int64           `json:"total_items"`
}

type DraftResponse struct {
	Draft *Draft `json:"draft"`
}

type SetLocationsRequest struct {
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
}

type AddItemRequest struct {
	ProductId string `json:"product_id"`
}

// UpdateQuantityRequest carries the raw input value; anything that is not a
// positive integer is stored as 1.
type UpdateQuantityRequest struct {
	Index    int32  `json:"index"`
	Quantity string `json:"quantity"`
}

type RemoveItemRequest struct {
	Index int32 `json:"index"`
}

type ListCandidatesRequest struct {
	SearchTerm string `json:"search_term"`
}

type Candidate struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	Sku       string `json:"sku"`
	Available int64  `json:"available"`
}

type ListCandidatesResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

type SubmitTransferResponse struct {
	TransferId string  `json:"transfer_id"`
	TotalItems int64   `json:"total_items"`
	Notice     *Notice `json:"notice"`
}

type TransferServiceServer interface {
	GetDraft(context.Context, *emptypb.Empty) (*DraftResponse, error)
	SetLocations(context.Context, *SetLocationsRequest) (*DraftResponse, error)
	AddItem(context.Context, *AddItemRequest) (*DraftResponse, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*DraftResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*DraftResponse, error)
	ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error)
	SubmitTransfer(context.Context, *emptypb.Empty) (*SubmitTransferResponse, error)
	DiscardDraft(context.Context, *emptypb.Empty) (*DraftResponse, error)
}

var TransferService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: TransferServiceName,
	HandlerType: (*TransferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(TransferServiceName, "GetDraft", TransferServiceServer.GetDraft),
		grpcjson.Unary(TransferServiceName, "SetLocations", TransferServiceServer.SetLocations),
		grpcjson.Unary(TransferServiceName, "AddItem", TransferServiceServer.AddItem),
		grpcjson.Unary(TransferServiceName, "UpdateQuantity", TransferServiceServer.UpdateQuantity),
		grpcjson.Unary(TransferServiceName, "RemoveItem", TransferServiceServer.RemoveItem),
		grpcjson.Unary(TransferServiceName, "ListCandidates", TransferServiceServer.ListCandidates),
		grpcjson.Unary(TransferServiceName, "SubmitTransfer", TransferServiceServer.SubmitTransfer),
		grpcjson.Unary(TransferServiceName, "DiscardDraft", TransferServiceServer.DiscardDraft),
	},
	Metadata: "stock/v1/transfer.proto",
}

func RegisterTransferServiceServer(s grpc.ServiceRegistrar, srv TransferServiceServer) {
	s.RegisterService(&TransferService_ServiceDesc, srv)
}

type TransferServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTransferServiceClient(cc grpc.ClientConnInterface) *TransferServiceClient {
	return &TransferServiceClient{cc: cc}
}

func (c *TransferServiceClient) GetDraft(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[emptypb.Empty, DraftResponse](ctx, c.cc, TransferServiceName, "GetDraft", in, opts...)
}

func (c *TransferServiceClient) SetLocations(ctx context.Context, in *SetLocationsRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[SetLocationsRequest, DraftResponse](ctx, c.cc, TransferServiceName, "SetLocations", in, opts...)
}

func (c *TransferServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[AddItemRequest, DraftResponse](ctx, c.cc, TransferServiceName, "AddItem", in, opts...)
}

func (c *TransferServiceClient) UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[UpdateQuantityRequest, DraftResponse](ctx, c.cc, TransferServiceName, "UpdateQuantity", in, opts...)
}

func (c *TransferServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[RemoveItemRequest, DraftResponse](ctx, c.cc, TransferServiceName, "RemoveItem", in, opts...)
}

func (c *TransferServiceClient) ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error) {
	return invoke[ListCandidatesRequest, ListCandidatesResponse](ctx, c.cc, TransferServiceName, "ListCandidates", in, opts...)
}

func (c *TransferServiceClient) SubmitTransfer(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*SubmitTransferResponse, error) {
	return invoke[emptypb.Empty, SubmitTransferResponse](ctx, c.cc, TransferServiceName, "SubmitTransfer", in, opts...)
}

func (c *TransferServiceClient) DiscardDraft(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DraftResponse, error) {
	return invoke[emptypb.Empty, DraftResponse](ctx, c.cc, TransferServiceName, "DiscardDraft", in, opts...)
}
