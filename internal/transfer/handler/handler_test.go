package handler

import (
	"context"
	"net"
	"testing"

	invRepo "github.com/fekuna/omnipos-stock-service/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-stock-service/internal/inventory/usecase"
	locRepo "github.com/fekuna/omnipos-stock-service/internal/location/repository"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/notice"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	prodRepo "github.com/fekuna/omnipos-stock-service/internal/product/repository"
	"github.com/fekuna/omnipos-stock-service/internal/session"
	"github.com/fekuna/omnipos-stock-service/internal/transfer"
	draftRepo "github.com/fekuna/omnipos-stock-service/internal/transfer/repository"
	transferUC "github.com/fekuna/omnipos-stock-service/internal/transfer/usecase"
	"github.com/fekuna/omnipos-stock-service/internal/transport/grpcjson"
	"github.com/fekuna/omnipos-stock-service/internal/transport/reply"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func newClient(t *testing.T) *stockv1.TransferServiceClient {
	t.Helper()
	log := logger.NewNop()

	locations := locRepo.NewMemoryRepository([]model.Location{
		{ID: "W", Name: "Main Warehouse", Type: model.LocationWarehouse},
		{ID: "S1", Name: "Store Alpha", Type: model.LocationStore},
	})
	inv := invUC.NewInventoryUseCase(invRepo.NewMemoryRepository([]model.InventoryRecord{
		{ProductID: "1", LocationID: "W", Quantity: 100},
	}, nil), locations, invUC.Options{}, log)
	products := prodRepo.NewMemoryRepository([]model.Product{
		{BaseModel: model.BaseModel{ID: "1"}, Name: "Premium T-Shirt", SKU: "TS-PRE-M", Category: "Apparel"},
	})
	uc := transferUC.NewTransferUseCase(draftRepo.NewMemoryRepository(), products, inv, locations, transferUC.Options{}, log)

	tr, err := notice.New()
	if err != nil {
		t.Fatalf("notice.New failed: %v", err)
	}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(grpcjson.Codec{}),
		grpc.ChainUnaryInterceptor(session.UnaryServerInterceptor()),
	)
	stockv1.RegisterTransferServiceServer(srv, NewTransferHandler(uc, reply.NewResponder(tr, log), log))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return stockv1.NewTransferServiceClient(conn)
}

func withSession(id string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		session.HeaderSessionID, id,
		session.HeaderUser, "alice",
	)
}

func TestTransferFlow(t *testing.T) {
	client := newClient(t)
	ctx := withSession("s-1")

	if _, err := client.SetLocations(ctx, &stockv1.SetLocationsRequest{FromLocation: "W", ToLocation: "S1"}); err != nil {
		t.Fatalf("SetLocations failed: %v", err)
	}
	if _, err := client.AddItem(ctx, &stockv1.AddItemRequest{ProductId: "1"}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	resp, err := client.UpdateQuantity(ctx, &stockv1.UpdateQuantityRequest{Index: 0, Quantity: "abc"})
	if err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if resp.Draft.Items[0].Quantity != 1 {
		t.Errorf("Non-numeric quantity should fall back to 1, got %d", resp.Draft.Items[0].Quantity)
	}

	resp, err = client.UpdateQuantity(ctx, &stockv1.UpdateQuantityRequest{Index: 0, Quantity: "25"})
	if err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if resp.Draft.State != string(transfer.StateItemsStaged) || resp.Draft.TotalItems != 25 {
		t.Errorf("Unexpected draft %+v", resp.Draft)
	}

	submitted, err := client.SubmitTransfer(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("SubmitTransfer failed: %v", err)
	}
	if submitted.TotalItems != 25 || submitted.Notice.Text != "Transfer of 25 items has been created" {
		t.Errorf("Unexpected submit response %+v", submitted)
	}

	after, err := client.GetDraft(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if after.Draft.State != string(transfer.StateEmpty) {
		t.Errorf("Expected empty draft, got %s", after.Draft.State)
	}
}

func TestSubmit_EmptyDraft(t *testing.T) {
	client := newClient(t)

	_, err := client.SubmitTransfer(withSession("s-2"), &emptypb.Empty{})
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument || st.Message() != "Please select a source location" {
		t.Errorf("Unexpected status %v %q", st.Code(), st.Message())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	client := newClient(t)

	if _, err := client.AddItem(withSession("a"), &stockv1.AddItemRequest{ProductId: "1"}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	resp, err := client.GetDraft(withSession("b"), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if len(resp.Draft.Items) != 0 {
		t.Errorf("Session b should not see session a's items, got %d", len(resp.Draft.Items))
	}
}

func TestMissingSession(t *testing.T) {
	client := newClient(t)
	_, err := client.GetDraft(context.Background(), &emptypb.Empty{})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("Expected InvalidArgument, got %v", err)
	}
}
