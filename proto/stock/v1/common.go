// Package stockv1 declares the stock dashboard gRPC API. Messages travel as JSON
// through the grpcjson codec; google.protobuf.Empty is used for empty requests.
package stockv1

import (
	"context"

	"github.com/fekuna/omnipos-stock-service/internal/transport/grpcjson"
	"google.golang.org/grpc"
)

type Notice struct {
	Level     string `json:"level"`
	MessageID string `json:"message_id"`
	Text      string `json:"text"`
}

func invoke[Req any, Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	return grpcjson.Invoke[Req, Resp](ctx, cc, service, method, in, opts...)
}
