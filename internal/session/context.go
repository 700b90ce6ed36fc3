package session

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	HeaderSessionID = "x-session-id"
	HeaderUser      = "x-user-name"
	HeaderLanguage  = "accept-language"
)

// Info identifies the dashboard session a call belongs to.
type Info struct {
	SessionID string
	User      string
	Language  string
}

type ctxKey struct{}

func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// FromContext returns the session populated by the interceptor, falling back to
// the raw incoming metadata.
func FromContext(ctx context.Context) Info {
	if info, ok := ctx.Value(ctxKey{}).(Info); ok {
		return info
	}
	return fromMetadata(ctx)
}

func fromMetadata(ctx context.Context) Info {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return Info{}
	}
	return Info{
		SessionID: first(md, HeaderSessionID),
		User:      first(md, HeaderUser),
		Language:  first(md, HeaderLanguage),
	}
}

func first(md metadata.MD, key string) string {
	if val := md.Get(key); len(val) > 0 {
		return val[0]
	}
	return ""
}

func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(WithInfo(ctx, fromMetadata(ctx)), req)
	}
}
