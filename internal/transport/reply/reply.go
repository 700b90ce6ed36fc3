// Package reply turns use case outcomes into gRPC responses: localized status
// errors for failures and notices for successes.
package reply

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/notice"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/metrics"
	"github.com/fekuna/omnipos-stock-service/internal/session"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Responder struct {
	notices *notice.Translator
	logger  logger.ZapLogger
}

func NewResponder(notices *notice.Translator, log logger.ZapLogger) *Responder {
	return &Responder{notices: notices, logger: log}
}

// Error logs err, counts remote failures and returns a status whose message is
// the localized notice text.
func (r *Responder) Error(ctx context.Context, err error, fallbackID, msg string) error {
	var re *apperror.RemoteError
	if errors.As(err, &re) {
		metrics.RemoteErrors.WithLabelValues(re.Op, string(re.Kind)).Inc()
		r.logger.Error(msg, zap.Error(err))
	} else if apperror.IsValidation(err) {
		r.logger.Debug(msg, zap.Error(err))
	} else {
		r.logger.Error(msg, zap.Error(err))
	}

	n := r.notices.Failure(session.FromContext(ctx).Language, err, fallbackID)
	return status.Error(apperror.GRPCCode(err), n.Text)
}

func (r *Responder) Success(ctx context.Context, id string, data map[string]any) *stockv1.Notice {
	return toProto(r.notices.Success(session.FromContext(ctx).Language, id, data))
}

// RequireSession returns the session id or an InvalidArgument status.
func (r *Responder) RequireSession(ctx context.Context) (string, error) {
	sid := session.FromContext(ctx).SessionID
	if sid == "" {
		return "", status.Error(codes.InvalidArgument, "missing "+session.HeaderSessionID+" metadata")
	}
	return sid, nil
}

func toProto(n notice.Notice) *stockv1.Notice {
	return &stockv1.Notice{Level: string(n.Level), MessageID: n.MessageID, Text: n.Text}
}
