package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/transfer"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// TransferListener records a pending transfer movement for every submitted
// transfer, so the history page shows it until it is completed or rejected.
type TransferListener struct {
	reader    MessageReader
	uc        inventory.UseCase
	locations location.Repository
	logger    logger.ZapLogger
}

func NewTransferListener(reader MessageReader, uc inventory.UseCase, locations location.Repository, logger logger.ZapLogger) *TransferListener {
	return &TransferListener{
		reader:    reader,
		uc:        uc,
		locations: locations,
		logger:    logger,
	}
}

func (l *TransferListener) Start(ctx context.Context) {
	l.logger.Info("Starting transfer Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping transfer Kafka listener")
			return
		default:
			msg, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *TransferListener) processMessage(ctx context.Context, value []byte) {
	var event transfer.SubmittedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}
	if event.EventType != transfer.EventTransferSubmitted {
		return
	}

	p := event.Payload
	l.logger.Info("Processing TransferSubmitted event", zap.String("transfer_id", p.TransferID))

	user := p.RequestedBy
	if user == "" {
		user = "system"
	}
	m := &model.Movement{
		ID:     p.TransferID,
		Date:   event.Timestamp,
		Type:   model.MovementTransfer,
		From:   l.locationName(ctx, p.FromLocation),
		To:     l.locationName(ctx, p.ToLocation),
		Items:  int(p.TotalItems()),
		User:   user,
		Status: model.MovementPending,
	}
	if err := l.uc.RecordMovement(ctx, m); err != nil {
		l.logger.Error("Failed to record transfer movement",
			zap.String("transfer_id", p.TransferID),
			zap.Error(err),
		)
	}
}

// locationName falls back to the raw id when the location cannot be resolved.
func (l *TransferListener) locationName(ctx context.Context, id string) string {
	loc, err := l.locations.FindByID(ctx, id)
	if err != nil {
		l.logger.Warn("location lookup failed", zap.String("location_id", id), zap.Error(err))
		return id
	}
	if loc == nil {
		return id
	}
	return loc.Name
}
