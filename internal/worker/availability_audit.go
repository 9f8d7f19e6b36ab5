package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/queue"
	"github.com/koolabhinay07/Lollyzz/internal/service"
	"go.uber.org/zap"
)

type AvailabilityAuditWorker struct {
	availabilityService *service.AvailabilityService
	broker              queue.Broker
	logger              *zap.SugaredLogger
	ctx                 context.Context
	cancel              context.CancelFunc
}

func NewAvailabilityAuditWorker(
	availabilityService *service.AvailabilityService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *AvailabilityAuditWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &AvailabilityAuditWorker{
		availabilityService: availabilityService,
		broker:              broker,
		logger:              logger,
		ctx:                 ctx,
		cancel:              cancel,
	}
}

func (w *AvailabilityAuditWorker) Start() error {
	w.logger.Info("starting availability audit worker")

	return w.broker.Subscribe(w.ctx, queue.QueueAvailabilityEvents, w.handleMessage)
}

func (w *AvailabilityAuditWorker) Stop() {
	w.logger.Info("stopping availability audit worker")
	w.cancel()
}

func (w *AvailabilityAuditWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.AvailabilityEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing availability event", "item_id", event.ItemID, "event_type", event.EventType)

	if err := w.availabilityService.ProcessAvailabilityEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process availability event", "item_id", event.ItemID, "error", err)
		return err
	}

	return nil
}
