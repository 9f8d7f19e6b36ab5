package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/koolabhinay07/Lollyzz/internal/availability"
	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/queue"
	"github.com/koolabhinay07/Lollyzz/internal/repo"
	"go.uber.org/zap"
)

type AvailabilityService struct {
	catalog   *catalog.Catalog
	store     *availability.Store
	auditRepo repo.AvailabilityAuditRepository
	broker    queue.Broker
	logger    *zap.SugaredLogger
}

// NewAvailabilityService wires the overlay mutations to the audit event
// stream. broker may be nil, in which case events are skipped entirely.
func NewAvailabilityService(
	catalog *catalog.Catalog,
	store *availability.Store,
	auditRepo repo.AvailabilityAuditRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *AvailabilityService {
	return &AvailabilityService{
		catalog:   catalog,
		store:     store,
		auditRepo: auditRepo,
		broker:    broker,
		logger:    logger,
	}
}

// SetAvailable toggles one item. The overlay mutation always wins: event
// publishing is best-effort and a broker failure never fails the toggle.
func (s *AvailabilityService) SetAvailable(ctx context.Context, itemID string, available bool, reason, mobile string) error {
	if !s.catalog.HasItem(itemID) {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	s.store.SetAvailable(ctx, itemID, available)

	s.logger.Infow("item availability changed", "item_id", itemID, "available", available, "mobile", mobile)

	s.publish(ctx, domain.AvailabilityEvent{
		EventType: domain.EventItemAvailabilityChanged,
		ItemID:    itemID,
		Available: available,
		Reason:    reason,
		Mobile:    mobile,
		Timestamp: time.Now(),
	})

	return nil
}

// ResetAll clears the whole overlay.
func (s *AvailabilityService) ResetAll(ctx context.Context, mobile string) {
	s.store.ResetAll(ctx)

	s.logger.Infow("availability overlay reset", "mobile", mobile)

	s.publish(ctx, domain.AvailabilityEvent{
		EventType: domain.EventAvailabilityReset,
		Available: true,
		Mobile:    mobile,
		Timestamp: time.Now(),
	})
}

// ProcessAvailabilityEvent is the worker side: append an audit record for a
// consumed event.
func (s *AvailabilityService) ProcessAvailabilityEvent(ctx context.Context, event domain.AvailabilityEvent) error {
	if s.auditRepo == nil {
		return nil
	}

	audit := &domain.AvailabilityAudit{
		ItemID:    event.ItemID,
		EventType: event.EventType,
		Available: event.Available,
		Reason:    event.Reason,
		Mobile:    event.Mobile,
		Timestamp: event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to create availability audit", "item_id", event.ItemID, "error", err)
		return fmt.Errorf("failed to create availability audit: %w", err)
	}

	s.logger.Infow("availability audit created", "item_id", event.ItemID, "event_type", event.EventType)

	return nil
}

// GetAudit returns the newest audit records for one item.
func (s *AvailabilityService) GetAudit(ctx context.Context, itemID string, limit int) ([]domain.AvailabilityAudit, error) {
	if s.auditRepo == nil {
		return nil, nil
	}

	audits, err := s.auditRepo.GetByItemID(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability audit: %w", err)
	}

	return audits, nil
}

func (s *AvailabilityService) publish(ctx context.Context, event domain.AvailabilityEvent) {
	if s.broker == nil {
		return
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal availability event", "item_id", event.ItemID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueAvailabilityEvents, eventBytes); err != nil {
		// fire-and-forget: the overlay mutation already happened
		s.logger.Warnw("failed to publish availability event", "item_id", event.ItemID, "error", err)
	}
}
