package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/koolabhinay07/Lollyzz/internal/availability"
	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/queue"
	filestore "github.com/koolabhinay07/Lollyzz/internal/store/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBroker struct {
	published [][]byte
	failNext  bool
}

func (b *fakeBroker) Publish(_ context.Context, _ string, message []byte) error {
	if b.failNext {
		return errors.New("broker down")
	}
	b.published = append(b.published, message)
	return nil
}

func (b *fakeBroker) Subscribe(context.Context, string, queue.MessageHandler) error {
	return nil
}

func (b *fakeBroker) Close() error { return nil }

func newTestAvailabilityService(t *testing.T, broker queue.Broker) (*AvailabilityService, *availability.Store) {
	t.Helper()

	dir := t.TempDir()
	storage, err := filestore.New(filestore.Config{Dir: dir})
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	store := availability.NewStore(context.Background(), storage, logger)
	auditRepo := filestore.NewAvailabilityAuditRepository(dir)

	return NewAvailabilityService(catalog.Default(), store, auditRepo, broker, logger), store
}

func TestSetAvailable_UnknownItem(t *testing.T) {
	svc, _ := newTestAvailabilityService(t, nil)

	err := svc.SetAvailable(context.Background(), "no-such-item", false, "", "9110162059")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetAvailable_PublishesEvent(t *testing.T) {
	broker := &fakeBroker{}
	svc, store := newTestAvailabilityService(t, broker)

	err := svc.SetAvailable(context.Background(), "main-paneer-punjabi", false, "out of paneer", "9110162059")

	require.NoError(t, err)
	assert.False(t, store.IsAvailable("main-paneer-punjabi"))
	require.Len(t, broker.published, 1)

	var event domain.AvailabilityEvent
	require.NoError(t, json.Unmarshal(broker.published[0], &event))
	assert.Equal(t, domain.EventItemAvailabilityChanged, event.EventType)
	assert.Equal(t, "main-paneer-punjabi", event.ItemID)
	assert.False(t, event.Available)
	assert.Equal(t, "out of paneer", event.Reason)
	assert.Equal(t, "9110162059", event.Mobile)
}

func TestSetAvailable_BrokerFailureDoesNotFailToggle(t *testing.T) {
	broker := &fakeBroker{failNext: true}
	svc, store := newTestAvailabilityService(t, broker)

	err := svc.SetAvailable(context.Background(), "main-paneer-punjabi", false, "", "9110162059")

	require.NoError(t, err)
	assert.False(t, store.IsAvailable("main-paneer-punjabi"))
}

func TestSetAvailable_NilBroker(t *testing.T) {
	svc, store := newTestAvailabilityService(t, nil)

	err := svc.SetAvailable(context.Background(), "main-paneer-punjabi", false, "", "9110162059")

	require.NoError(t, err)
	assert.False(t, store.IsAvailable("main-paneer-punjabi"))
}

func TestResetAll_PublishesResetEvent(t *testing.T) {
	broker := &fakeBroker{}
	svc, store := newTestAvailabilityService(t, broker)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailable(ctx, "main-paneer-punjabi", false, "", "9110162059"))
	svc.ResetAll(ctx, "9110162059")

	assert.True(t, store.IsAvailable("main-paneer-punjabi"))
	require.Len(t, broker.published, 2)

	var event domain.AvailabilityEvent
	require.NoError(t, json.Unmarshal(broker.published[1], &event))
	assert.Equal(t, domain.EventAvailabilityReset, event.EventType)
}

func TestProcessAvailabilityEvent_WritesAudit(t *testing.T) {
	svc, _ := newTestAvailabilityService(t, nil)
	ctx := context.Background()

	event := domain.AvailabilityEvent{
		EventType: domain.EventItemAvailabilityChanged,
		ItemID:    "main-paneer-punjabi",
		Available: false,
		Reason:    "out of paneer",
		Mobile:    "9110162059",
	}

	require.NoError(t, svc.ProcessAvailabilityEvent(ctx, event))

	audits, err := svc.GetAudit(ctx, "main-paneer-punjabi", 10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "out of paneer", audits[0].Reason)
}
