package availability

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/store"
	"go.uber.org/zap"
)

// Store is the sparse availability overlay: item ids mapped to the negative
// sentinel, absence meaning available. In-memory state is authoritative;
// persistence is best-effort and a failed write never rolls back a mutation.
type Store struct {
	mu      sync.RWMutex
	overlay map[string]bool
	storage store.Storage
	logger  *zap.SugaredLogger
}

// NewStore loads the persisted overlay. A missing, unparsable or wrong-shaped
// document starts an empty overlay; startup never fails on storage.
func NewStore(ctx context.Context, storage store.Storage, logger *zap.SugaredLogger) *Store {
	s := &Store{
		overlay: make(map[string]bool),
		storage: storage,
		logger:  logger,
	}

	data, err := storage.Get(ctx, store.KeyAvailability)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warnw("failed to load availability overlay, starting empty", "error", err)
		}
		return s
	}

	var stored map[string]bool
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warnw("availability overlay is corrupt, starting empty", "error", err)
		return s
	}

	// only the negative sentinel is meaningful; anything else is noise
	for id, v := range stored {
		if !v {
			s.overlay[id] = false
		}
	}

	return s
}

// IsAvailable is true unless the overlay explicitly marks the item
// unavailable.
func (s *Store) IsAvailable(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, unavailable := s.overlay[itemID]
	return !unavailable
}

// SetAvailable marks an item available (removes the overlay entry) or
// unavailable (inserts the sentinel). Idempotent. The overlay is persisted
// after every mutation; persistence failures are logged and swallowed.
func (s *Store) SetAvailable(ctx context.Context, itemID string, available bool) {
	s.mu.Lock()
	if available {
		delete(s.overlay, itemID)
	} else {
		s.overlay[itemID] = false
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// ResetAll clears the overlay so every item is available again. The owner
// gate lives at the HTTP boundary, not here.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	s.overlay = make(map[string]bool)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Overlay returns a copy of the current overlay for the owner view.
func (s *Store) Overlay() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Store) UnavailableCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.overlay)
}

func (s *Store) snapshotLocked() map[string]bool {
	snapshot := make(map[string]bool, len(s.overlay))
	for id, v := range s.overlay {
		snapshot[id] = v
	}
	return snapshot
}

func (s *Store) persist(ctx context.Context, snapshot map[string]bool) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Errorw("failed to marshal availability overlay", "error", err)
		return
	}

	if err := s.storage.Put(ctx, store.KeyAvailability, data); err != nil {
		// in-memory state stays authoritative for this run
		s.logger.Warnw("failed to persist availability overlay", "error", err)
	}
}
