package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/store"
	"go.uber.org/zap"
)

// ownerAllowList is the fixed, build-time set of mobile numbers that may
// enter owner mode. It is deliberately not configurable at runtime. This is a
// low-assurance gate against casual tampering, not real access control.
var ownerAllowList = map[string]struct{}{
	"9110162059": {},
	"7013910976": {},
}

// IsAllowed reports whether a normalized mobile number is on the owner
// allow-list.
func IsAllowed(mobile string) bool {
	_, ok := ownerAllowList[mobile]
	return ok
}

type persistedSession struct {
	Mobile string `json:"mobile"`
}

// Manager holds the process-wide owner session: the authenticated owner's
// normalized mobile number, or empty when logged out.
type Manager struct {
	mu      sync.RWMutex
	mobile  string
	storage store.Storage
	logger  *zap.SugaredLogger
}

// NewManager restores a persisted session. A stored number that fails the
// current allow-list is discarded, which handles allow-list changes across
// deployments. Storage failures leave the manager logged out.
func NewManager(ctx context.Context, storage store.Storage, logger *zap.SugaredLogger) *Manager {
	m := &Manager{
		storage: storage,
		logger:  logger,
	}

	data, err := storage.Get(ctx, store.KeyOwnerSession)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warnw("failed to load owner session, staying logged out", "error", err)
		}
		return m
	}

	var stored persistedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warnw("owner session is corrupt, staying logged out", "error", err)
		return m
	}

	if !IsAllowed(stored.Mobile) {
		logger.Infow("persisted owner session is no longer allow-listed, discarding")
		if err := storage.Delete(ctx, store.KeyOwnerSession); err != nil {
			logger.Warnw("failed to discard stale owner session", "error", err)
		}
		return m
	}

	m.mobile = stored.Mobile
	logger.Infow("owner session restored", "mobile", stored.Mobile)

	return m
}

// Login normalizes the raw input, checks the allow-list, establishes the
// session and persists it. Returns the normalized number on success.
func (m *Manager) Login(ctx context.Context, raw string) (string, error) {
	mobile, err := NormalizeIndianMobile(raw)
	if err != nil {
		return "", err
	}

	if !IsAllowed(mobile) {
		return "", domain.ErrNotAuthorized
	}

	m.mu.Lock()
	m.mobile = mobile
	m.mu.Unlock()

	data, err := json.Marshal(persistedSession{Mobile: mobile})
	if err != nil {
		m.logger.Errorw("failed to marshal owner session", "error", err)
		return mobile, nil
	}
	if err := m.storage.Put(ctx, store.KeyOwnerSession, data); err != nil {
		// the in-memory session still holds for this run
		m.logger.Warnw("failed to persist owner session", "error", err)
	}

	return mobile, nil
}

// Logout clears session state and persisted session data unconditionally.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.mobile = ""
	m.mu.Unlock()

	if err := m.storage.Delete(ctx, store.KeyOwnerSession); err != nil {
		m.logger.Warnw("failed to clear persisted owner session", "error", err)
	}
}

// Active reports whether an owner session is established.
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.mobile != ""
}

// Mobile returns the authenticated owner's number, or "" when logged out.
func (m *Manager) Mobile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.mobile
}
