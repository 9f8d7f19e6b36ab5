package store

import "context"

// Storage is the persistence boundary for the small pieces of state the menu
// keeps between runs. Every call returns an explicit error; callers decide the
// fallback (the availability store falls back to empty state, the session
// store to logged-out).
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Persisted keys. The stored shapes are part of the external interface:
// KeyAvailability holds {"<item_id>": false, ...}, KeyOwnerSession holds
// {"mobile": "<10 digits>"}.
const (
	KeyAvailability = "availability"
	KeyOwnerSession = "owner_session"
)
