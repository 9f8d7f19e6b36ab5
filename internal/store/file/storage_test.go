package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(Config{Dir: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestStorage_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.Put(ctx, "availability", []byte(`{"momo-veg":false}`)))

	data, err := s.Get(ctx, "availability")
	require.NoError(t, err)
	assert.JSONEq(t, `{"momo-veg":false}`, string(data))
}

func TestStorage_GetMissingKey(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.Put(ctx, "owner_session", []byte(`{"mobile":"9110162059"}`)))
	require.NoError(t, s.Delete(ctx, "owner_session"))

	_, err := s.Get(ctx, "owner_session")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, "owner_session"))
}

func TestStorage_OverwriteIsAtomicRename(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := New(Config{Dir: dir})
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "availability", []byte(`{"a":false}`)))
	require.NoError(t, s.Put(ctx, "availability", []byte(`{"b":false}`)))

	data, err := s.Get(ctx, "availability")
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":false}`, string(data))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()))
	}
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
