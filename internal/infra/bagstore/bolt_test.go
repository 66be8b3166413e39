//go:build unit

package bagstore_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/infra/bagstore"
	"glisten-lounge/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, clk clock.Clock) *bagstore.BoltStore {
	t.Helper()

	store, err := bagstore.Open(filepath.Join(t.TempDir(), "bag.db"), clk, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleItems() bag.Items {
	return bag.Items{
		{ID: "item-1", Name: "Classic Manicure", Price: "$24.00", Category: "Nails", Duration: "45 min"},
		{ID: "item-2", Name: "Aroma Massage", Price: "$35.00", Category: "Body", Duration: "60 min"},
	}
}

func TestPutAndItems(t *testing.T) {
	store := openStore(t, clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))

	require.NoError(t, store.Put("session-1", sampleItems()))

	got, err := store.Items("session-1")
	require.NoError(t, err)
	if diff := cmp.Diff(sampleItems(), got); diff != "" {
		t.Errorf("bag mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsUnknownSession(t *testing.T) {
	store := openStore(t, clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))

	got, err := store.Items("never-seen")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPutOverwrites(t *testing.T) {
	store := openStore(t, clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))

	require.NoError(t, store.Put("session-1", sampleItems()))
	require.NoError(t, store.Put("session-1", sampleItems()[:1]))

	got, err := store.Items("session-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "item-1", got[0].ID)
}

func TestClear(t *testing.T) {
	store := openStore(t, clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))

	require.NoError(t, store.Put("session-1", sampleItems()))
	require.NoError(t, store.Clear("session-1"))

	got, err := store.Items("session-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClearUnknownSession(t *testing.T) {
	store := openStore(t, clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))

	assert.NoError(t, store.Clear("never-seen"))
}

func TestSweepStale(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	store := openStore(t, clk)

	require.NoError(t, store.Put("old-session", sampleItems()))

	clk.Add(48 * time.Hour)
	require.NoError(t, store.Put("fresh-session", sampleItems()[:1]))

	swept, err := store.SweepStale(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	got, err := store.Items("old-session")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = store.Items("fresh-session")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSweepStaleNothingToSweep(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	store := openStore(t, clk)

	require.NoError(t, store.Put("session-1", sampleItems()))

	swept, err := store.SweepStale(24 * time.Hour)
	require.NoError(t, err)
	assert.Zero(t, swept)

	got, err := store.Items("session-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
