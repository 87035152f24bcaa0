package scenarioapp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

func TestWatcher_ReportsSettledChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.yaml")
	other := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(target, []byte("models: {electrolyzer: {}}\n"), 0o644))

	w, err := NewWatcher([]string{target}, 50*time.Millisecond, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("models: {dryer: {}}\n"), 0o644))
	}

	select {
	case batch := <-w.Changes():
		assert.Equal(t, []string{target}, batch)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// Rapid writes were coalesced into the one batch.
	select {
	case batch := <-w.Changes():
		t.Fatalf("unexpected second batch %v", batch)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher([]string{"x.yaml"}, 0, nil)
	require.NoError(t, err)
	w.Stop()
}

func TestWatcher_StartFailsOnMissingDir(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "nope", "x.yaml")}, 0, nil)
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	w.Stop()
}
