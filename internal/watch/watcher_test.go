package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]byte
	seen  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{seen: make(chan struct{}, 16)}
}

func (r *recorder) handle(_ context.Context, data []byte) error {
	r.mu.Lock()
	r.calls = append(r.calls, data)
	r.mu.Unlock()
	r.seen <- struct{}{}
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.calls[len(r.calls)-1])
}

func startWatcher(t *testing.T, path string, rec *recorder) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(path, rec.handle, Options{Delay: 100 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(cancel)
	return cancel, done
}

func TestWatcher_ReimportsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	rec := newRecorder()
	cancel, done := startWatcher(t, path, rec)

	require.NoError(t, os.WriteFile(path, []byte(`[{"day":"2024-03-04"}]`), 0o644))

	select {
	case <-rec.seen:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
	assert.Equal(t, `[{"day":"2024-03-04"}]`, rec.last())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_CoalescesBurstOfWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	rec := newRecorder()
	startWatcher(t, path, rec)

	for _, content := range []string{"[1]", "[1,2]", "[1,2,3]"} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	select {
	case <-rec.seen:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, "[1,2,3]", rec.last())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	rec := newRecorder()
	startWatcher(t, path, rec)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0o644))

	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.json"), newRecorder().handle, Options{})
	assert.Error(t, err)
}

func TestReadSettled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = os.WriteFile(path, []byte("[]"), 0o644)
	}()

	data, err := readSettled(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReadSettled_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := readSettled(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
