package mem

import (
	"context"
	"sync"

	"github.com/alechenninger/worldclock/internal/domain"
	"github.com/alechenninger/worldclock/internal/snapshot"
)

// Writer keeps encoded snapshots in memory. For tests.
type Writer struct {
	mu    sync.Mutex
	files map[string][]byte
}

func New() *Writer { return &Writer{files: make(map[string][]byte)} }

func (w *Writer) Write(ctx context.Context, name string, v domain.View, format string) (string, error) {
	b, err := snapshot.Encode(v, format)
	if err != nil {
		return "", err
	}
	path := "/mem/" + name + snapshot.Ext(format)
	w.mu.Lock()
	w.files[path] = b
	w.mu.Unlock()
	return path, nil
}

// Get returns the bytes stored at path.
func (w *Writer) Get(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.files[path]
	return b, ok
}

var _ domain.SnapshotWriter = (*Writer)(nil)
