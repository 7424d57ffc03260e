package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alechenninger/worldclock/internal/domain"
	"github.com/alechenninger/worldclock/internal/snapshot"
)

type Writer struct {
	baseDir string
	fs      afero.Fs
}

func New(baseDir string) *Writer                      { return &Writer{baseDir: baseDir, fs: afero.NewOsFs()} }
func NewWithFS(baseDir string, fsys afero.Fs) *Writer { return &Writer{baseDir: baseDir, fs: fsys} }

// Write encodes v and stores it atomically as <baseDir>/<name><ext>.
func (w *Writer) Write(ctx context.Context, name string, v domain.View, format string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}
	b, err := snapshot.Encode(v, format)
	if err != nil {
		return "", err
	}
	af := &afero.Afero{Fs: w.fs}
	if err := af.MkdirAll(w.baseDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(w.baseDir, name+snapshot.Ext(format))
	tmp := path + ".tmp"
	f, err := w.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := w.fs.Rename(tmp, path); err != nil {
		_ = w.fs.Remove(tmp)
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

var _ domain.SnapshotWriter = (*Writer)(nil)
