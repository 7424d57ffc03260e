package fs

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alechenninger/worldclock/internal/domain"
)

func TestWriteStoresEncodedView(t *testing.T) {
	t.Parallel()
	mfs := afero.NewMemMapFs()
	w := NewWithFS("/state/snapshots", mfs)
	v := domain.View{Display: domain.Display{Zone: "Asia/Tokyo", LocalTime: "2024-01-01 09:00:00 AM"}}

	path, err := w.Write(context.Background(), "tokyo", v, "json")
	require.NoError(t, err)
	assert.Equal(t, "/state/snapshots/tokyo.json", path)

	b, err := afero.ReadFile(mfs, path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"zone": "Asia/Tokyo"`)

	exists, err := afero.Exists(mfs, path+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteOverwrites(t *testing.T) {
	t.Parallel()
	mfs := afero.NewMemMapFs()
	w := NewWithFS("/s", mfs)
	ctx := context.Background()

	_, err := w.Write(ctx, "now", domain.View{Display: domain.Display{Zone: "Asia/Dhaka"}}, "text")
	require.NoError(t, err)
	path, err := w.Write(ctx, "now", domain.View{Display: domain.Display{Zone: "Asia/Tokyo"}}, "text")
	require.NoError(t, err)
	assert.Equal(t, "/s/now.txt", path)

	b, err := afero.ReadFile(mfs, path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Asia/Tokyo Time")
	assert.NotContains(t, string(b), "Asia/Dhaka")
}

func TestWriteRejectsBadInput(t *testing.T) {
	t.Parallel()
	w := NewWithFS("/s", afero.NewMemMapFs())
	ctx := context.Background()
	for _, name := range []string{"", "  ", "../escape", "a/b", ".."} {
		_, err := w.Write(ctx, name, domain.View{}, "text")
		assert.Error(t, err, name)
	}
	_, err := w.Write(ctx, "ok", domain.View{}, "toml")
	assert.Error(t, err)
}

type failingRenameFs struct{ afero.Fs }

func (failingRenameFs) Rename(oldname, newname string) error { return errors.New("rename refused") }

func TestWriteRemovesTempFileWhenRenameFails(t *testing.T) {
	t.Parallel()
	mfs := afero.NewMemMapFs()
	w := NewWithFS("/s", failingRenameFs{Fs: mfs})

	_, err := w.Write(context.Background(), "now", domain.View{Display: domain.Display{Zone: "Asia/Dhaka"}}, "text")
	require.ErrorContains(t, err, "rename refused")

	for _, p := range []string{"/s/now.txt.tmp", "/s/now.txt"} {
		exists, err := afero.Exists(mfs, p)
		require.NoError(t, err)
		assert.False(t, exists, p)
	}
}
