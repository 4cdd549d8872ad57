package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"player.png":        {Data: pngBytes(t, 8, 8)},
		"sprites/enemy.png": {Data: pngBytes(t, 4, 6)},
	}
	l := NewLoader(fsys, nil)

	images, err := l.LoadAll(context.Background(), []string{"player.png", "sprites/enemy.png"})

	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 6), images["sprites/enemy.png"].Bounds())

	img, ok := l.Get("player.png")
	assert.True(t, ok)
	assert.Equal(t, 8, img.Bounds().Dx())

	l.Cleanup()
	_, ok = l.Get("player.png")
	assert.False(t, ok)
}

func TestLoadAllMissingAsset(t *testing.T) {
	l := NewLoader(fstest.MapFS{"player.png": {Data: pngBytes(t, 2, 2)}}, nil)

	_, err := l.LoadAll(context.Background(), []string{"player.png", "enemy.png"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var loadErr *AssetLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "enemy.png", loadErr.ID)
}

func TestLoadAllCorruptAsset(t *testing.T) {
	l := NewLoader(fstest.MapFS{"enemy.png": {Data: []byte("not an image")}}, nil)

	_, err := l.LoadAll(context.Background(), []string{"enemy.png"})

	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestLoadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader(fstest.MapFS{"enemy.png": {Data: pngBytes(t, 2, 2)}}, nil)

	_, err := l.LoadAll(ctx, []string{"enemy.png"})

	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorIs(t, err, context.Canceled)
}
