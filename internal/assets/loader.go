// Package assets разрешает ID ресурсов в декодированные изображения.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// ErrAssetLoad — общий признак ошибок загрузки ресурсов.
var ErrAssetLoad = errors.New("asset load failed")

// AssetLoadError описывает ресурс, который не удалось загрузить.
type AssetLoadError struct {
	ID  string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %q: %v", e.ID, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

func (e *AssetLoadError) Is(target error) bool { return target == ErrAssetLoad }

// Loader загружает и кэширует изображения из файловой системы.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger

	mu     sync.Mutex
	images map[string]image.Image
}

// NewLoader создает загрузчик поверх fsys (обычно os.DirFS с каталогом ресурсов).
func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fsys:   fsys,
		logger: logger,
		images: make(map[string]image.Image),
	}
}

// LoadAll параллельно загружает все ids. Возвращается только когда готовы все;
// при первой ошибке остальные загрузки отменяются.
func (l *Loader) LoadAll(ctx context.Context, ids []string) (map[string]image.Image, error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			return l.load(ctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]image.Image, len(ids))
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range ids {
		out[id] = l.images[id]
	}
	return out, nil
}

func (l *Loader) load(ctx context.Context, id string) error {
	if _, ok := l.Get(id); ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return &AssetLoadError{ID: id, Err: err}
	}

	f, err := l.fsys.Open(id)
	if err != nil {
		return &AssetLoadError{ID: id, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return &AssetLoadError{ID: id, Err: err}
	}

	l.mu.Lock()
	l.images[id] = img
	l.mu.Unlock()

	b := img.Bounds()
	l.logger.Debug("asset loaded",
		zap.String("id", id),
		zap.String("format", format),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return nil
}

// Get возвращает загруженное изображение.
func (l *Loader) Get(id string) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.images[id]
	return img, ok
}

// Cleanup очищает кэш.
func (l *Loader) Cleanup() {
	l.mu.Lock()
	l.images = make(map[string]image.Image)
	l.mu.Unlock()
}
