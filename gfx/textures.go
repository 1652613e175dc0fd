package gfx

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderSize is the edge of the image shown while a texture loads.
const placeholderSize = 256

// Textures loads named images from a file system in the background and
// caches them. Missing or loading textures resolve to a placeholder.
type Textures struct {
	fsys   fs.FS
	logger *slog.Logger

	cache       map[string]*ebiten.Image
	cacheMu     sync.RWMutex
	placeholder *ebiten.Image
	fetching    map[string]bool
	failed      map[string]bool
	fetchingMu  sync.Mutex
}

// NewTextures creates a cache reading from fsys. A nil fsys yields only
// placeholders.
func NewTextures(fsys fs.FS, logger *slog.Logger) *Textures {
	if logger == nil {
		logger = slog.Default()
	}
	placeholder := ebiten.NewImage(placeholderSize, placeholderSize)
	placeholder.Fill(color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})

	return &Textures{
		fsys:        fsys,
		logger:      logger,
		cache:       make(map[string]*ebiten.Image),
		placeholder: placeholder,
		fetching:    make(map[string]bool),
		failed:      make(map[string]bool),
	}
}

// Get returns the texture for name, starting a load on first use.
func (t *Textures) Get(name string) *ebiten.Image {
	t.cacheMu.RLock()
	img, found := t.cache[name]
	t.cacheMu.RUnlock()
	if found {
		return img
	}

	t.fetchingMu.Lock()
	if t.fsys != nil && !t.fetching[name] && !t.failed[name] {
		t.fetching[name] = true
		go t.loadAndCache(name)
	}
	t.fetchingMu.Unlock()
	return t.placeholder
}

// Loaded reports whether name is in the cache.
func (t *Textures) Loaded(name string) bool {
	t.cacheMu.RLock()
	defer t.cacheMu.RUnlock()
	_, ok := t.cache[name]
	return ok
}

func (t *Textures) loadAndCache(name string) {
	var failed bool
	defer func() {
		t.fetchingMu.Lock()
		delete(t.fetching, name)
		if failed {
			t.failed[name] = true
		}
		t.fetchingMu.Unlock()
	}()

	src, err := decodeTexture(t.fsys, name)
	if err != nil {
		failed = true
		t.logger.Warn("texture load failed", "name", name, "err", err)
		return
	}

	t.cacheMu.Lock()
	t.cache[name] = ebiten.NewImageFromImage(src)
	t.cacheMu.Unlock()
}

func decodeTexture(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening texture %s failed: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s failed: %w", name, err)
	}
	return img, nil
}
