package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flapper/assets"
)

// ImageCache hands out one GPU image per sheet name, so every run after
// the first reuses the sheets already uploaded.
type ImageCache struct {
	mu     sync.Mutex
	load   func(name string) (*ebiten.Image, error)
	images map[string]*ebiten.Image
}

// NewImageCache caches images from load. A nil load reads embedded assets
// and falls back to the filesystem.
func NewImageCache(load func(name string) (*ebiten.Image, error)) *ImageCache {
	if load == nil {
		load = loadImageFromAssetsOrFS
	}
	return &ImageCache{load: load, images: make(map[string]*ebiten.Image)}
}

// Load returns the cached image for name, loading it on first use. Failed
// loads are not cached.
func (c *ImageCache) Load(name string) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("render: empty image name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[name]; ok {
		return img, nil
	}
	img, err := c.load(name)
	if err != nil {
		return nil, err
	}
	c.images[name] = img
	return img, nil
}

func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("render: load image %s", path)
}
