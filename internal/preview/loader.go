package preview

import (
	"context"
	"fmt"
)

// BytesFetcher downloads the raw bytes behind an image URL.
type BytesFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Loader downloads, decodes and renders images, caching the result per URL
// and box size.
type Loader struct {
	fetcher  BytesFetcher
	renderer *Renderer
	cache    *Cache
}

// NewLoader creates a loader. A nil cache gets a default one.
func NewLoader(fetcher BytesFetcher, renderer *Renderer, cache *Cache) *Loader {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Loader{fetcher: fetcher, renderer: renderer, cache: cache}
}

// Renderer returns the renderer in use.
func (l *Loader) Renderer() *Renderer {
	return l.renderer
}

// Load returns url rendered into width x height cells.
func (l *Loader) Load(ctx context.Context, url string, width, height int) (string, error) {
	if l.renderer.Protocol() == ProtocolNone {
		return "", ErrDisabled
	}
	key := cacheKey{url: url, protocol: l.renderer.Protocol(), width: width, height: height}
	if out, ok := l.cache.get(key); ok {
		return out, nil
	}

	data, err := l.fetcher.FetchBytes(ctx, url)
	if err != nil {
		return "", fmt.Errorf("preview: download: %w", err)
	}
	img, _, err := Decode(data)
	if err != nil {
		return "", err
	}
	out, err := l.renderer.Render(img, width, height)
	if err != nil {
		return "", err
	}
	l.cache.put(key, out)
	return out, nil
}
