package preview

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Protocol
	}{
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "1"}, ProtocolKitty},
		{"ghostty", map[string]string{"TERM_PROGRAM": "ghostty"}, ProtocolKitty},
		{"iterm", map[string]string{"TERM_PROGRAM": "iTerm.app"}, ProtocolITerm2},
		{"wezterm", map[string]string{"WEZTERM_EXECUTABLE": "/bin/wezterm"}, ProtocolITerm2},
		{"foot", map[string]string{"TERM": "foot"}, ProtocolSixel},
		{"plain", map[string]string{"TERM": "xterm-256color"}, ProtocolHalfblocks},
		{"empty", nil, ProtocolHalfblocks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(env(tt.vars)))
		})
	}
}

func TestParseAndResolve(t *testing.T) {
	p, err := ParseProtocol(" Kitty ")
	require.NoError(t, err)
	assert.Equal(t, ProtocolKitty, p)

	p, err = ParseProtocol("")
	require.NoError(t, err)
	assert.Equal(t, ProtocolAuto, p)

	_, err = ParseProtocol("ascii-art")
	assert.Error(t, err)

	assert.Equal(t, ProtocolSixel, Resolve(ProtocolSixel, env(nil)))
	assert.Equal(t, ProtocolKitty, Resolve(ProtocolAuto, env(map[string]string{"TERM": "xterm-kitty"})))
}

func TestDecode(t *testing.T) {
	img, format, err := Decode(pngBytes(t, solid(4, 4, color.White)))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, _, err = Decode([]byte("<html>not an image</html>"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = Decode(nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestHalfblocks(t *testing.T) {
	r := NewRenderer(ProtocolAuto)
	assert.Equal(t, ProtocolHalfblocks, r.Protocol())

	out, err := r.Render(solid(4, 4, color.NRGBA{R: 255, A: 255}), 4, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m▀")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"))
}

func TestHalfblocksFitsBox(t *testing.T) {
	r := NewRenderer(ProtocolHalfblocks)
	out, err := r.Render(solid(200, 100, color.White), 20, 20)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, 20, strings.Count(lines[0], "▀"))
}

func TestRenderEdgeCases(t *testing.T) {
	r := NewRenderer(ProtocolHalfblocks)
	_, err := r.Render(nil, 10, 10)
	assert.Error(t, err)

	out, err := r.Render(solid(2, 2, color.White), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = NewRenderer(ProtocolNone).Render(solid(2, 2, color.White), 10, 10)
	assert.ErrorIs(t, err, ErrDisabled)
}

type stubFetcher struct {
	data  []byte
	err   error
	calls int
}

func (s *stubFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func TestLoaderCaches(t *testing.T) {
	f := &stubFetcher{data: pngBytes(t, solid(8, 8, color.White))}
	l := NewLoader(f, NewRenderer(ProtocolHalfblocks), nil)

	first, err := l.Load(context.Background(), "https://i.waifu.pics/a.png", 8, 4)
	require.NoError(t, err)
	second, err := l.Load(context.Background(), "https://i.waifu.pics/a.png", 8, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.calls)

	_, err = l.Load(context.Background(), "https://i.waifu.pics/a.png", 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
}

func TestLoaderErrors(t *testing.T) {
	f := &stubFetcher{err: errors.New("offline")}
	l := NewLoader(f, NewRenderer(ProtocolHalfblocks), nil)
	_, err := l.Load(context.Background(), "u", 8, 4)
	assert.Error(t, err)

	f = &stubFetcher{data: []byte("nope")}
	l = NewLoader(f, NewRenderer(ProtocolHalfblocks), nil)
	_, err = l.Load(context.Background(), "u", 8, 4)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	l = NewLoader(f, NewRenderer(ProtocolNone), nil)
	_, err = l.Load(context.Background(), "u", 8, 4)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestCacheEvictsOldest(t *testing.T) {
	c := NewCache(2)
	a := cacheKey{url: "a"}
	b := cacheKey{url: "b"}
	d := cacheKey{url: "d"}

	c.put(a, "A")
	c.put(b, "B")
	_, ok := c.get(a)
	require.True(t, ok)
	c.put(d, "D")

	assert.Equal(t, 2, c.Len())
	_, ok = c.get(b)
	assert.False(t, ok)
	_, ok = c.get(a)
	assert.True(t, ok)

	hits, misses := c.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, misses)
}
