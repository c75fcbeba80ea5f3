package preview

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"
)

// Default cell size in pixels used to size images for graphics protocols.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// ErrDisabled is returned when rendering with ProtocolNone.
var ErrDisabled = errors.New("preview: image rendering disabled")

// Renderer draws images into a box of terminal cells.
type Renderer struct {
	protocol Protocol
	cellW    int
	cellH    int
}

// NewRenderer creates a renderer. ProtocolAuto must be resolved beforehand;
// it is treated as halfblocks here.
func NewRenderer(p Protocol) *Renderer {
	if p == ProtocolAuto || p == "" {
		p = ProtocolHalfblocks
	}
	return &Renderer{protocol: p, cellW: DefaultCellWidth, cellH: DefaultCellHeight}
}

// Protocol returns the active protocol.
func (r *Renderer) Protocol() Protocol {
	return r.protocol
}

// Render fits img into width x height cells.
func (r *Renderer) Render(img image.Image, width, height int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("preview: image is nil")
	}
	if width <= 0 || height <= 0 {
		return "", nil
	}
	if r.protocol == ProtocolNone {
		return "", ErrDisabled
	}
	if proto, ok := r.protocol.graphics(); ok {
		return r.renderTermimg(img, proto, width, height)
	}
	return renderHalfblocks(img, width, height), nil
}

func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol, width, height int) (string, error) {
	fitted := imaging.Fit(img, width*r.cellW, height*r.cellH, imaging.Lanczos)
	ti := termimg.New(fitted)
	if ti == nil {
		return "", fmt.Errorf("preview: go-termimg could not wrap image")
	}
	ti.Protocol(proto).Size(width, height).Scale(termimg.ScaleFit)
	out, err := ti.Render()
	if err != nil {
		return "", fmt.Errorf("preview: %s render: %w", r.protocol, err)
	}
	return out, nil
}

// renderHalfblocks draws two vertical pixels per cell with the upper half
// block: foreground is the top pixel, background the bottom one.
func renderHalfblocks(img image.Image, width, height int) string {
	fitted := imaging.Fit(img, width, height*2, imaging.Lanczos)
	b := fitted.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(w * (h/2 + 1) * 40)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := fitted.NRGBAAt(x, y)
			if y+1 >= h || fitted.NRGBAAt(x, y+1).A == 0 {
				if top.A == 0 {
					sb.WriteString("\x1b[0m ")
					continue
				}
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
				continue
			}
			bot := fitted.NRGBAAt(x, y+1)
			if top.A == 0 {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
				continue
			}
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
