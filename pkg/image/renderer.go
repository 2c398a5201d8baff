// Package image turns a rendered chart bitmap into terminal output using the
// inline graphics protocol chosen by package terminal.
package image

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
)

// ErrDisabled is returned by Render when the protocol is ProtocolNone.
var ErrDisabled = errors.New("image: inline images disabled")

// Renderer draws images for one terminal session.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
}

// NewRenderer creates a Renderer from detected capabilities. Pixel cell
// sizes default to 8x16 when the terminal does not report them.
func NewRenderer(caps terminal.Capabilities) *Renderer {
	return &Renderer{
		protocol: caps.Protocol,
		cellW:    caps.Size.CellW,
		cellH:    caps.Size.CellH,
	}
}

// Protocol returns the active protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Render converts img into an escape sequence string occupying at most
// cols x rows character cells.
func (r *Renderer) Render(img image.Image, cols, rows int) (string, error) {
	if img == nil {
		return "", errors.New("image: nil image")
	}

	switch r.protocol {
	case terminal.ProtocolNone, terminal.ProtocolAuto:
		return "", ErrDisabled
	case terminal.ProtocolHalfblocks:
		// One column and two pixel rows per cell.
		return Halfblocks(ResizeToFit(img, cols, rows*2)), nil
	case terminal.ProtocolKitty:
		return r.renderTermimg(img, termimg.Kitty, cols, rows)
	case terminal.ProtocolITerm2:
		return r.renderTermimg(img, termimg.ITerm2, cols, rows)
	case terminal.ProtocolSixel:
		return r.renderTermimg(img, termimg.Sixel, cols, rows)
	default:
		return "", fmt.Errorf("image: unsupported protocol %v", r.protocol)
	}
}

func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol, cols, rows int) (string, error) {
	cellW, cellH := r.cellW, r.cellH
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	fitted := ResizeToFit(img, cols*cellW, rows*cellH)

	ti := termimg.New(fitted)
	if ti == nil {
		return "", errors.New("image: go-termimg rejected image")
	}
	out, err := ti.Protocol(proto).Size(cols, rows).Scale(termimg.ScaleFit).Render()
	if err != nil {
		return "", fmt.Errorf("image: %s render: %w", r.protocol, err)
	}
	return out, nil
}

// Halfblocks renders img with U+2580 upper-half blocks in 24-bit color. Each
// output cell covers one pixel column and two pixel rows: the top pixel is
// the foreground and the bottom pixel the background.
func Halfblocks(img image.Image) string {
	nrgba := ImageToNRGBA(img)
	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(w * (h/2 + 1) * 24)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if y+1 >= h {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
				continue
			}
			bot := nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y+1)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
