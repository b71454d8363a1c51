package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/pathfind"
)

// ErrCellSize indicates a non-positive cell size.
var ErrCellSize = errors.New("render: cell size must be positive")

// DefaultCellSize is the edge length of one cell in pixels.
const DefaultCellSize = 12

// Palette maps each Style to a fill color.
type Palette [Destination + 1]color.Color

// DefaultPalette returns the standard colors.
func DefaultPalette() Palette {
	return Palette{
		Empty:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Frontier:    color.RGBA{R: 0x9c, G: 0xd3, B: 0xf0, A: 0xff},
		Settled:     color.RGBA{R: 0x3f, G: 0x7f, B: 0xbf, A: 0xff},
		Wall:        color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff},
		Path:        color.RGBA{R: 0xf5, G: 0xc5, B: 0x18, A: 0xff},
		Start:       color.RGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff},
		Destination: color.RGBA{R: 0xd6, G: 0x33, B: 0x33, A: 0xff},
	}
}

// gridLine is the color of the one-pixel cell borders.
var gridLine = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

// Painter draws snapshots as raster images.
type Painter struct {
	cellSize int
	palette  Palette
}

// NewPainter returns a Painter with cellSize-pixel cells and the default palette.
func NewPainter(cellSize int) (*Painter, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCellSize, cellSize)
	}
	return &Painter{cellSize: cellSize, palette: DefaultPalette()}, nil
}

// WithPalette returns a copy of p that uses pal.
func (p *Painter) WithPalette(pal Palette) *Painter {
	cp := *p
	cp.palette = pal
	return &cp
}

// Image draws s. The image is Cols·cellSize wide and Rows·cellSize tall.
func (p *Painter) Image(s pathfind.Snapshot) image.Image {
	return p.draw(s).Image()
}

// EncodePNG writes s as PNG to w.
func (p *Painter) EncodePNG(w io.Writer, s pathfind.Snapshot) error {
	return p.draw(s).EncodePNG(w)
}

// SavePNG writes s as PNG to path.
func (p *Painter) SavePNG(path string, s pathfind.Snapshot) error {
	return p.draw(s).SavePNG(path)
}

func (p *Painter) draw(s pathfind.Snapshot) *gg.Context {
	size := float64(p.cellSize)
	dc := gg.NewContext(s.Cols()*p.cellSize, s.Rows()*p.cellSize)
	dc.SetColor(p.palette[Empty])
	dc.Clear()

	for v := range s.Cells() {
		x := float64(v.Coord.Col) * size
		y := float64(v.Coord.Row) * size
		dc.DrawRectangle(x, y, size, size)
		dc.SetColor(p.palette[Classify(s, v.Coord)])
		dc.FillPreserve()
		dc.SetColor(gridLine)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	return dc
}

// FrameDir writes every step it receives as a numbered PNG file.
type FrameDir struct {
	dir     string
	prefix  string
	painter *Painter
}

// NewFrameDir creates dir if needed and returns a sink writing
// <dir>/<prefix><index>.png for each step.
func NewFrameDir(dir, prefix string, p *Painter) (*FrameDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: frame dir: %w", err)
	}
	return &FrameDir{dir: dir, prefix: prefix, painter: p}, nil
}

// Path returns the file name used for step index i.
func (f *FrameDir) Path(i int) string {
	return filepath.Join(f.dir, fmt.Sprintf("%s%05d.png", f.prefix, i))
}

// Frame writes st.
func (f *FrameDir) Frame(st pathfind.Step) error {
	if err := f.painter.SavePNG(f.Path(st.Index), st.Snapshot); err != nil {
		return fmt.Errorf("render: frame %d: %w", st.Index, err)
	}
	return nil
}
