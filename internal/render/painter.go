//go:build ebiten

package render

import (
	"image/color"

	"torus-life/pkg/universe"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from the cell buffer each frame.
type GridPainter struct {
	w, h     int
	cellSize int
	img      *ebiten.Image
	buf      []byte
}

// NewGridPainter allocates a painter for a w×h grid drawn as cellSize-pixel
// squares with 1px grid lines.
func NewGridPainter(w, h, cellSize int) *GridPainter {
	cw, ch := CanvasSize(w, h, cellSize)
	return &GridPainter{
		w:        w,
		h:        h,
		cellSize: cellSize,
		img:      ebiten.NewImage(cw, ch),
		buf:      make([]byte, 4*cw*ch),
	}
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []universe.Cell, alive, dead, line color.RGBA) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.cellSize, alive, dead, line)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}
