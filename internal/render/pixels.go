package render

import (
	"image/color"

	"torus-life/pkg/universe"
)

// CanvasSize returns the pixel dimensions needed to draw a w×h grid of
// cellSize-pixel squares separated by 1px grid lines.
func CanvasSize(w, h, cellSize int) (int, int) {
	return (cellSize+1)*w + 1, (cellSize+1)*h + 1
}

// fillCellsRGBA paints cells and grid lines into an RGBA staging buffer laid
// out for a canvas of CanvasSize(w, h, cellSize). The whole buffer is filled
// with the line color first, then each cell square is painted over it.
func fillCellsRGBA(buf []byte, cells []universe.Cell, w, h, cellSize int, alive, dead, line color.RGBA) {
	canvasW, _ := CanvasSize(w, h, cellSize)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = line.R
		buf[i+1] = line.G
		buf[i+2] = line.B
		buf[i+3] = line.A
	}

	span := cellSize + 1
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := dead
			if cells[row*w+col] != universe.Dead {
				c = alive
			}
			x0 := col*span + 1
			y0 := row*span + 1
			for y := y0; y < y0+cellSize; y++ {
				base := (y*canvasW + x0) * 4
				for x := 0; x < cellSize; x++ {
					buf[base+0] = c.R
					buf[base+1] = c.G
					buf[base+2] = c.B
					buf[base+3] = c.A
					base += 4
				}
			}
		}
	}
}
