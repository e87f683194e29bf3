package app

// cellAt converts canvas pixel coordinates into grid coordinates. Each cell
// occupies cellSize pixels plus a 1px grid line, so the conversion divides by
// cellSize+1 and floors; results are clamped to the valid index range so a
// click on the outermost grid line still lands on the nearest cell.
func cellAt(px, py, cellSize, width, height int) (row, col int) {
	span := cellSize + 1
	col = px / span
	row = py / span
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	if row < 0 {
		row = 0
	}
	if row > height-1 {
		row = height - 1
	}
	return row, col
}
