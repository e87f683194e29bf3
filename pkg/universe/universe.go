package universe

import (
	"fmt"
	"strings"

	"torus-life/pkg/core"
)

// Cell is the state of a single grid position. The only valid values are
// Dead (0) and Alive (1), so a cell buffer can be read as raw bytes without
// translation.
type Cell uint8

const (
	// Dead marks an unoccupied cell.
	Dead Cell = 0
	// Alive marks an occupied cell.
	Alive Cell = 1
)

// Universe is a fixed-size toroidal Game of Life grid. Cells are stored
// row-major, one byte each, and the grid never resizes after construction.
//
// A Universe is driven by exactly one caller at a time; none of its methods
// are safe for concurrent use.
type Universe struct {
	width  int
	height int
	cur    []Cell
	nxt    []Cell
}

// New returns an all-dead Universe with the provided dimensions.
func New(width, height int) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([]Cell, width*height)
	return &Universe{width: width, height: height, cur: cells, nxt: make([]Cell, len(cells))}, nil
}

// Width returns the fixed grid width in cells.
func (u *Universe) Width() int { return u.width }

// Height returns the fixed grid height in cells.
func (u *Universe) Height() int { return u.height }

// Cells exposes the current generation without copying. The slice is
// invalidated by the next mutating call on the Universe; callers must
// re-fetch it after Tick, Clear, or any seeding call, and must write only
// Dead or Alive values.
func (u *Universe) Cells() []Cell { return u.cur }

func (u *Universe) index(row, col int) int { return row*u.width + col }

func (u *Universe) liveNeighbors(row, col int) int {
	w, h := u.width, u.height
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + h) % h
			c := (col + dc + w) % w
			count += int(u.cur[r*w+c])
		}
	}
	return count
}

// Tick advances the grid by one generation. Every neighbor count wraps
// toroidally, and the whole new generation is computed from the previous
// snapshot before the buffers swap, so no cell observes a same-tick update.
// Tick performs no allocation and cannot fail.
func (u *Universe) Tick() {
	w, h := u.width, u.height
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			n := u.liveNeighbors(row, col)
			idx := row*w + col
			next := Dead
			if n == 3 || (n == 2 && u.cur[idx] == Alive) {
				next = Alive
			}
			u.nxt[idx] = next
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}

// ToggleCell flips the cell at (row, col) between Dead and Alive. Indices
// outside the grid return ErrIndexOutOfBounds and leave the grid unmodified;
// interactive frontends clamp coordinates before calling, so hitting the
// error path indicates a caller bug rather than user input.
func (u *Universe) ToggleCell(row, col int) error {
	if row < 0 || row >= u.height || col < 0 || col >= u.width {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrIndexOutOfBounds, row, col, u.width, u.height)
	}
	idx := u.index(row, col)
	if u.cur[idx] == Alive {
		u.cur[idx] = Dead
	} else {
		u.cur[idx] = Alive
	}
	return nil
}

// Set writes a single cell, normalizing any non-zero value to Alive. It
// shares ToggleCell's bounds policy.
func (u *Universe) Set(row, col int, c Cell) error {
	if row < 0 || row >= u.height || col < 0 || col >= u.width {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrIndexOutOfBounds, row, col, u.width, u.height)
	}
	if c != Dead {
		c = Alive
	}
	u.cur[u.index(row, col)] = c
	return nil
}

// Clear sets every cell to Dead.
func (u *Universe) Clear() {
	for i := range u.cur {
		u.cur[i] = Dead
	}
}

// SeedDefault fills the grid with the classic deterministic starting
// pattern: cell i is alive when i%2 == 0 or i%7 == 0.
func (u *Universe) SeedDefault() {
	for i := range u.cur {
		if i%2 == 0 || i%7 == 0 {
			u.cur[i] = Alive
		} else {
			u.cur[i] = Dead
		}
	}
}

// Randomize reseeds the board, making roughly one cell in three alive. The
// same seed always produces the same board.
func (u *Universe) Randomize(seed int64) {
	rng := core.NewRNG(seed)
	for i := range u.cur {
		if rng.OneIn(3) {
			u.cur[i] = Alive
		} else {
			u.cur[i] = Dead
		}
	}
}

// String renders the current generation as text, one row per line.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(u.height * (u.width*4 + 1))
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.cur[u.index(row, col)] == Alive {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
