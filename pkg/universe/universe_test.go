package universe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// glider is the standard 5-cell glider, as (row, col) offsets.
var glider = [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

func mustNew(t *testing.T, w, h int) *Universe {
	t.Helper()
	u, err := New(w, h)
	require.NoError(t, err)
	return u
}

func stamp(t *testing.T, u *Universe, baseRow, baseCol int, pattern [][2]int) {
	t.Helper()
	for _, p := range pattern {
		require.NoError(t, u.Set(baseRow+p[0], baseCol+p[1], Alive))
	}
}

func snapshot(u *Universe) []Cell {
	out := make([]Cell, len(u.Cells()))
	copy(out, u.Cells())
	return out
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"both zero", 0, 0},
		{"negative width", -3, 10},
		{"negative height", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(tt.w, tt.h)
			require.ErrorIs(t, err, ErrInvalidDimensions)
			require.Nil(t, u)
		})
	}
}

func TestNewStartsDead(t *testing.T) {
	u := mustNew(t, 7, 5)
	require.Equal(t, 7, u.Width())
	require.Equal(t, 5, u.Height())
	require.Len(t, u.Cells(), 35)
	for _, c := range u.Cells() {
		require.Equal(t, Dead, c)
	}
}

func TestRandomizeDeterminism(t *testing.T) {
	a := mustNew(t, 32, 24)
	b := mustNew(t, 32, 24)
	a.Randomize(42)
	b.Randomize(42)
	for i := 0; i < 10; i++ {
		a.Tick()
		b.Tick()
	}
	require.Equal(t, a.Cells(), b.Cells())

	c := mustNew(t, 32, 24)
	c.Randomize(43)
	require.NotEqual(t, a.Cells(), c.Cells())
}

func TestWraparoundAdjacency(t *testing.T) {
	// Three live cells meeting across the corners of a 4x4 torus are mutually
	// adjacent, and together give the fourth corner exactly three neighbors.
	// One tick therefore produces a block wrapped across all four corners,
	// which is a still life.
	u := mustNew(t, 4, 4)
	stamp(t, u, 0, 0, [][2]int{{0, 0}, {0, 3}, {3, 3}})

	u.Tick()

	corners := map[[2]int]bool{{0, 0}: true, {0, 3}: true, {3, 0}: true, {3, 3}: true}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := Dead
			if corners[[2]int{row, col}] {
				want = Alive
			}
			require.Equal(t, want, u.Cells()[row*4+col], "cell (%d,%d)", row, col)
		}
	}

	before := snapshot(u)
	u.Tick()
	require.Equal(t, before, u.Cells())
}

func TestBlockStillLife(t *testing.T) {
	u := mustNew(t, 6, 6)
	stamp(t, u, 2, 2, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})

	before := snapshot(u)
	for i := 0; i < 5; i++ {
		u.Tick()
	}
	require.Equal(t, before, u.Cells())
}

func TestBlinkerPeriodTwo(t *testing.T) {
	u := mustNew(t, 5, 5)
	stamp(t, u, 2, 1, [][2]int{{0, 0}, {0, 1}, {0, 2}})
	horizontal := snapshot(u)

	u.Tick()

	vertical := mustNew(t, 5, 5)
	stamp(t, vertical, 1, 2, [][2]int{{0, 0}, {1, 0}, {2, 0}})
	require.Equal(t, vertical.Cells(), u.Cells())

	u.Tick()
	require.Equal(t, horizontal, u.Cells())
}

func TestGliderTranslation(t *testing.T) {
	u := mustNew(t, 10, 10)
	stamp(t, u, 1, 1, glider)

	for i := 0; i < 4; i++ {
		u.Tick()
	}

	want := mustNew(t, 10, 10)
	stamp(t, want, 2, 2, glider)
	require.Equal(t, want.Cells(), u.Cells())
}

func TestClearIsFixedPoint(t *testing.T) {
	u := mustNew(t, 16, 16)
	u.Randomize(7)
	u.Clear()
	for i := 0; i < 4; i++ {
		u.Tick()
		for _, c := range u.Cells() {
			require.Equal(t, Dead, c)
		}
	}
}

func TestToggleCellPairRestores(t *testing.T) {
	u := mustNew(t, 8, 8)
	u.Randomize(11)
	before := snapshot(u)

	require.NoError(t, u.ToggleCell(3, 5))
	for i, c := range u.Cells() {
		if i == 3*8+5 {
			require.NotEqual(t, before[i], c)
			continue
		}
		require.Equal(t, before[i], c)
	}

	require.NoError(t, u.ToggleCell(3, 5))
	require.Equal(t, before, u.Cells())
}

func TestToggleCellOutOfBounds(t *testing.T) {
	u := mustNew(t, 8, 6)
	u.Randomize(5)
	before := snapshot(u)

	tests := []struct {
		name     string
		row, col int
	}{
		{"row past end", 6, 0},
		{"col past end", 0, 8},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, u.ToggleCell(tt.row, tt.col), ErrIndexOutOfBounds)
			require.Equal(t, before, u.Cells())
		})
	}
}

func TestSetNormalizesAndBounds(t *testing.T) {
	u := mustNew(t, 4, 4)
	require.NoError(t, u.Set(1, 1, Cell(7)))
	require.Equal(t, Alive, u.Cells()[1*4+1])
	require.ErrorIs(t, u.Set(4, 0, Alive), ErrIndexOutOfBounds)
}

func TestSeedDefaultPattern(t *testing.T) {
	u := mustNew(t, 8, 8)
	u.SeedDefault()
	for i, c := range u.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		require.Equal(t, want, c, "cell %d", i)
	}
}

func TestCellsIsZeroCopyView(t *testing.T) {
	u := mustNew(t, 3, 3)
	u.Cells()[4] = Alive
	require.NoError(t, u.ToggleCell(0, 0))
	require.Equal(t, Alive, u.Cells()[4])
	require.Equal(t, Alive, u.Cells()[0])
}

func TestStringRender(t *testing.T) {
	u := mustNew(t, 2, 2)
	require.NoError(t, u.Set(0, 0, Alive))
	require.Equal(t, "◼ ◻ \n◻ ◻ \n", u.String())
}
