//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a one-line status readout over the simulation view.
type Overlay struct {
	generation int
	tps        int
	paused     bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// SetStatus records the values shown by the next Draw.
func (o *Overlay) SetStatus(generation, tps int, paused bool) {
	o.generation = generation
	o.tps = tps
	o.paused = paused
}

// Draw paints the status line into the top-left corner of the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	state := "running"
	if o.paused {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  tps %d  %s", o.generation, o.tps, state)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.RGBA{R: 220, G: 40, B: 40, A: 255})
}
