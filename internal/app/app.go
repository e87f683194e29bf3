//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tpsStep is the increment applied by the speed keys.
const tpsStep = 5

// Game adapts a Universe to the ebiten.Game interface. It is the single
// actor driving the engine: ticks fire on the fixed-step cadence, and all
// interactive mutation goes through the Universe API.
type Game struct {
	uni     *universe.Universe
	painter *render.GridPainter
	overlay *ui.Overlay
	timer   *core.FixedStep

	aliveColor color.RGBA
	deadColor  color.RGBA
	lineColor  color.RGBA

	cellSize   int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
}

// New constructs a Game for the provided universe.
func New(uni *universe.Universe, cellSize, tps int, seed int64) *Game {
	return &Game{
		uni:        uni,
		painter:    render.NewGridPainter(uni.Width(), uni.Height(), cellSize),
		overlay:    ui.NewOverlay(),
		timer:      core.NewFixedStep(tps),
		aliveColor: color.RGBA{A: 255},
		deadColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		lineColor:  color.RGBA{R: 204, G: 204, B: 204, A: 255},
		cellSize:   cellSize,
		seed:       seed,
	}
}

// Reset reseeds the universe and restarts the generation count.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.uni.Randomize(seed)
	g.generation = 0
	g.tickOnce = false
	g.timer.Reset()
}

// Update handles input and advances the simulation on the fixed-step cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			// Drop tick debt built up while paused so resuming does not
			// replay missed generations.
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.uni.Clear()
		g.generation = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.timer.SetTPS(g.timer.TPS() + tpsStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.timer.SetTPS(g.timer.TPS() - tpsStep)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		row, col := cellAt(px, py, g.cellSize, g.uni.Width(), g.uni.Height())
		if err := g.uni.ToggleCell(row, col); err != nil {
			return err
		}
	}

	if g.tickOnce || (!g.paused && g.timer.ShouldStep()) {
		g.uni.Tick()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.uni.Cells(), g.aliveColor, g.deadColor, g.lineColor)
	g.overlay.SetStatus(g.generation, g.timer.TPS(), g.paused)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.CanvasSize(g.uni.Width(), g.uni.Height(), g.cellSize)
}
