package term

import (
	"fmt"
	"time"

	"torus-life/pkg/universe"

	"github.com/gdamore/tcell/v2"
)

// cellSpan is the number of terminal columns drawn per grid cell; two columns
// make cells roughly square in most fonts.
const cellSpan = 2

const (
	minDelay = 10 * time.Millisecond
	maxDelay = 2 * time.Second
)

// Loop drives a Universe in the terminal: it ticks on a timer, redraws after
// every mutation, and maps key and mouse events onto the engine API.
type Loop struct {
	uni    *universe.Universe
	screen tcell.Screen

	delay      time.Duration
	paused     bool
	seed       int64
	generation int

	lastButtons tcell.ButtonMask
}

// NewLoop initializes a tcell screen for the provided universe. The tick
// delay derives from tps; values below one fall back to ten per second.
func NewLoop(uni *universe.Universe, tps int, seed int64) (*Loop, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.Clear()
	if tps < 1 {
		tps = 10
	}
	return &Loop{uni: uni, screen: screen, delay: time.Second / time.Duration(tps), seed: seed}, nil
}

// Run blocks until the user quits, restoring the terminal on the way out.
func (l *Loop) Run() error {
	defer l.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(l.delay)
	defer ticker.Stop()

	l.draw()
	for {
		select {
		case <-ticker.C:
			if l.paused {
				continue
			}
			l.uni.Tick()
			l.generation++
			l.draw()
		case ev := <-events:
			if done := l.handle(ev, ticker); done {
				return nil
			}
			l.draw()
		}
	}
}

// handle applies a single event and reports whether the loop should exit.
func (l *Loop) handle(ev tcell.Event, ticker *time.Ticker) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ':
			l.paused = !l.paused
		case ev.Rune() == 'n':
			if l.paused {
				l.uni.Tick()
				l.generation++
			}
		case ev.Rune() == 'c':
			l.uni.Clear()
			l.generation = 0
		case ev.Rune() == 'r':
			l.uni.Randomize(l.seed)
			l.generation = 0
		case ev.Rune() == 's':
			l.seed = time.Now().UnixNano()
			l.uni.Randomize(l.seed)
			l.generation = 0
		case ev.Rune() == '+' || ev.Rune() == '=':
			l.setDelay(l.delay*2/3, ticker)
		case ev.Rune() == '-':
			l.setDelay(l.delay*3/2, ticker)
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && l.lastButtons&tcell.Button1 == 0
		l.lastButtons = buttons
		if pressed {
			x, y := ev.Position()
			row, col := l.cellAt(x, y)
			// Coordinates are pre-clamped, so ToggleCell cannot fail here.
			_ = l.uni.ToggleCell(row, col)
		}
	}
	return false
}

func (l *Loop) setDelay(d time.Duration, ticker *time.Ticker) {
	if d < minDelay {
		d = minDelay
	}
	if d > maxDelay {
		d = maxDelay
	}
	l.delay = d
	ticker.Reset(d)
}

// cellAt converts screen coordinates to grid coordinates, clamped to range.
func (l *Loop) cellAt(x, y int) (row, col int) {
	col = x / cellSpan
	row = y
	if col < 0 {
		col = 0
	}
	if col > l.uni.Width()-1 {
		col = l.uni.Width() - 1
	}
	if row < 0 {
		row = 0
	}
	if row > l.uni.Height()-1 {
		row = l.uni.Height() - 1
	}
	return row, col
}

func (l *Loop) draw() {
	aliveStyle := tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle := tcell.StyleDefault.Background(tcell.ColorBlack)

	cells := l.uni.Cells()
	w, h := l.uni.Width(), l.uni.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			style := deadStyle
			if cells[row*w+col] != universe.Dead {
				style = aliveStyle
			}
			l.screen.SetContent(col*cellSpan, row, ' ', nil, style)
			l.screen.SetContent(col*cellSpan+1, row, ' ', nil, style)
		}
	}

	state := "running"
	if l.paused {
		state = "paused"
	}
	status := fmt.Sprintf("%-60s", fmt.Sprintf("gen %d  delay %s  %s  (q quits)", l.generation, l.delay, state))
	for i, r := range status {
		l.screen.SetContent(i, h, r, nil, tcell.StyleDefault)
	}
	l.screen.Show()
}
