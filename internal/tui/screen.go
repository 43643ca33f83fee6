// Package tui renders sessions and reads keys through tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/render"
)

// keyHoldDuration is how long a key counts as held after its last event.
const keyHoldDuration = 60 * time.Millisecond

// Screen is a tcell-backed renderer and input source.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	canvas *draw.Canvas
	cols   int
	rows   int

	keys   map[key]time.Time
	quit   bool
	now    func() time.Time
	styles map[[2]draw.Color]tcell.Style
}

type key int

const (
	keyLeft key = iota
	keyRight
	keyUp
	keyDown
	keyStart
	keyRestart
)

// NewScreen initializes screen and starts reading its events.
func NewScreen(screen tcell.Screen, s config.Settings) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	sc := &Screen{
		screen: screen,
		events: make(chan tcell.Event, 100),
		canvas: draw.NewScaledCanvas(1, 1, s.FieldWidth, s.FieldHeight),
		keys:   make(map[key]time.Time),
		now:    time.Now,
		styles: make(map[[2]draw.Color]tcell.Style),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(sc.events)
				return
			}
			sc.events <- ev
		}
	}()
	return sc, nil
}

// Render draws one frame.
func (s *Screen) Render(sess *game.Session) error {
	cols, rows := s.screen.Size()
	if cols != s.cols || rows != s.rows {
		s.cols, s.rows = cols, rows
		w, h, offCol, offRow := draw.Fit(cols, rows-1, s.canvas.LogicalWidth(), s.canvas.LogicalHeight())
		s.canvas.Resize(w, h)
		s.canvas.SetOffset(offCol, offRow+1)
	}

	s.screen.Clear()
	s.canvas.Clear()
	render.Paint(s.canvas, sess)
	s.blit()

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if render.ShowHUD(sess) {
		s.puts(s.canvas.OffsetCol(), 0, render.HUD(sess), text)
	}
	centerCol := s.canvas.OffsetCol() + s.canvas.TerminalWidth()/2
	centerRow := s.canvas.OffsetRow() + s.canvas.TerminalHeight()/2
	for _, l := range render.Overlay(sess) {
		s.puts(max(centerCol-len([]rune(l.Text))/2, 0), centerRow+l.Offset, l.Text, text)
	}

	s.screen.Show()
	return nil
}

// blit copies canvas pixels to cells, two pixels per cell.
func (s *Screen) blit() {
	offCol, offRow := s.canvas.OffsetCol(), s.canvas.OffsetRow()
	for row := 0; row < s.canvas.TerminalHeight(); row++ {
		for col := 0; col < s.canvas.TerminalWidth(); col++ {
			top := s.canvas.At(col, row*2)
			bottom := s.canvas.At(col, row*2+1)
			if top == draw.None && bottom == draw.None {
				continue
			}
			s.screen.SetContent(offCol+col, offRow+row, draw.BlockUpperHalf, nil, s.style(top, bottom))
		}
	}
}

func (s *Screen) style(top, bottom draw.Color) tcell.Style {
	k := [2]draw.Color{top, bottom}
	if st, ok := s.styles[k]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
	s.styles[k] = st
	return st
}

func cellColor(c draw.Color) tcell.Color {
	if c == draw.None {
		return tcell.ColorBlack
	}
	return tcell.PaletteColor(int(c))
}

func (s *Screen) puts(col, row int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// Poll drains pending events and returns the input for this frame.
func (s *Screen) Poll() game.Input {
	now := s.now()
	for drained := false; !drained; {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.quit = true
				drained = true
				break
			}
			s.handle(ev, now)
		default:
			drained = true
		}
	}

	held := func(k key) bool { return now.Sub(s.keys[k]) < keyHoldDuration }
	return game.Input{
		Left:    held(keyLeft),
		Right:   held(keyRight),
		Up:      held(keyUp),
		Down:    held(keyDown),
		Start:   held(keyStart),
		Restart: held(keyRestart),
		Quit:    s.quit,
	}
}

func (s *Screen) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			s.keys[keyLeft] = now
		case tcell.KeyRight:
			s.keys[keyRight] = now
		case tcell.KeyUp:
			s.keys[keyUp] = now
		case tcell.KeyDown:
			s.keys[keyDown] = now
		case tcell.KeyEnter:
			s.keys[keyStart] = now
		case tcell.KeyEscape, tcell.KeyCtrlC:
			s.quit = true
		case tcell.KeyRune:
			s.handleRune(ev.Rune(), now)
		}
	}
}

func (s *Screen) handleRune(r rune, now time.Time) {
	switch r {
	case 'a', 'A', 'h':
		s.keys[keyLeft] = now
	case 'd', 'D', 'l':
		s.keys[keyRight] = now
	case 'w', 'W', 'k':
		s.keys[keyUp] = now
	case 's', 'S', 'j':
		s.keys[keyDown] = now
	case ' ':
		s.keys[keyStart] = now
	case 'r', 'R':
		s.keys[keyRestart] = now
	case 'q', 'Q':
		s.quit = true
	}
}

// Close restores the terminal.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}
