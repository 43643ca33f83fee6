// Package render draws game sessions to ANSI terminals.
package render

import (
	"fmt"
	"io"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/game"
)

// hudRows is the number of terminal rows reserved above the play field.
const hudRows = 1

// Terminal renders a session with half-block graphics and a text HUD.
type Terminal struct {
	out      *draw.ChunkWriter
	sizeFunc draw.TermSizeFunc
	canvas   *draw.Canvas
	cols     int
	rows     int
}

// NewTerminal creates a renderer writing to w. sizeFunc reports the
// terminal size before every frame; nil uses the process terminal.
func NewTerminal(w io.Writer, sizeFunc draw.TermSizeFunc, s config.Settings) *Terminal {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	return &Terminal{
		out:      draw.NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
		canvas:   draw.NewScaledCanvas(1, 1, s.FieldWidth, s.FieldHeight),
	}
}

// Render draws one frame.
func (t *Terminal) Render(sess *game.Session) error {
	cols, rows, err := t.sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if cols != t.cols || rows != t.rows {
		t.resize(cols, rows)
	}

	t.out.WriteString("\033[?25l")
	t.out.ClearScreen()

	t.canvas.Clear()
	Paint(t.canvas, sess)
	if err := t.canvas.Render(t.out); err != nil {
		return err
	}
	if err := t.canvas.RenderBorder(t.out); err != nil {
		return err
	}
	t.drawOverlay(sess)

	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close restores the cursor and clears the screen.
func (t *Terminal) Close() error {
	t.out.ClearScreen()
	t.out.WriteString("\033[0m\033[?25h")
	return t.out.Flush()
}

func (t *Terminal) resize(cols, rows int) {
	t.cols, t.rows = cols, rows
	// Leave room for the HUD and the border.
	w, h, offCol, offRow := draw.Fit(cols-2, rows-hudRows-2, t.canvas.LogicalWidth(), t.canvas.LogicalHeight())
	t.canvas.Resize(w, h)
	t.canvas.SetOffset(offCol+1, offRow+hudRows+1)
}

func (t *Terminal) drawOverlay(sess *game.Session) {
	centerCol := t.canvas.OffsetCol() + t.canvas.TerminalWidth()/2
	centerRow := t.canvas.OffsetRow() + t.canvas.TerminalHeight()/2

	t.out.SetColor(draw.White)
	if ShowHUD(sess) {
		t.out.WriteAt(t.canvas.OffsetCol()+1, 1, HUD(sess))
	}
	for _, l := range Overlay(sess) {
		t.out.WriteAt(max(centerCol-len([]rune(l.Text))/2, 1), centerRow+l.Offset, l.Text)
	}
	t.out.SetColor(draw.None)
}
