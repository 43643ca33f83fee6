package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFillRectCoversAtLeastOnePixel(t *testing.T) {
	c := NewScaledCanvas(16, 10, 1600, 1000)
	c.FillRect(0, 0, 20, 40, Red)

	if c.At(0, 0) != Red {
		t.Errorf("Expected a tiny rectangle to cover pixel (0, 0)")
	}
	if c.At(1, 0) != None || c.At(0, 1) != None {
		t.Errorf("Expected only one pixel set")
	}
}

func TestFillRectClipsToCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillRect(-5, -5, 100, 100, Steel)
	for y := range 10 {
		for x := range 10 {
			if c.At(x, y) != Steel {
				t.Fatalf("Expected pixel (%d, %d) filled", x, y)
			}
		}
	}
}

func TestFillCircle(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.FillCircle(10, 10, 3, Red)

	if c.At(10, 10) != Red {
		t.Errorf("Expected the center filled")
	}
	if c.At(0, 0) != None || c.At(16, 10) != None {
		t.Errorf("Expected pixels outside the radius untouched")
	}

	c.Clear()
	if c.At(10, 10) != None {
		t.Errorf("Expected Clear to reset pixels")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawLine(Point{X: 1, Y: 1}, Point{X: 8, Y: 1}, Cyan)
	for x := 1; x <= 8; x++ {
		if c.At(x, 1) != Cyan {
			t.Errorf("Expected pixel (%d, 1) on the line", x)
		}
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetFloat(0, 0, Red)
	c.SetFloat(1, 1, Red)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\033[1;1H\033[38;5;196m▀\033[1;2H▄\033[0m"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestRenderTwoColorCell(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetFloat(0, 0, White)
	c.SetFloat(0, 1, Red)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[38;5;231m\033[48;5;196m▀") {
		t.Errorf("Expected white over red, got %q", buf.String())
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		cols, rows             int
		width, height, oc, orr int
	}{
		{160, 50, 160, 50, 0, 0},
		{200, 50, 160, 50, 20, 0},
		{160, 80, 160, 50, 0, 15},
	}
	for _, tt := range tests {
		w, h, oc, orr := Fit(tt.cols, tt.rows, 1600, 1000)
		if w != tt.width || h != tt.height || oc != tt.oc || orr != tt.orr {
			t.Errorf("Fit(%d, %d): expected %dx%d+%d+%d, got %dx%d+%d+%d",
				tt.cols, tt.rows, tt.width, tt.height, tt.oc, tt.orr, w, h, oc, orr)
		}
	}
}

func TestColorRamps(t *testing.T) {
	if Gray(0) != 232 || Gray(1) != 255 || Gray(2) != 255 {
		t.Errorf("Expected gray ramp 232..255, got %d %d %d", Gray(0), Gray(1), Gray(2))
	}
	if Fire(1) != White || Fire(0.5) != Amber || Fire(0) != None {
		t.Errorf("Unexpected fire colors %d %d %d", Fire(1), Fire(0.5), Fire(0))
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)
	cw.WriteAt(1, 1, "hi")
	cw.SetColor(Red)

	if buf.Len() != 0 {
		t.Fatalf("Expected nothing written before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := "\033[2;3Hhi\033[38;5;196m"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
	if cw.Len() != 0 {
		t.Errorf("Expected empty buffer after Flush, got %d", cw.Len())
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	cw.WriteString(strings.Repeat("x", 3*maxChunkSize+7))
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() != 3*maxChunkSize+7 {
		t.Errorf("Expected all bytes written, got %d", buf.Len())
	}
}
