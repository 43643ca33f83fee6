package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func testStream(now *time.Time) *Stream {
	s := newStream()
	s.now = func() time.Time { return *now }
	return s
}

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(Input) bool
	}{
		{"left arrow", "\x1b[D", func(in Input) bool { return in.Left && !in.Right }},
		{"right arrow", "\x1b[C", func(in Input) bool { return in.Right }},
		{"up arrow", "\x1b[A", func(in Input) bool { return in.Up }},
		{"down arrow", "\x1b[B", func(in Input) bool { return in.Down }},
		{"wasd", "wa", func(in Input) bool { return in.Up && in.Left && !in.Down }},
		{"space starts", " ", func(in Input) bool { return in.Start && !in.Restart }},
		{"enter starts", "\r", func(in Input) bool { return in.Start }},
		{"r restarts", "R", func(in Input) bool { return in.Restart && !in.Start }},
		{"q quits", "q", func(in Input) bool { return in.Quit }},
		{"ctrl-c quits", "\x03", func(in Input) bool { return in.Quit }},
		{"unknown key", "z", func(in Input) bool { return !in.Quit && !in.Left && !in.Start }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Unix(1000, 0)
			s := testStream(&now)
			feed(s, tt.data)
			in := ReadInput(s)
			if !tt.check(in) {
				t.Errorf("Unexpected input %+v for %q", in, tt.data)
			}
			if string(in.Pressed) != tt.data {
				t.Errorf("Expected pressed %q, got %q", tt.data, in.Pressed)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	now := time.Unix(1000, 0)
	s := testStream(&now)
	feed(s, "d")

	if !ReadInput(s).Right {
		t.Fatalf("Expected right on the frame it was pressed")
	}
	now = now.Add(keyHoldDuration / 2)
	if !ReadInput(s).Right {
		t.Errorf("Expected right still held")
	}
	now = now.Add(keyHoldDuration)
	if ReadInput(s).Right {
		t.Errorf("Expected right released after the hold duration")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	now := time.Unix(1000, 0)
	s := testStream(&now)
	close(s.ch)
	if !ReadInput(s).Quit {
		t.Errorf("Expected quit once the reader is exhausted")
	}
}

func TestSourcePoll(t *testing.T) {
	src := NewSource(strings.NewReader(" "))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in := src.Poll()
		if in.Start {
			return
		}
		if in.Quit {
			t.Fatalf("Expected start before the reader closed")
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("Expected start input from the source")
}

func TestStartStreamReadsBytes(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("ab")))
	var got []byte
	for b := range s.ch {
		got = append(got, b)
	}
	if string(got) != "ab" {
		t.Errorf("Expected \"ab\", got %q", got)
	}
}
