package web

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/missiles/internal/game"
)

const writeTimeout = time.Second

// wireInput is the key state a browser sends whenever it changes.
type wireInput struct {
	Left    bool `json:"left"`
	Right   bool `json:"right"`
	Up      bool `json:"up"`
	Down    bool `json:"down"`
	Start   bool `json:"start"`
	Restart bool `json:"restart"`
	Quit    bool `json:"quit"`
}

// player bridges one websocket connection to the frame loop. It is the
// session's input source, audio sink and renderer at once.
type player struct {
	conn   *websocket.Conn
	logger *log.Logger

	mu      sync.Mutex
	held    wireInput
	start   bool // Latched until the next poll so short taps are not lost
	restart bool
	quit    bool

	cues []game.Cue // Only touched by the loop goroutine
}

func newPlayer(conn *websocket.Conn, logger *log.Logger) *player {
	return &player{conn: conn, logger: logger}
}

// readLoop applies incoming key states until the connection fails.
func (p *player) readLoop() {
	for {
		_, msg, err := p.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				p.logger.Debug("read failed", "err", err)
			}
			return
		}
		var in wireInput
		if err := json.Unmarshal(msg, &in); err != nil {
			p.logger.Debug("bad input message", "err", err)
			continue
		}
		p.mu.Lock()
		p.held = in
		p.start = p.start || in.Start
		p.restart = p.restart || in.Restart
		p.quit = p.quit || in.Quit
		p.mu.Unlock()
	}
}

// Poll returns the latest key state.
func (p *player) Poll() game.Input {
	p.mu.Lock()
	defer p.mu.Unlock()
	in := game.Input{
		Left:    p.held.Left,
		Right:   p.held.Right,
		Up:      p.held.Up,
		Down:    p.held.Down,
		Start:   p.start,
		Restart: p.restart,
		Quit:    p.quit,
	}
	p.start, p.restart = false, false
	return in
}

// Play queues a cue for the next snapshot.
func (p *player) Play(cue game.Cue) error {
	p.cues = append(p.cues, cue)
	return nil
}

// Render sends the session snapshot with the cues of this frame.
func (p *player) Render(sess *game.Session) error {
	snap := sess.Snapshot().WithCues(p.cues)
	p.cues = p.cues[:0]

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := p.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}
	if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("send snapshot: %w", err)
	}
	return nil
}
