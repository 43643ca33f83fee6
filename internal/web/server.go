// Package web serves the browser frontend and plays one session per
// websocket connection.
package web

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/loop"
	"github.com/tomz197/missiles/internal/object"
)

//go:embed static/index.html
var static embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type server struct {
	settings config.Settings
	logger   *log.Logger
	newClock func(fps int) loop.Clock
}

// NewRouter returns the HTTP handler: the game page at "/", the play
// socket at "/ws" and a health check at "/healthz".
func NewRouter(settings config.Settings, logger *log.Logger) http.Handler {
	s := &server{
		settings: settings,
		logger:   logger,
		newClock: func(fps int) loop.Clock { return loop.NewFixedClock(fps) },
	}
	return s.routes()
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/ws", s.handlePlay)
	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handlePlay upgrades the connection and runs a session until the player
// quits or disconnects.
func (s *server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.Close()

	id := uuid.New().String()
	logger := s.logger.With("session", id)
	logger.Info("player connected", "remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	p := newPlayer(conn, logger)
	go func() {
		p.readLoop()
		cancel()
	}()

	sess := game.NewSession(s.settings, object.NewRand(time.Now().UnixNano()))
	err = loop.Run(ctx, sess, loop.Options{
		Renderer: p,
		Audio:    p,
		Input:    p,
		Clock:    s.newClock(s.settings.TargetFPS),
		Logger:   logger,
	})
	if err != nil && ctx.Err() == nil {
		logger.Error("session failed", "err", err)
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
	logger.Info("player disconnected", "score", sess.Progress.Score, "level", sess.Progress.Level)
}

// requestLogger logs each request through the structured logger.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
