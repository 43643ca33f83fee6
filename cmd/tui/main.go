package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/missiles/internal/audio"
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/loop"
	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.FromEnv()

	out, closeLog, err := config.LogOutput()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := config.NewLogger(out, "tui")

	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	screen, err := tui.NewScreen(ts, settings)
	if err != nil {
		return err
	}
	defer screen.Close()

	var cues loop.AudioCue = audio.Nop{}
	if spk, err := audio.NewSpeaker(audio.DefaultSampleRate); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		defer spk.Close()
		cues = spk
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := game.NewSession(settings, object.NewRand(time.Now().UnixNano()))
	err = loop.Run(ctx, sess, loop.Options{
		Renderer: screen,
		Audio:    cues,
		Input:    screen,
		Logger:   logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
