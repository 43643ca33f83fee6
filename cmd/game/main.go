package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/missiles/internal/audio"
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/input"
	"github.com/tomz197/missiles/internal/loop"
	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
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
	logger := config.NewLogger(out, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	var cues loop.AudioCue = audio.Nop{}
	if spk, err := audio.NewSpeaker(audio.DefaultSampleRate); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		defer spk.Close()
		cues = spk
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen := render.NewTerminal(os.Stdout, nil, settings)
	defer screen.Close()

	sess := game.NewSession(settings, object.NewRand(time.Now().UnixNano()))
	err = loop.Run(ctx, sess, loop.Options{
		Renderer: screen,
		Audio:    cues,
		Input:    input.NewSource(os.Stdin),
		Logger:   logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
