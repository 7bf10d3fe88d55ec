package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"asteroids/internal/audio"
	"asteroids/internal/config"
	"asteroids/internal/game"
)

func main() {
	logger, closeLog := newLogger()
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	sound := audio.NewPlayer()
	if !config.GetEnvBool(config.EnvMute) {
		if err := sound.Init(); err != nil {
			// No audio device is fine; play silent
			logger.Warn("audio unavailable", "err", err)
		}
	}
	defer sound.Close()

	reader := bufio.NewReader(os.Stdin)
	err = game.Run(reader, os.Stdout, game.Options{
		Sound:  sound,
		Logger: logger,
	})

	_ = term.Restore(fd, oldState)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger. The terminal is owned by the
// renderer, so logs only go to a file, and only when GAME_LOG names one.
func newLogger() (*log.Logger, func()) {
	path := config.GetEnv(config.EnvLogFile, "")
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }
}
