package game

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"asteroids/internal/audio"
	"asteroids/internal/config"
	"asteroids/internal/draw"
	"asteroids/internal/input"
	"asteroids/internal/object"
)

// Options configures a game session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to querying os.Stdout
	Sound        *audio.Player     // Defaults to a silent player
	Logger       *log.Logger       // Defaults to discarding
}

// Run starts the main game loop with the standard input → update → draw
// cycle. Blocks until the player quits or the writer fails.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewPlayer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := object.NewScreen(config.ScreenWidth, config.ScreenHeight)
	state := NewState(screen, sound, logger)
	state.stream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, config.ScreenWidth, config.ScreenHeight)
	cw := draw.NewChunkWriter(w)

	logger.Info("session started", "term_width", termWidth, "term_height", termHeight)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		state.Input = input.Read(state.stream)
		if state.Input.Quit {
			state.Running = false
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := termSizeFunc(); err == nil {
			canvas.Resize(tw, th)
		}

		switch state.GameState {
		case GameStateStart:
			updateStartState(state)
		case GameStatePlaying:
			if err := updatePlayingState(state); err != nil {
				return err
			}
		case GameStateDead:
			updateDeadState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	logger.Info("session ended", "score", state.Score)

	draw.ClearScreen(w)
	return nil
}

// updatePlayingState advances one frame of active gameplay.
func updatePlayingState(state *State) error {
	if state.InvincibleTime > 0 {
		state.InvincibleTime -= state.Delta.Seconds()
		if state.InvincibleTime < 0 {
			state.InvincibleTime = 0
		}
	}

	if err := updateObjects(state); err != nil {
		return err
	}

	if state.shotFired {
		state.shotFired = false
		state.sound.FireShot()
	}

	checkCollisions(state)
	return nil
}

// updateObjects updates all objects and removes any that request removal.
func updateObjects(state *State) error {
	ctx := state.UpdateContext()

	kept := state.Objects[:0] // Reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	state.FlushSpawned()
	return nil
}

// drawFrame clears the screen, draws all objects to the canvas, renders
// the canvas, and lays the HUD on top. Everything is accumulated in the
// chunk writer and flushed as one burst.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	cw.WriteString("\033[H\033[2J")
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: cw,
	}

	for _, obj := range state.Objects {
		// Blink the ship while it is invulnerable
		if obj == state.Ship && state.Ship != nil &&
			!object.ShouldRenderBlink(state.InvincibleTime, config.ShipBlinkFrequency) {
			continue
		}
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(cw)

	// UI overlay goes after the canvas so it stays on top
	drawUI(state, cw, canvas)

	return cw.Flush()
}
