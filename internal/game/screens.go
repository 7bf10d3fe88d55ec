package game

import (
	"fmt"
	"strings"

	"asteroids/internal/config"
	"asteroids/internal/draw"
	"asteroids/internal/input"
	"asteroids/internal/object"
)

// updateStartState handles the title screen.
func updateStartState(state *State) {
	if state.Input.Fire {
		startGame(state)
	}
}

// updateDeadState keeps explosion particles and frozen asteroids on screen
// and waits for the respawn/restart key.
func updateDeadState(state *State) {
	ctx := state.UpdateContext()
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		switch obj.(type) {
		case *object.Particle, *object.Starfield:
			remove, _ := obj.Update(ctx)
			if remove {
				object.ReleaseObject(obj)
				continue
			}
			kept = append(kept, obj)
		case *object.Projectile:
			// In-flight shots vanish with the ship
		default:
			kept = append(kept, obj) // Keep asteroids and power-ups visible but frozen
		}
	}
	state.Objects = kept
	state.FlushSpawned()

	if state.Input.Fire {
		startGame(state)
	}
}

// startGame initializes a new game or respawns the ship.
func startGame(state *State) {
	input.Reset(state.stream)

	if state.GameState == GameStateStart || state.Lives <= 0 {
		// Full restart
		state.Objects = state.Objects[:0]
		state.toSpawn = state.toSpawn[:0]
		state.Score = 0
		state.Lives = config.InitialLives
		state.Kills = 0
		state.powerUp = nil

		state.AddObject(object.NewStarfield(config.StarCount, state.Screen))
		state.AddObject(object.NewAsteroidSpawner(config.AsteroidWaveTarget))
		state.logger.Info("new game")
	} else {
		// Respawn: keep the field, drop leftover particles
		kept := state.Objects[:0]
		for _, obj := range state.Objects {
			if _, isParticle := obj.(*object.Particle); isParticle {
				object.ReleaseObject(obj)
				continue
			}
			kept = append(kept, obj)
		}
		state.Objects = kept
		state.logger.Info("respawn", "lives", state.Lives)
	}

	// Fresh ship at the center; spread always starts at zero
	ship := object.NewShip(float64(state.Screen.CenterX), float64(state.Screen.CenterY))
	state.Ship = ship
	state.AddObject(ship)

	state.InvincibleTime = config.SpawnProtectionSeconds
	state.GameState = GameStatePlaying
	state.sound.StartAmbient()
}

// drawUI draws the overlay for the current game state.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.GameState {
	case GameStateStart:
		drawStartScreen(cw, centerX, centerY)
	case GameStatePlaying:
		drawPlayingHUD(state, cw, termWidth)
	case GameStateDead:
		drawDeadScreen(state, cw, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "A S T E R O I D S"
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	subtitle := "Press SPACE to Start"
	cw.WriteAt(centerX-len(subtitle)/2, centerY, subtitle)

	controls := "W/Up thrust · S/Down reverse · A/D or Arrows turn · SPACE shoot · ESC quit"
	cw.WriteAt(centerX-visibleLen(controls)/2, centerY+3, controls)

	hint := "Destroy 5 asteroids to earn a power-up: more spread, then a shield"
	cw.WriteAt(centerX-len(hint)/2, centerY+5, hint)
}

// drawPlayingHUD draws the in-game HUD: score, lives, spread meter, shield.
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, termWidth int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", state.Score))

	livesText := fmt.Sprintf("Lives: %d", state.Lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	if state.Ship == nil {
		return
	}

	spread := fmt.Sprintf("Spread: %s%s",
		strings.Repeat("▮", state.Ship.SpreadLevel),
		strings.Repeat("▯", config.MaxSpreadLevel-state.Ship.SpreadLevel))
	cw.WriteAt(2, 2, spread)

	if state.Ship.Shielded {
		cw.WriteAt(2, 3, "[SHIELD]")
	}
}

// drawDeadScreen draws the death/game-over screen.
func drawDeadScreen(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	var title string
	if state.Lives > 0 {
		title = "SHIP DESTROYED"
	} else {
		title = "GAME OVER"
	}
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	scoreText := fmt.Sprintf("Score: %d", state.Score)
	cw.WriteAt(centerX-len(scoreText)/2, centerY, scoreText)

	var prompt string
	if state.Lives > 0 {
		prompt = fmt.Sprintf("Lives remaining: %d - Press SPACE to continue", state.Lives)
	} else {
		prompt = "Press SPACE to Restart"
	}
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}

// visibleLen counts runes rather than bytes, for centering strings that
// contain multi-byte glyphs.
func visibleLen(s string) int {
	return len([]rune(s))
}
