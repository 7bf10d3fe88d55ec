// Package game runs the main loop and owns the game state machine.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"asteroids/internal/audio"
	"asteroids/internal/config"
	"asteroids/internal/input"
	"asteroids/internal/object"
	"asteroids/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Ship destroyed, show respawn/game-over prompt
)

// State holds all game state for a session.
type State struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after the current update cycle
	Screen  object.Screen
	Delta   time.Duration
	Input   object.Input

	GameState      GameState
	Ship           *object.Ship
	Score          int
	Lives          int
	InvincibleTime float64 // Remaining invulnerability in seconds
	Kills          int     // Asteroids destroyed since the last power-up drop
	Running        bool

	powerUp   *object.PowerUp // Active power-up; at most one at a time
	shotFired bool            // A volley was fired this frame (for sound)

	stream *input.Stream
	sound  *audio.Player
	logger *log.Logger

	// Reusable caches for the collision phase
	projectileCache []*object.Projectile
	asteroidCache   []*object.Asteroid
	asteroidGrid    *physics.SpatialGrid
}

// NewState creates an initialized game state for the given screen.
func NewState(screen object.Screen, sound *audio.Player, logger *log.Logger) *State {
	worldW := float64(screen.Width)
	worldH := float64(screen.Height)

	return &State{
		Objects:      []object.Object{},
		Screen:       screen,
		GameState:    GameStateStart,
		Lives:        config.InitialLives,
		Running:      true,
		sound:        sound,
		logger:       logger,
		asteroidGrid: physics.NewSpatialGrid(worldW, worldH, config.CollisionGridCellSize),
	}
}

// AddObject adds an object to the game world immediately.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	if _, ok := obj.(*object.Projectile); ok {
		s.shotFired = true
	}
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the world and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext builds an UpdateContext for the current frame.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Input:   s.Input,
		Screen:  s.Screen,
		Spawner: s,
		Objects: s.Objects,
	}
}
