package config

import "time"

// Logical resolution - game objects use these dimensions.
// Actual rendering scales to fit the terminal size.
// Height is in sub-pixels (half-blocks), so 80 means 40 terminal rows.
const (
	ScreenWidth  = 120
	ScreenHeight = 80
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Ship
const (
	ShipThrustPower   = 40.0 // Acceleration units per second²
	ShipReversePower  = 20.0 // Reverse acceleration units per second²
	ShipRotationSpeed = 5.0  // Radians per second
	ShipMaxSpeed      = 25.0
	ShipDrag          = 0.5 // Fraction of speed kept per second when coasting
	ShipSize          = 2.0
	ShipFireRate      = 0.15 // Minimum seconds between volleys
)

// Spread / power-ups
const (
	MaxSpreadLevel    = 7   // Spread level cap; shield drops arrive at the cap
	PowerUpKillCount  = 5   // Asteroids destroyed between power-up drops
	PowerUpRadius     = 1.5 // Pickup circle radius
	ShieldRadiusScale = 1.6 // Shield ring radius as a multiple of ship size
)

// Shield / damage
const (
	InitialLives           = 3
	SpawnProtectionSeconds = 3.0 // Invulnerability after (re)spawn
	ShieldBreakProtection  = 1.7 // Vulnerability window after a shield absorbs a hit
	ShipBlinkFrequency     = 10.0
)

// Asteroids
const (
	AsteroidWaveTarget    = 30  // Weighted population per wave (large=4, medium=2, small=1)
	AsteroidRespawnDelay  = 1.7 // Seconds between clearing the field and the next wave
	AsteroidSpawnProtect  = 1.0 // Seconds of spawn protection for wave asteroids
	AsteroidBlinkFreq     = 5.0
	CollisionGridCellSize = 10.0 // Must cover two large asteroid radii (5.0 + 5.0)
)

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Background
const (
	StarCount = 200
)

// Environment variables
const (
	EnvLogFile = "GAME_LOG"
	EnvMute    = "GAME_MUTE"
)
