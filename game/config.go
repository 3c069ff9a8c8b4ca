package game

import (
	"image/color"
	"time"
)

// Config holds all gameplay tuning. It is built once at startup and passed
// by pointer into the session, AI and renderer; nothing mutates it.
type Config struct {
	// Screen dimensions in pixels. The playfield covers the whole screen.
	ScreenWidth  int
	ScreenHeight int

	// TPS is the simulation tick rate.
	TPS int

	// MaxDeltaTime caps the measured frame delta so a dragged or hidden
	// window cannot produce one huge simulation step.
	MaxDeltaTime float64

	// Entity sizes and speeds. Speeds are displacement per tick, not per
	// second, so they are tied to the tick rate.
	PlayerRadius float64
	BotRadius    float64
	BulletRadius float64
	PlayerSpeed  float64
	BotSpeed     float64
	BulletSpeed  float64

	MaxHealth float64

	// Firing.
	FireCooldown  time.Duration // player reload time
	BotFireChance float64       // per-tick fire probability per bot

	// Damage a bullet deals when it hits the player vs. a bot.
	PlayerBulletDamage float64
	BotBulletDamage    float64

	// BulletBoundsMargin is how far past the playfield edge a bullet may
	// travel before it is discarded.
	BulletBoundsMargin float64

	// Bot population.
	MaxBots        int
	BotSpawnMargin float64 // width of the edge band bots spawn in

	// Bot AI.
	RetargetInterval   time.Duration
	TargetPlayerChance float64
	MoveJitter         float64
	ReplenishChance    float64 // per-tick chance to spawn a replacement bot

	// Safe zone.
	ZoneGracePeriod   time.Duration
	ZoneShrinkFor     time.Duration
	InitialZoneRadius float64
	FinalZoneRadius   float64
	// OutsideDamage is HP lost per second while outside the zone.
	OutsideDamage float64

	// Palette.
	BackgroundColor color.RGBA
	PlayerColor     color.RGBA
	BotColor        color.RGBA
	BulletColor     color.RGBA
	ZoneColor       color.RGBA
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() *Config {
	const (
		screenWidth  = 900
		screenHeight = 600
	)
	initialZone := screenHeight * 0.45 // min(width, height) * 0.45
	if screenWidth < screenHeight {
		initialZone = screenWidth * 0.45
	}
	return &Config{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,

		TPS:          30,
		MaxDeltaTime: 0.1,

		PlayerRadius: 10,
		BotRadius:    10,
		BulletRadius: 3,
		PlayerSpeed:  5,
		BotSpeed:     3,
		BulletSpeed:  12,

		MaxHealth: 100,

		FireCooldown:  350 * time.Millisecond,
		BotFireChance: 0.008,

		PlayerBulletDamage: 18,
		BotBulletDamage:    22,

		BulletBoundsMargin: 50,

		MaxBots:        10,
		BotSpawnMargin: 60,

		RetargetInterval:   1200 * time.Millisecond,
		TargetPlayerChance: 0.7,
		MoveJitter:         0.2,
		ReplenishChance:    0.02,

		ZoneGracePeriod:   8 * time.Second,
		ZoneShrinkFor:     60 * time.Second,
		InitialZoneRadius: initialZone,
		FinalZoneRadius:   60,
		OutsideDamage:     0.6,

		BackgroundColor: color.RGBA{144, 238, 144, 255}, // light green
		PlayerColor:     color.RGBA{30, 144, 255, 255},  // dodger blue
		BotColor:        color.RGBA{255, 165, 0, 255},   // orange
		BulletColor:     color.RGBA{0, 0, 0, 255},
		ZoneColor:       color.RGBA{255, 0, 0, 255},
	}
}

// Bounds returns the playfield extents as floats.
func (c *Config) Bounds() (width, height float64) {
	return float64(c.ScreenWidth), float64(c.ScreenHeight)
}
