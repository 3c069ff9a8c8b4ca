package game

import (
	"image/color"
	"time"

	"github.com/google/uuid"
)

// EntityKind selects who controls a combatant.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindBot
)

// Entity is a combatant on the field, either the player or a bot. Dead
// entities stay in their collection (rendered as corpses) so population
// counts and iteration order remain stable for the whole match.
type Entity struct {
	ID     uuid.UUID
	Kind   EntityKind
	Pos    Vec2
	Radius float64
	Color  color.RGBA
	Speed  float64 // displacement per tick

	Health float64
	Alive  bool

	// LastFire is when this entity last fired. It gates the player's
	// cooldown; bots record it but fire on probability alone.
	LastFire time.Time
}

// NewPlayer creates the player entity centered on the playfield.
func NewPlayer(cfg *Config) *Entity {
	w, h := cfg.Bounds()
	return &Entity{
		ID:     uuid.New(),
		Kind:   KindPlayer,
		Pos:    Vec2{w / 2, h / 2},
		Radius: cfg.PlayerRadius,
		Color:  cfg.PlayerColor,
		Speed:  cfg.PlayerSpeed,
		Health: cfg.MaxHealth,
		Alive:  true,
	}
}

// NewBot creates a bot entity at the given position.
func NewBot(cfg *Config, pos Vec2) *Entity {
	return &Entity{
		ID:     uuid.New(),
		Kind:   KindBot,
		Pos:    pos,
		Radius: cfg.BotRadius,
		Color:  cfg.BotColor,
		Speed:  cfg.BotSpeed,
		Health: cfg.MaxHealth,
		Alive:  true,
	}
}

// Hit applies damage. Death is sticky: once Alive goes false it never goes
// back, and hitting a corpse changes nothing.
func (e *Entity) Hit(damage float64) {
	if !e.Alive {
		return
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Alive = false
	}
}

// CanFire reports whether the player-style cooldown has elapsed.
func (e *Entity) CanFire(now time.Time, cooldown time.Duration) bool {
	return now.Sub(e.LastFire) >= cooldown
}

// Fire spawns a bullet toward target, or returns nil if the entity is dead
// or still reloading. The bullet starts just outside the entity's edge so
// it cannot collide with its own shooter on the spawn tick. A rejected
// request does not touch the cooldown timer.
func (e *Entity) Fire(cfg *Config, target Vec2, now time.Time) *Bullet {
	if !e.Alive || !e.CanFire(now, cfg.FireCooldown) {
		return nil
	}
	e.LastFire = now
	return newBullet(cfg, e, target)
}
