package game

import (
	"time"

	"github.com/google/uuid"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetEntity
	targetPoint
)

// TargetRef is what a bot is currently steering toward: a tracked entity
// (held by ID and resolved through the session each tick, so a dead or
// unknown entity can never dangle) or a fixed wander point.
type TargetRef struct {
	kind  targetKind
	id    uuid.UUID
	point Vec2
}

// TrackEntity returns a reference that follows the entity with the given ID.
func TrackEntity(id uuid.UUID) TargetRef {
	return TargetRef{kind: targetEntity, id: id}
}

// WanderPoint returns a reference to a fixed point on the field.
func WanderPoint(p Vec2) TargetRef {
	return TargetRef{kind: targetPoint, point: p}
}

// IsSet reports whether the reference points at anything.
func (t TargetRef) IsSet() bool {
	return t.kind != targetNone
}

// BotMind is the per-bot AI state, kept parallel to the session's bot list.
type BotMind struct {
	Target       TargetRef
	LastRetarget time.Time
}

// maybeRetarget re-evaluates the target once per retarget interval, or
// immediately when none is set. With the configured probability the bot
// tracks the player (if alive); otherwise it picks a uniform random wander
// point. A tracked entity dying mid-interval does not trigger an early
// retarget; the next periodic check picks up the slack.
func (m *BotMind) maybeRetarget(s *Session, now time.Time) {
	if now.Sub(m.LastRetarget) <= s.cfg.RetargetInterval && m.Target.IsSet() {
		return
	}
	m.LastRetarget = now
	if s.rng.Float64() < s.cfg.TargetPlayerChance && s.Player.Alive {
		m.Target = TrackEntity(s.Player.ID)
		return
	}
	w, h := s.cfg.Bounds()
	m.Target = WanderPoint(Vec2{s.rng.Float64() * w, s.rng.Float64() * h})
}

// RetargetNearest is the explicit retarget entry point: track the player if
// alive, otherwise the nearest living bot other than self (first encountered
// wins distance ties), otherwise clear the target.
func (m *BotMind) RetargetNearest(s *Session, self *Entity) {
	if s.Player.Alive {
		m.Target = TrackEntity(s.Player.ID)
		return
	}
	var nearest *Entity
	var best float64
	for _, b := range s.Bots {
		if !b.Alive || b.ID == self.ID {
			continue
		}
		d := Dist(self.Pos, b.Pos)
		if nearest == nil || d < best {
			nearest = b
			best = d
		}
	}
	if nearest == nil {
		m.Target = TargetRef{}
		return
	}
	m.Target = TrackEntity(nearest.ID)
}

// resolveTarget turns the current reference into a position. A tracked
// entity resolves to its live (or corpse) position; an unknown ID or unset
// reference resolves to nothing.
func (m *BotMind) resolveTarget(s *Session) (Vec2, bool) {
	switch m.Target.kind {
	case targetEntity:
		if e := s.entityByID(m.Target.id); e != nil {
			return e.Pos, true
		}
		return Vec2{}, false
	case targetPoint:
		return m.Target.point, true
	default:
		return Vec2{}, false
	}
}

// Step runs one AI tick for bot: retarget if due, then move toward the
// target with per-axis jitter, clamped to the playfield.
func (m *BotMind) Step(s *Session, bot *Entity, now time.Time) {
	m.maybeRetarget(s, now)
	target, ok := m.resolveTarget(s)
	if !ok {
		return
	}
	dir := Normalize(Vec2{target.X - bot.Pos.X, target.Y - bot.Pos.Y})
	j := s.cfg.MoveJitter
	bot.Pos.X += dir.X*bot.Speed + uniform(s.rng, -j, j)
	bot.Pos.Y += dir.Y*bot.Speed + uniform(s.rng, -j, j)
	w, h := s.cfg.Bounds()
	bot.Pos = clampToBounds(bot.Pos, w, h)
}

// TryFire rolls the per-tick fire chance and, on success, shoots at the
// player's current position (no leading). Bots have no reload timer; the
// probability is the only rate limit.
func (m *BotMind) TryFire(s *Session, bot *Entity, now time.Time) *Bullet {
	if !bot.Alive || !s.Player.Alive {
		return nil
	}
	if s.rng.Float64() >= s.cfg.BotFireChance {
		return nil
	}
	bot.LastFire = now
	return newBullet(s.cfg, bot, s.Player.Pos)
}
