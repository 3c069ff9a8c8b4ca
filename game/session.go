package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Session owns all state for one match: the player, the bot population
// (dead bots included), the live bullets and the zone clock. Nothing else
// aliases the entities it holds.
type Session struct {
	cfg *Config

	Player  *Entity
	Bots    []*Entity
	minds   []*BotMind // parallel to Bots
	Bullets []*Bullet
	Zone    Zone

	StartTime time.Time
	EndTime   time.Time
	Paused    bool
	Running   bool

	rng *rand.Rand
	now func() time.Time
}

// NewSession starts a match with the player centered and a full population
// of bots at the edges. rng and now may be nil for real randomness and the
// wall clock; tests inject both.
func NewSession(cfg *Config, rng *rand.Rand, now func() time.Time) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	s := &Session{
		cfg:  cfg,
		Zone: NewZone(cfg),
		rng:  rng,
		now:  now,
	}
	s.reset()
	return s
}

// reset (re)initializes all match state in place.
func (s *Session) reset() {
	s.Player = NewPlayer(s.cfg)
	s.Bots = nil
	s.minds = nil
	s.Bullets = nil
	for i := 0; i < s.cfg.MaxBots; i++ {
		s.SpawnBot()
	}
	s.StartTime = s.now()
	s.EndTime = time.Time{}
	s.Paused = false
	s.Running = true
}

// Restart begins a fresh match without disturbing the scheduler.
func (s *Session) Restart() {
	s.reset()
}

// SpawnBot adds one bot at a random position inside the edge band.
func (s *Session) SpawnBot() {
	w, h := s.cfg.Bounds()
	m := s.cfg.BotSpawnMargin
	var pos Vec2
	switch s.rng.Intn(4) {
	case 0: // top
		pos = Vec2{uniform(s.rng, m, w-m), uniform(s.rng, 0, m)}
	case 1: // bottom
		pos = Vec2{uniform(s.rng, m, w-m), uniform(s.rng, h-m, h)}
	case 2: // left
		pos = Vec2{uniform(s.rng, 0, m), uniform(s.rng, m, h-m)}
	default: // right
		pos = Vec2{uniform(s.rng, w-m, w), uniform(s.rng, m, h-m)}
	}
	s.Bots = append(s.Bots, NewBot(s.cfg, pos))
	s.minds = append(s.minds, &BotMind{})
}

// entityByID resolves an entity (living or dead) by identity.
func (s *Session) entityByID(id uuid.UUID) *Entity {
	if s.Player.ID == id {
		return s.Player
	}
	for _, b := range s.Bots {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Elapsed is the wall-clock session time. It keeps advancing while paused,
// which is what makes the zone shrink through a pause.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.StartTime)
}

// ZoneRadius is the current safe-zone radius.
func (s *Session) ZoneRadius() float64 {
	return s.Zone.RadiusAt(s.Elapsed())
}

// LivingBots counts bots still alive.
func (s *Session) LivingBots() int {
	n := 0
	for _, b := range s.Bots {
		if b.Alive {
			n++
		}
	}
	return n
}

// livingEntities counts the player and bots still alive.
func (s *Session) livingEntities() int {
	n := s.LivingBots()
	if s.Player.Alive {
		n++
	}
	return n
}

// Step advances the match by one tick: player input, bot AI and fire,
// bullet movement and collisions, zone damage, the win check, and finally
// the replenishment roll. The win check deliberately runs before the spawn
// roll, so a bot spawned this tick cannot undo a win already detected from
// the pre-spawn population.
func (s *Session) Step(in Input, dt float64) {
	now := s.now()
	w, h := s.cfg.Bounds()

	// Player movement; diagonals are normalized so they are no faster
	// than a single axis.
	dir := Normalize(Vec2{in.MoveX, in.MoveY})
	s.Player.Pos = clampToBounds(s.Player.Pos.Add(dir.Scale(s.Player.Speed)), w, h)

	if in.Fire {
		if b := s.Player.Fire(s.cfg, in.Cursor, now); b != nil {
			s.Bullets = append(s.Bullets, b)
		}
	}

	// Bot AI and fire.
	for i, bot := range s.Bots {
		if !bot.Alive {
			continue
		}
		mind := s.minds[i]
		mind.Step(s, bot, now)
		if b := mind.TryFire(s, bot, now); b != nil {
			s.Bullets = append(s.Bullets, b)
		}
	}

	// Bullets: advance, then resolve at most one hit per bullet. A hit on
	// the player ends the bullet's scan; otherwise the first bot in range
	// (iteration order) takes the hit.
	live := s.Bullets[:0]
	for _, b := range s.Bullets {
		if !b.Alive {
			continue
		}
		b.Advance(s.cfg)
		hitPlayer := false
		if b.Owner != s.Player && s.Player.Alive &&
			Dist(b.Pos, s.Player.Pos) <= b.Owner.Radius+s.Player.Radius+s.cfg.BulletRadius {
			s.Player.Hit(s.cfg.PlayerBulletDamage)
			b.Alive = false
			hitPlayer = true
		}
		if !hitPlayer {
			for _, bot := range s.Bots {
				if !bot.Alive || b.Owner == bot {
					continue
				}
				if Dist(b.Pos, bot.Pos) <= s.cfg.BulletRadius+bot.Radius {
					bot.Hit(s.cfg.BotBulletDamage)
					b.Alive = false
					break
				}
			}
		}
		if b.Alive {
			live = append(live, b)
		}
	}
	s.Bullets = live

	// Zone damage. The rate is specified per 60Hz frame and scaled by real
	// elapsed seconds, unlike bullet speed which stays per-tick.
	radius := s.Zone.RadiusAt(now.Sub(s.StartTime))
	outsideHit := s.cfg.OutsideDamage * dt * 60
	if s.Player.Alive && Dist(s.Player.Pos, s.Zone.Center) > radius {
		s.Player.Hit(outsideHit)
	}
	for _, bot := range s.Bots {
		if bot.Alive && Dist(bot.Pos, s.Zone.Center) > radius {
			bot.Hit(outsideHit)
		}
	}

	// Win check before the spawn roll.
	if s.livingEntities() <= 1 {
		s.Running = false
		s.EndTime = now
	}

	// Replenish the population while it is still below the floor and the
	// lifetime spawn cap has not been reached.
	minBots := s.cfg.MaxBots / 3
	if minBots < 2 {
		minBots = 2
	}
	if s.LivingBots() < minBots && len(s.Bots) < 2*s.cfg.MaxBots {
		if s.rng.Float64() < s.cfg.ReplenishChance {
			s.SpawnBot()
		}
	}
}

// Winner names the surviving side once the match has ended.
func (s *Session) Winner() string {
	if s.Player.Alive {
		return "Player (You)"
	}
	if s.LivingBots() > 0 {
		return "Bot"
	}
	return "No one"
}

// uniform returns a random float64 in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
