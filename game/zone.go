package game

import "time"

// Zone is the shrinking circular safe area. The center never moves; the
// radius is a pure function of elapsed session time, so it is recomputed
// every tick (and keeps shrinking on the wall clock even while paused).
type Zone struct {
	cfg    *Config
	Center Vec2
}

// NewZone places the zone at the center of the playfield.
func NewZone(cfg *Config) Zone {
	w, h := cfg.Bounds()
	return Zone{cfg: cfg, Center: Vec2{w / 2, h / 2}}
}

// RadiusAt returns the zone radius after the given session time: constant
// through the grace period, then linear down to the final radius over the
// shrink window, then held there.
func (z Zone) RadiusAt(elapsed time.Duration) float64 {
	if elapsed < z.cfg.ZoneGracePeriod {
		return z.cfg.InitialZoneRadius
	}
	frac := Clamp(
		(elapsed-z.cfg.ZoneGracePeriod).Seconds()/z.cfg.ZoneShrinkFor.Seconds(),
		0, 1,
	)
	return z.cfg.InitialZoneRadius + (z.cfg.FinalZoneRadius-z.cfg.InitialZoneRadius)*frac
}

// Contains reports whether p is inside the zone at the given elapsed time.
func (z Zone) Contains(p Vec2, elapsed time.Duration) bool {
	return Dist(p, z.Center) <= z.RadiusAt(elapsed)
}
