package game

import (
	"testing"
	"time"
)

func TestZoneConstantDuringGrace(t *testing.T) {
	cfg := DefaultConfig()
	z := NewZone(cfg)

	for _, elapsed := range []time.Duration{0, time.Second, cfg.ZoneGracePeriod - time.Millisecond} {
		if r := z.RadiusAt(elapsed); r != cfg.InitialZoneRadius {
			t.Fatalf("radius at %v = %f, want initial %f", elapsed, r, cfg.InitialZoneRadius)
		}
	}
}

func TestZoneShrinksLinearlyThenHolds(t *testing.T) {
	cfg := DefaultConfig()
	z := NewZone(cfg)

	mid := cfg.ZoneGracePeriod + cfg.ZoneShrinkFor/2
	want := cfg.InitialZoneRadius + (cfg.FinalZoneRadius-cfg.InitialZoneRadius)*0.5
	if r := z.RadiusAt(mid); r != want {
		t.Fatalf("radius at midpoint = %f, want %f", r, want)
	}

	end := cfg.ZoneGracePeriod + cfg.ZoneShrinkFor
	if r := z.RadiusAt(end); r != cfg.FinalZoneRadius {
		t.Fatalf("radius at end of shrink = %f, want final %f", r, cfg.FinalZoneRadius)
	}
	if r := z.RadiusAt(end + time.Hour); r != cfg.FinalZoneRadius {
		t.Fatalf("radius past end = %f, want held at %f", r, cfg.FinalZoneRadius)
	}
}

func TestZoneMonotonicNonIncreasingAndBounded(t *testing.T) {
	cfg := DefaultConfig()
	z := NewZone(cfg)

	prev := z.RadiusAt(0)
	for elapsed := time.Duration(0); elapsed < 2*(cfg.ZoneGracePeriod+cfg.ZoneShrinkFor); elapsed += 500 * time.Millisecond {
		r := z.RadiusAt(elapsed)
		if r > prev {
			t.Fatalf("radius increased at %v: %f -> %f", elapsed, prev, r)
		}
		if r > cfg.InitialZoneRadius || r < cfg.FinalZoneRadius {
			t.Fatalf("radius %f at %v outside [%f,%f]", r, elapsed, cfg.FinalZoneRadius, cfg.InitialZoneRadius)
		}
		prev = r
	}
}

func TestZoneContains(t *testing.T) {
	cfg := DefaultConfig()
	z := NewZone(cfg)

	if !z.Contains(z.Center, 0) {
		t.Fatal("center reported outside the zone")
	}
	far := Vec2{z.Center.X + cfg.InitialZoneRadius + 1, z.Center.Y}
	if z.Contains(far, 0) {
		t.Fatal("point beyond the radius reported inside")
	}
}
