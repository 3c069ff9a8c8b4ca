package game

import "testing"

func TestAdvanceIsPerTickDisplacement(t *testing.T) {
	cfg := DefaultConfig()
	b := &Bullet{Pos: Vec2{100, 100}, Vel: Vec2{12, -4}, Alive: true}

	b.Advance(cfg)
	if b.Pos.X != 112 || b.Pos.Y != 96 {
		t.Fatalf("after one advance pos = (%f,%f), want (112,96)", b.Pos.X, b.Pos.Y)
	}
	if !b.Alive {
		t.Fatal("in-bounds bullet died")
	}
}

func TestBulletDiesPastBoundsMargin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenWidth = 250

	// From x=100 at 12 per tick the bullet passes 250+50 after exactly
	// ceil(200/12) = 17 ticks.
	b := &Bullet{Pos: Vec2{100, 100}, Vel: Vec2{12, 0}, Alive: true}
	for i := 0; i < 16; i++ {
		b.Advance(cfg)
		if !b.Alive {
			t.Fatalf("bullet died early on tick %d at x=%f", i+1, b.Pos.X)
		}
	}
	b.Advance(cfg)
	if b.Alive {
		t.Fatalf("bullet still alive at x=%f past the margin", b.Pos.X)
	}
}

func TestBulletDiesOnEverySide(t *testing.T) {
	cfg := DefaultConfig()
	w, h := cfg.Bounds()
	m := cfg.BulletBoundsMargin
	cases := []struct {
		name string
		pos  Vec2
		vel  Vec2
	}{
		{"left", Vec2{-m + 1, h / 2}, Vec2{-2, 0}},
		{"right", Vec2{w + m - 1, h / 2}, Vec2{2, 0}},
		{"top", Vec2{w / 2, -m + 1}, Vec2{0, -2}},
		{"bottom", Vec2{w / 2, h + m - 1}, Vec2{0, 2}},
	}
	for _, tc := range cases {
		b := &Bullet{Pos: tc.pos, Vel: tc.vel, Alive: true}
		b.Advance(cfg)
		if b.Alive {
			t.Fatalf("%s: bullet alive at (%f,%f)", tc.name, b.Pos.X, b.Pos.Y)
		}
	}
}
