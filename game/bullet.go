package game

// Bullet is a projectile in flight. Velocity is a fixed displacement per
// tick (not scaled by dt), so bullet speed is tied to the tick rate.
type Bullet struct {
	Pos   Vec2
	Vel   Vec2
	Owner *Entity // excluded from collision with itself
	Alive bool
}

// newBullet spawns a bullet at owner's edge aimed at target. Aiming at the
// owner's own position yields a zero direction and a motionless bullet.
func newBullet(cfg *Config, owner *Entity, target Vec2) *Bullet {
	dir := Normalize(Vec2{target.X - owner.Pos.X, target.Y - owner.Pos.Y})
	offset := owner.Radius + cfg.BulletRadius + 1
	return &Bullet{
		Owner: owner,
		Pos:   owner.Pos.Add(dir.Scale(offset)),
		Vel:   dir.Scale(cfg.BulletSpeed),
		Alive: true,
	}
}

// Advance moves the bullet one tick and kills it once it leaves the
// playfield by more than the bounds margin on any side.
func (b *Bullet) Advance(cfg *Config) {
	b.Pos = b.Pos.Add(b.Vel)
	w, h := cfg.Bounds()
	m := cfg.BulletBoundsMargin
	if b.Pos.X < -m || b.Pos.X > w+m || b.Pos.Y < -m || b.Pos.Y > h+m {
		b.Alive = false
	}
}
