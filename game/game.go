package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Session to ebiten's fixed-interval loop. It measures the
// real delta between updates instead of trusting the nominal tick spacing,
// and it keeps drawing after the match ends so the end screen stays up.
type Game struct {
	cfg      *Config
	session  *Session
	renderer *Renderer

	lastUpdate time.Time
	cursor     Vec2
}

// NewGame creates the game with a fresh session.
func NewGame(cfg *Config) *Game {
	return &Game{
		cfg:        cfg,
		session:    NewSession(cfg, nil, nil),
		renderer:   NewRenderer(cfg),
		lastUpdate: time.Now(),
		cursor:     Vec2{float64(cfg.ScreenWidth) / 2, float64(cfg.ScreenHeight) / 2},
	}
}

// Update runs one tick: sample input, route session commands, then step the
// simulation unless the match is paused or over.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	if dt > g.cfg.MaxDeltaTime {
		dt = g.cfg.MaxDeltaTime
	}
	g.lastUpdate = now

	in, cmd := ReadInput()
	g.cursor = in.Cursor

	if cmd.Quit {
		return ebiten.Termination
	}
	if cmd.TogglePause {
		g.session.Paused = !g.session.Paused
	}
	if cmd.Restart {
		g.session.Restart()
	}

	if g.session.Running && !g.session.Paused {
		g.session.Step(in, dt)
	}
	return nil
}

// Draw renders the current frame. Rendering never mutates session state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session, g.cursor)
}

// Layout fixes the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
