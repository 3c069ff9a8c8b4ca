package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	colorHealthFrame = color.RGBA{0, 0, 0, 255}
	colorHealthFill  = color.RGBA{0, 255, 0, 255}
	colorBotHealth   = color.RGBA{0, 128, 0, 255}
	colorCorpse      = color.RGBA{128, 128, 128, 255}
	colorDeathText   = color.RGBA{139, 0, 0, 255}
	colorOverlayFill = color.RGBA{255, 255, 255, 255}
	colorOverlayLine = color.RGBA{0, 0, 0, 255}
	colorOverlayHint = color.RGBA{128, 128, 128, 255}
	colorHUDText     = color.RGBA{0, 0, 0, 255}
)

// Renderer draws one frame from session state. It is strictly read-only
// with respect to the simulation.
type Renderer struct {
	cfg  *Config
	face font.Face
}

// NewRenderer builds a renderer using the builtin bitmap face, so no font
// assets are loaded.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg, face: basicfont.Face7x13}
}

// Draw renders the zone, bullets, bots, player, HUD and, once the match is
// over, the end-of-match overlay.
func (r *Renderer) Draw(screen *ebiten.Image, s *Session, cursor Vec2) {
	screen.Fill(r.cfg.BackgroundColor)

	zc := s.Zone.Center
	vector.StrokeCircle(screen, float32(zc.X), float32(zc.Y), float32(s.ZoneRadius()), 2, r.cfg.ZoneColor, true)

	for _, b := range s.Bullets {
		if b.Alive {
			vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(r.cfg.BulletRadius), r.cfg.BulletColor, true)
		}
	}

	for _, bot := range s.Bots {
		if bot.Alive {
			r.drawBot(screen, bot)
		} else {
			r.drawCorpse(screen, bot)
		}
	}

	r.drawPlayer(screen, s, cursor)
	r.drawHUD(screen, s)

	if !s.Running {
		r.drawGameOver(screen, s)
	}
}

func (r *Renderer) drawBot(screen *ebiten.Image, bot *Entity) {
	vector.DrawFilledCircle(screen, float32(bot.Pos.X), float32(bot.Pos.Y), float32(bot.Radius), bot.Color, true)
	const barWidth = 20
	frac := bot.Health / r.cfg.MaxHealth
	barX := bot.Pos.X - barWidth/2
	barY := bot.Pos.Y - bot.Radius - 8
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*frac), 4, colorBotHealth, true)
}

func (r *Renderer) drawCorpse(screen *ebiten.Image, bot *Entity) {
	x, y := float32(bot.Pos.X), float32(bot.Pos.Y)
	vector.StrokeLine(screen, x-8, y-8, x+8, y+8, 1, colorCorpse, true)
	vector.StrokeLine(screen, x-8, y+8, x+8, y-8, 1, colorCorpse, true)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, s *Session, cursor Vec2) {
	p := s.Player
	if !p.Alive {
		r.drawCenteredText(screen, "YOU DIED", r.cfg.ScreenWidth/2, r.cfg.ScreenHeight/2-40, colorDeathText)
		return
	}

	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color, true)
	r.drawDashedLine(screen, p.Pos, cursor)

	// Health bar, fixed to the top-left corner.
	vector.DrawFilledRect(screen, 10, 10, 200, 16, colorHealthFrame, true)
	fill := 196 * p.Health / r.cfg.MaxHealth
	if fill > 0 {
		vector.DrawFilledRect(screen, 12, 12, float32(fill), 12, colorHealthFill, true)
	}
}

// drawDashedLine draws the aim line as 3-unit dashes with 2-unit gaps.
func (r *Renderer) drawDashedLine(screen *ebiten.Image, from, to Vec2) {
	const dash, gap = 3.0, 2.0
	total := Dist(from, to)
	if total == 0 {
		return
	}
	dir := Normalize(Vec2{to.X - from.X, to.Y - from.Y})
	for at := 0.0; at < total; at += dash + gap {
		end := at + dash
		if end > total {
			end = total
		}
		a := from.Add(dir.Scale(at))
		b := from.Add(dir.Scale(end))
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, colorHUDText, true)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *Session) {
	info := fmt.Sprintf("Time: %ds  Bots alive: %d  Zone: %d",
		int(s.Elapsed().Seconds()), s.LivingBots(), int(s.ZoneRadius()))
	if s.Paused {
		info = "PAUSED - press P to resume\n" + info
	}
	text.Draw(screen, info, r.face, r.cfg.ScreenWidth-250, 18, colorHUDText)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, s *Session) {
	cx := r.cfg.ScreenWidth / 2
	cy := r.cfg.ScreenHeight / 2
	vector.DrawFilledRect(screen, float32(cx-200), float32(cy-80), 400, 160, colorOverlayFill, true)
	vector.StrokeRect(screen, float32(cx-200), float32(cy-80), 400, 160, 1, colorOverlayLine, true)

	r.drawCenteredText(screen, "GAME OVER", cx, cy-20, colorOverlayLine)
	r.drawCenteredText(screen, "Winner: "+s.Winner(), cx, cy+10, colorOverlayLine)
	r.drawCenteredText(screen, "Press ESC to close window or R to restart", cx, cy+40, colorOverlayHint)
}

// drawCenteredText centers str horizontally on x using the fixed-width face.
func (r *Renderer) drawCenteredText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	w := font.MeasureString(r.face, str).Ceil()
	text.Draw(screen, str, r.face, x-w/2, y, clr)
}
