package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one tick's worth of player input, sampled by the adapter and
// consumed at the start of the simulation step.
type Input struct {
	MoveX, MoveY float64 // axis sums in {-1, 0, 1}; Step normalizes
	Fire         bool    // left click this tick
	Cursor       Vec2    // last known cursor position
}

// Commands are session-level key events handled outside the simulation.
type Commands struct {
	TogglePause bool
	Restart     bool
	Quit        bool
}

// ReadInput samples the keyboard and mouse into an input frame plus the
// session commands. Movement accepts WASD and the arrow keys.
func ReadInput() (Input, Commands) {
	var in Input
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}

	mx, my := ebiten.CursorPosition()
	in.Cursor = Vec2{float64(mx), float64(my)}
	in.Fire = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	cmd := Commands{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	return in, cmd
}
