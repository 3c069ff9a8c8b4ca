package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"battleroyale/game"
)

func main() {
	config := game.DefaultConfig()
	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Mini Battle Royale")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
