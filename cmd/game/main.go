package main

import (
	"os"

	"github.com/Garsondee/Marksman-Range/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := game.LoadSettings(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("load settings")
	}
	if lvl, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	ebiten.SetWindowTitle("Marksman Range")
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	if err := ebiten.RunGame(game.New(settings, logger)); err != nil {
		logger.Fatal().Err(err).Msg("game loop")
	}
}
