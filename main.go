package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	routeName := flag.String("route", "canal", "route prefab name in prefabs/routes (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", true, "hot reload route prefabs and cue scripts from disk")
	seed := flag.Uint64("seed", 1, "shake jitter seed")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	game, err := NewGame(*routeName, *watch, *seed)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("pathrig preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
