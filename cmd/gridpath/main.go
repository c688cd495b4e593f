// Command gridpath opens the pathfinding sandbox window.
//
// Mouse: left paints walls (shift+left erases), right places the objective,
// middle places the start.
// Keys: A runs A*, D runs Dijkstra, G runs Greedy Best-First, C clears,
// M generates a noise maze, Left/Right (or ,/.) step through the recorded
// frames.
//
// Usage:
//
//	gridpath [-config settings.yaml] [-seed n] [-v]
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/session"
)

var log = logrus.New()

func main() {
	var (
		configPath = flag.String("config", "settings.yaml", "path to the YAML settings file")
		seed       = flag.Int64("seed", 0, "maze seed (0 picks a time-based seed)")
		verbose    = flag.Bool("v", false, "log every action")
	)
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load settings")
	}

	opts := []session.Option{session.WithLogger(log)}
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}
	sess, err := session.New(cfg, opts...)
	if err != nil {
		log.WithError(err).Fatal("create session")
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.FPS)

	log.WithFields(logrus.Fields{
		"width":  cfg.WindowWidth,
		"height": cfg.WindowHeight,
		"cell":   cfg.CellWidth,
		"fps":    cfg.FPS,
	}).Info("starting")

	if err := ebiten.RunGame(newGame(cfg, sess)); err != nil {
		log.WithError(err).Error("window closed with error")
		os.Exit(1)
	}
}
