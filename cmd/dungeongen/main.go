package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/dungeon"
	"github.com/stonehall/dungeongen/internal/export"
	"github.com/stonehall/dungeongen/internal/logger"
)

func main() {
	configPath := flag.String("config", "dungeongen.yaml", "Path to generation config file")
	seed := flag.Int64("seed", 0, "Generation seed (0 = derive from current time)")
	outDir := flag.String("out", ".", "Directory for the generated artifacts")
	width := flag.Int("width", 0, "Canvas width (overrides config)")
	height := flag.Int("height", 0, "Canvas height (overrides config)")
	rooms := flag.Int("rooms", 0, "Target room count (overrides config)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *rooms > 0 {
		cfg.RoomCount = *rooms
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	if *verbose {
		logCfg.Level = "DEBUG"
	}
	log := logger.New(logCfg)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info("generating dungeon", "seed", *seed, "width", cfg.Width, "height", cfg.Height)

	res, err := dungeon.New(cfg, *seed, log).Generate()
	if err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if err := export.WriteArtifacts(res, *outDir); err != nil {
		log.Error("export failed", "error", err)
		os.Exit(1)
	}

	log.Info("artifacts written",
		"dir", *outDir,
		"files", []string{export.FileTextMap, export.FileRecord, export.FileDescription})
}
