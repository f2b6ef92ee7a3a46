package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gridsnake/app"
	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/scores"
	"gridsnake/logging"
	"gridsnake/tui"
	"gridsnake/ui"

	"golang.org/x/exp/rand"
)

func main() {
	tick := flag.Duration("tick", 100*time.Millisecond, "Simulation tick period")
	level := flag.Int("level", 1, "Starting level (1-3)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	scoreFile := flag.String("scores", scores.DefaultFile, "High score file")
	statsFile := flag.String("stats", "data/gamestats.json", "Session history file (empty to disable)")
	assetsDir := flag.String("assets", "images", "Directory holding <key>.png sprites")
	frontend := flag.String("frontend", "raylib", "Frontend: raylib or terminal")
	mute := flag.Bool("mute", false, "Disable sound")
	volume := flag.Float64("volume", 0.5, "Sound volume (0-1)")
	logFile := flag.String("log", "snake.log", "Log file (empty to disable)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	if err := run(options{
		tick:      *tick,
		level:     *level,
		seed:      *seed,
		scoreFile: *scoreFile,
		statsFile: *statsFile,
		assetsDir: *assetsDir,
		frontend:  *frontend,
		mute:      *mute,
		volume:    *volume,
		logFile:   *logFile,
		logLevel:  *logLevel,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

type options struct {
	tick      time.Duration
	level     int
	seed      uint64
	scoreFile string
	statsFile string
	assetsDir string
	frontend  string
	mute      bool
	volume    float64
	logFile   string
	logLevel  string
}

func run(opts options) error {
	lvl, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(opts.logFile, lvl)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.frontend != "raylib" && opts.frontend != "terminal" {
		return fmt.Errorf("unknown frontend %q", opts.frontend)
	}

	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(opts.seed))

	cfg := game.DefaultConfig()
	cfg.TickPeriod = opts.tick
	cfg.Level = opts.level
	g, err := game.NewGame(cfg, rng, logger)
	if err != nil {
		return err
	}

	table := scores.NewTable(scores.NewFileStore(opts.scoreFile, logger), logger)
	stats := manager.NewStateManager(opts.statsFile, logger)

	var sound audio.Player = audio.Nop{}
	if !opts.mute {
		sm := audio.NewSoundManager(opts.volume, logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "err", err)
		} else {
			defer sm.Close()
			sound = sm
		}
	}

	a := app.New(g, table, stats, sound, logger)
	logger.Info("starting", "frontend", opts.frontend, "level", cfg.Level, "seed", opts.seed,
		"tick", cfg.TickPeriod, "high_scores", table.Len(), "games_played", stats.GamesPlayed())

	switch opts.frontend {
	case "terminal":
		term, err := tui.New()
		if err != nil {
			return err
		}
		term.Run(a)
	default:
		ui.Run(a, opts.assetsDir)
	}
	return nil
}
