package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"spaceshooter/audio"
	"spaceshooter/client"
	"spaceshooter/game"
	"spaceshooter/replay"
	"spaceshooter/scores"
)

// getEnv returns the environment value for key or fallback when unset
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func main() {
	scorePath := flag.String("scores", getEnv("SHOOTER_SCORES", scores.DefaultPath), "score file path")
	logLevel := flag.String("log-level", getEnv("SHOOTER_LOG_LEVEL", "info"), "debug, info, warn or error")
	seed := flag.Int64("seed", 0, "spawn seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound")
	record := flag.String("record", "", "write a replay of the session to this file")
	profileDir := flag.String("profile", "", "capture CPU profiles into this directory when frames stall")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "shooter",
	})
	if level, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", *logLevel)
	}

	config := game.DefaultConfig()
	config.Seed = *seed
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	store := scores.NewFile(*scorePath, logger.WithPrefix("scores"))
	g := game.NewGame(config,
		game.WithLogger(logger.WithPrefix("game")),
		game.WithScoreStore(store),
	)

	opts := []client.AppOption{client.WithAppLogger(logger.WithPrefix("client"))}

	if !*mute {
		player := audio.NewPlayer(logger.WithPrefix("audio"))
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, running muted", "err", err)
		} else {
			defer player.Close()
			opts = append(opts, client.WithAudio(player))
		}
	}

	if *record != "" {
		file, err := os.Create(*record)
		if err != nil {
			logger.Fatal("failed to create replay file", "path", *record, "err", err)
		}
		defer file.Close()
		rec, err := replay.NewRecorder(file, config)
		if err != nil {
			logger.Fatal("failed to start recording", "err", err)
		}
		opts = append(opts, client.WithRecorder(rec))
		logger.Info("recording session", "path", *record)
	}

	if *profileDir != "" {
		opts = append(opts, client.WithProfiler(client.NewProfiler(*profileDir, logger.WithPrefix("profiler"))))
	}

	logger.Info("starting", "seed", config.Seed, "scores", store.Path())

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Shooter")

	if err := ebiten.RunGame(client.NewApp(g, opts...)); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
